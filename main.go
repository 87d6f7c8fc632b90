// PromptStock is a terminal client for the Microstock Prompt Generator
// backend: generate stock-photo prompts, browse history, and curate
// favorites without leaving the terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/promptstock/promptstock-tui/app"
	"github.com/promptstock/promptstock-tui/client"
	"github.com/promptstock/promptstock-tui/config"
	"github.com/promptstock/promptstock-tui/msg"
	"github.com/promptstock/promptstock-tui/style"
)

var version = "dev"

const defaultBackendURL = "http://localhost:8000"

func main() {
	profile := flag.String("profile", "default", "settings profile name")
	noColor := flag.Bool("no-color", false, "disable colored output")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("promptstock " + version)
		return
	}

	// Optional .env in the working directory; real env wins.
	_ = godotenv.Load()

	profileDir := profilePath(*profile)
	cfg := config.Load(profileDir)

	backendURL := cfg.BackendURL
	if env := os.Getenv("PROMPTSTOCK_URL"); env != "" {
		backendURL = env
	}
	if backendURL == "" {
		backendURL = defaultBackendURL
	}
	cfg.BackendURL = backendURL

	if *noColor {
		os.Setenv("NO_COLOR", "1")
	}
	applyTheme(cfg.Theme)

	c := client.New(backendURL)
	if os.Getenv("PROMPTSTOCK_DEBUG") != "" {
		if log, err := fileLogger(profileDir); err == nil {
			c.SetLogger(log)
		}
	}

	m := app.New(app.Options{
		Client:     c,
		Config:     cfg,
		ProfileDir: profileDir,
		EnvAPIKey:  os.Getenv("PROMPTSTOCK_API_KEY"),
	})

	p := tea.NewProgram(m)

	// Hand the program handle to the model so collaborator goroutines
	// can Send notifications into the event loop.
	go func() {
		p.Send(msg.ProgramReady{Program: p})
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "promptstock:", err)
		os.Exit(1)
	}
}

// profilePath resolves ~/.promptstock/profiles/<name>, falling back to
// the working directory when the home directory is unknown.
func profilePath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".promptstock", "profiles", name)
	}
	return filepath.Join(home, ".promptstock", "profiles", name)
}

// applyTheme picks the configured theme, falling back to terminal
// background detection when none is saved.
func applyTheme(name string) {
	if name != "" {
		style.SetTheme(name)
		return
	}
	if lipgloss.HasDarkBackground(os.Stdin, os.Stdout) {
		style.SetTheme("dark")
	} else {
		style.SetTheme("light")
	}
}

// fileLogger writes debug logs to <profileDir>/debug.log so log lines
// never corrupt the TUI.
func fileLogger(profileDir string) (zerolog.Logger, error) {
	if err := os.MkdirAll(profileDir, 0o755); err != nil {
		return zerolog.Nop(), err
	}
	f, err := os.OpenFile(filepath.Join(profileDir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(f).With().Timestamp().Logger(), nil
}
