// Package download is the file-save collaborator. It writes prompt text
// to the user's download directory under a caller-supplied name.
package download

import (
	"os"
	"path/filepath"
)

// Dir returns the directory downloads are written to: ~/Downloads when
// it exists, the working directory otherwise.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	d := filepath.Join(home, "Downloads")
	if info, err := os.Stat(d); err == nil && info.IsDir() {
		return d
	}
	return "."
}

// Save writes content under filename in dir and returns the full path.
func Save(dir, filename, content string) (string, error) {
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
