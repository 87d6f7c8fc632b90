// Package app is the root bubbletea model: it owns the view stack,
// routes messages between the UI components and the domain packages,
// and runs all backend calls inside commands.
package app

import (
	"errors"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/promptstock/promptstock-tui/client"
	"github.com/promptstock/promptstock-tui/collections"
	"github.com/promptstock/promptstock-tui/config"
	"github.com/promptstock/promptstock-tui/msg"
	"github.com/promptstock/promptstock-tui/registry"
	"github.com/promptstock/promptstock-tui/request"
	"github.com/promptstock/promptstock-tui/session"
	"github.com/promptstock/promptstock-tui/style"
	"github.com/promptstock/promptstock-tui/ui/clipboard"
	"github.com/promptstock/promptstock-tui/ui/download"
	"github.com/promptstock/promptstock-tui/ui/favview"
	"github.com/promptstock/promptstock-tui/ui/form"
	"github.com/promptstock/promptstock-tui/ui/header"
	"github.com/promptstock/promptstock-tui/ui/histview"
	"github.com/promptstock/promptstock-tui/ui/picker"
	"github.com/promptstock/promptstock-tui/ui/results"
	"github.com/promptstock/promptstock-tui/ui/status"
	"github.com/promptstock/promptstock-tui/ui/toast"
)

type view int

const (
	viewForm view = iota
	viewResults
	viewHistory
	viewFavorites
)

// quantityPresets are the quantity picker's offerings. Any value in
// [1,20] remains typeable in the form.
var quantityPresets = []int{1, 3, 5, 10, 15, 20}

// Options wires the root model to its collaborators.
type Options struct {
	Client     *client.Client
	Config     config.Config
	ProfileDir string
	EnvAPIKey  string
}

// Model is the application root.
type Model struct {
	client  *client.Client
	session *session.Controller
	sync    *collections.Synchronizer
	notify  *programNotifier

	cfg        config.Config
	profileDir string

	view      view
	form      form.Model
	picker    picker.Model
	results   results.Model
	history   histview.Model
	favorites favview.Model
	header    header.Model
	status    status.Model
	toasts    toast.Model
	keys      keyMap

	width  int
	height int
}

// New builds the root model and its collaborator graph.
func New(opts Options) Model {
	notify := &programNotifier{}
	sync := collections.NewSynchronizer(
		opts.Client,
		clipboard.Copy,
		func(filename, content string) (string, error) {
			return download.Save(download.Dir(), filename, content)
		},
		notify,
	)

	f := form.New(opts.Config)
	if opts.EnvAPIKey != "" {
		f.SetAPIKey(opts.EnvAPIKey)
	}

	m := Model{
		client:     opts.Client,
		session:    session.NewController(),
		sync:       sync,
		notify:     notify,
		cfg:        opts.Config,
		profileDir: opts.ProfileDir,
		view:       viewForm,
		form:       f,
		picker:     picker.New(),
		results:    results.New(),
		history:    histview.New(),
		favorites:  favview.New(),
		header:     header.New(opts.Client.BaseURL),
		status:     status.New(),
		toasts:     toast.New(),
		keys:       defaultKeyMap(),
		width:      80,
		height:     24,
	}
	return m
}

// Init starts the reachability check, the tick loop, and form focus.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.healthCmd(), tickCmd(), m.form.Focus())
}

// Update is the single message router.
func (m Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := teaMsg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(typed.Width, typed.Height)
		return m, nil

	case msg.ProgramReady:
		m.notify.SetProgram(typed.Program)
		return m, nil

	case msg.Toast:
		m.toasts.Add(typed.Text, toastLevel(typed.Level))
		return m, nil

	case msg.TickMsg:
		m.toasts.Tick()
		m.status.Tick()
		return m, tickCmd()

	case msg.HealthResult:
		m.header.SetConnected(typed.Err == nil)
		if typed.Err != nil {
			m.toasts.Add("Backend unreachable", toast.Error)
			return m, nil
		}
		// Warm both projections once the backend answers.
		return m, tea.Batch(m.loadHistoryCmd(), m.loadFavoritesCmd())

	case msg.GenerateDone:
		m.status.SetPending(false)
		if typed.Failed {
			m.toasts.Add(typed.Notice, toast.Error)
			return m, nil
		}
		m.toasts.Add(typed.Notice, toast.Success)
		if gen, ok := m.session.Result(); ok {
			m.results.SetGeneration(gen)
			m.view = viewResults
		}
		// The backend appended to history; refresh the projection.
		return m, m.loadHistoryCmd()

	case msg.HistoryLoaded:
		m.history.SetItems(m.sync.History())
		return m, nil

	case msg.FavoritesLoaded:
		m.favorites.SetItems(m.sync.Favorites())
		return m, nil

	case msg.FavoriteSaved, msg.FavoriteDeleted:
		m.favorites.SetItems(m.sync.Favorites())
		return m, nil

	case msg.CopyDone, msg.DownloadDone:
		// Synchronizer already notified; nothing further.
		return m, nil

	case form.OpenPickerMsg:
		m.openPicker(typed.Field)
		return m, nil

	case form.SubmitMsg:
		return m.submit()

	case picker.Choice:
		m.applyChoice(typed)
		return m, nil

	case picker.Cancel:
		return m, nil

	case results.SaveMsg:
		gen := m.results.Generation()
		if typed.Index < len(gen.Prompts) {
			return m, m.saveFavoriteCmd(gen, gen.Prompts[typed.Index])
		}
		return m, nil

	case results.CopyAllMsg:
		return m, m.copyAllCmd(m.results.Generation())

	case results.CopyOneMsg:
		gen := m.results.Generation()
		if typed.Index < len(gen.Prompts) {
			return m, copyTextCmd(gen.Prompts[typed.Index])
		}
		return m, nil

	case results.DownloadMsg:
		return m, m.downloadCmd(m.results.Generation())

	case histview.OpenMsg:
		if gen, ok := m.history.Item(); ok {
			m.results.SetGeneration(gen)
			m.view = viewResults
		}
		return m, nil

	case histview.ReloadMsg:
		return m, m.loadHistoryCmd()

	case favview.DeleteMsg:
		return m, m.deleteFavoriteCmd(typed.ID)

	case favview.CopyMsg:
		if fav, ok := m.favorites.Item(); ok {
			return m, copyTextCmd(fav.PromptText)
		}
		return m, nil

	case favview.ReloadMsg:
		return m, m.loadFavoritesCmd()

	case tea.KeyPressMsg:
		return m.handleKey(typed)

	case tea.MouseWheelMsg:
		if m.picker.IsActive() {
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(teaMsg)
			return m, cmd
		}
		return m, nil
	}

	return m.delegate(teaMsg)
}

func (m Model) handleKey(k tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches[tea.KeyPressMsg](k, m.keys.Quit):
		m.saveConfig()
		return m, tea.Quit

	case key.Matches[tea.KeyPressMsg](k, m.keys.Theme):
		m.toggleTheme()
		return m, nil
	}

	if m.picker.IsActive() {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(tea.Msg(k))
		return m, cmd
	}

	switch {
	case key.Matches[tea.KeyPressMsg](k, m.keys.Generate):
		return m.submit()

	case key.Matches[tea.KeyPressMsg](k, m.keys.History):
		m.view = viewHistory
		m.history.SetItems(m.sync.History())
		return m, m.loadHistoryCmd()

	case key.Matches[tea.KeyPressMsg](k, m.keys.Favorites):
		m.view = viewFavorites
		m.favorites.SetItems(m.sync.Favorites())
		return m, m.loadFavoritesCmd()

	case key.Matches[tea.KeyPressMsg](k, m.keys.Results):
		m.view = viewResults
		return m, nil

	case key.Matches[tea.KeyPressMsg](k, m.keys.Back):
		if m.view != viewForm {
			m.view = viewForm
			return m, m.form.Focus()
		}
		return m, nil
	}

	// Letter shortcuts are safe outside the form (no text inputs there).
	if m.view != viewForm && k.Code == 'g' {
		m.view = viewForm
		return m, m.form.Focus()
	}

	return m.delegate(tea.Msg(k))
}

// delegate routes a message to the component owning the active view.
func (m Model) delegate(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case viewForm:
		m.form, cmd = m.form.Update(teaMsg)
	case viewResults:
		m.results, cmd = m.results.Update(teaMsg)
	case viewHistory:
		m.history, cmd = m.history.Update(teaMsg)
	case viewFavorites:
		m.favorites, cmd = m.favorites.Update(teaMsg)
	}
	return m, cmd
}

// submit validates the draft and, if accepted, fires the generation call.
// Validation failures surface as toasts and leave the session untouched.
func (m Model) submit() (tea.Model, tea.Cmd) {
	req, err := request.Build(m.form.RawInput())
	if err != nil {
		text := "Invalid request"
		var verr *request.ValidationError
		if errors.As(err, &verr) {
			text = verr.Message
		}
		m.toasts.Add(text, toast.Error)
		return m, nil
	}

	if !m.session.Begin() {
		m.toasts.Add("Generation already in progress", toast.Info)
		return m, nil
	}

	m.status.SetPending(true)
	m.saveConfig()
	return m, m.generateCmd(req)
}

// openPicker builds the option list for a form field and shows it.
func (m *Model) openPicker(field form.Field) {
	var (
		title string
		name  string
		items []picker.Option
	)

	switch field {
	case form.FieldStyle:
		title, name = "Select style", "style"
		for _, s := range registry.Styles() {
			items = append(items, picker.Option{ID: s.ID, Label: s.Label, Active: s.ID == m.form.StyleID()})
		}

	case form.FieldProvider:
		title, name = "Select provider", "provider"
		for _, p := range registry.Providers() {
			items = append(items, picker.Option{ID: p, Label: p, Active: p == m.form.Provider()})
		}

	case form.FieldModel:
		title, name = "Select model", "model"
		models, err := registry.ModelsFor(m.form.Provider())
		if err != nil {
			return
		}
		for _, mdl := range models {
			items = append(items, picker.Option{ID: mdl.ID, Label: mdl.Label, Detail: mdl.ID, Active: mdl.ID == m.form.ModelID()})
		}

	case form.FieldQuantity:
		title, name = "Select quantity", "quantity"
		current := m.form.RawInput().Quantity
		for _, q := range quantityPresets {
			id := strconv.Itoa(q)
			items = append(items, picker.Option{ID: id, Label: id + " prompts", Active: id == current})
		}

	case form.FieldFormat:
		title, name = "Select output format", "format"
		for _, f := range registry.OutputFormats {
			items = append(items, picker.Option{ID: f, Label: f, Active: f == m.form.OutputFormat()})
		}

	case form.FieldCredential:
		title, name = "Select credential mode", "credential"
		items = []picker.Option{
			{ID: "shared", Label: "Shared key", Detail: "backend-managed key", Active: m.form.UseSharedKey()},
			{ID: "own", Label: "Own API key", Detail: "bring your provider key", Active: !m.form.UseSharedKey()},
		}

	default:
		return
	}

	m.picker.Show(title, name, items)
}

// applyChoice writes a picker selection back into the form draft.
func (m *Model) applyChoice(c picker.Choice) {
	switch c.Field {
	case "style":
		m.form.SetStyle(c.ID)
	case "provider":
		// Resets the model to the new provider's default as well.
		m.form.SetProvider(c.ID)
	case "model":
		m.form.SetModel(c.ID)
	case "quantity":
		if q, err := strconv.Atoi(c.ID); err == nil {
			m.form.SetQuantity(q)
		}
	case "format":
		m.form.SetOutputFormat(c.ID)
	case "credential":
		m.form.SetSharedKey(c.ID == "shared")
	}
}

func (m *Model) toggleTheme() {
	next := "light"
	if style.CurrentThemeName == "light" {
		next = "dark"
	}
	style.SetTheme(next)
	m.cfg.Theme = next
}

// saveConfig persists the current draft settings (never the API key).
func (m *Model) saveConfig() {
	in := m.form.RawInput()
	m.cfg.Provider = in.Provider
	m.cfg.Model = in.Model
	m.cfg.Style = in.Style
	if q, err := strconv.Atoi(strings.TrimSpace(in.Quantity)); err == nil {
		m.cfg.Quantity = q
	}
	m.cfg.OutputFormat = in.OutputFormat
	m.cfg.UseSharedKey = in.UseSharedKey
	// Best effort: a failed save only costs the next run its defaults.
	_ = config.Save(m.profileDir, m.cfg)
}

func (m *Model) setSize(w, h int) {
	m.width = w
	m.height = h
	m.header.SetWidth(w)
	m.status.SetWidth(w)
	m.form.SetWidth(w)
	m.picker.SetWidth(minInt(w, 72))
	m.results.SetWidth(w)
	listHeight := h - 8
	if listHeight < 3 {
		listHeight = 3
	}
	m.history.SetSize(w, listHeight/2)
	m.favorites.SetSize(w, listHeight/3)
}

// View composes header, active view (or picker overlay), toasts, and
// the status bar.
func (m Model) View() tea.View {
	var sb strings.Builder

	sb.WriteString(m.header.View())
	sb.WriteString("\n")

	if m.toasts.HasToasts() {
		sb.WriteString(m.toasts.View(m.width))
	}
	sb.WriteString("\n")

	var body string
	if m.picker.IsActive() {
		body = m.picker.View()
	} else {
		switch m.view {
		case viewForm:
			body = m.form.View()
		case viewResults:
			body = m.results.View()
		case viewHistory:
			body = m.history.View()
		case viewFavorites:
			body = m.favorites.View()
		}
	}
	sb.WriteString(body)

	content := sb.String()
	lines := strings.Count(content, "\n") + 1
	for i := lines; i < m.height-1; i++ {
		content += "\n"
	}
	content += "\n" + m.status.View(m.hints())

	v := tea.NewView(content)
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true
	return v
}

func (m Model) hints() string {
	if m.picker.IsActive() {
		return "↑↓ navigate · Enter select · Esc cancel"
	}
	switch m.view {
	case viewResults:
		return "s save · c copy all · d download · ctrl+h history · ctrl+f favorites"
	case viewHistory:
		return "Enter open · r reload · g new · ctrl+f favorites"
	case viewFavorites:
		return "y copy · x delete · r reload · g new · ctrl+h history"
	default:
		return "ctrl+g generate · ctrl+h history · ctrl+f favorites · ctrl+c quit"
	}
}

func toastLevel(l msg.ToastLevel) toast.Level {
	switch l {
	case msg.ToastError:
		return toast.Error
	case msg.ToastInfo:
		return toast.Info
	default:
		return toast.Success
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
