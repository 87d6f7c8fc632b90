// Package form is the generation request form. It owns the UI draft of
// the request: free edits live here, and only Submit turns the draft
// into an immutable request payload via the request builder.
//
// Invariant owned by this package: whenever the provider changes, the
// model resets to the new provider's default in the same update. The
// draft never points at a model belonging to the previous provider.
package form

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/promptstock/promptstock-tui/config"
	"github.com/promptstock/promptstock-tui/registry"
	"github.com/promptstock/promptstock-tui/request"
	"github.com/promptstock/promptstock-tui/style"
)

// Field identifies one form row.
type Field int

const (
	FieldKeyword Field = iota
	FieldStyle
	FieldProvider
	FieldModel
	FieldQuantity
	FieldFormat
	FieldCredential
	FieldAPIKey
	FieldSubmit
)

// OpenPickerMsg asks the app to open an option picker for a field.
type OpenPickerMsg struct {
	Field Field
}

// SubmitMsg asks the app to build and submit the current draft.
type SubmitMsg struct{}

// Model is the form state.
type Model struct {
	keyword  textinput.Model
	quantity textinput.Model
	apiKey   textinput.Model

	styleID      string
	provider     string
	modelID      string
	outputFormat string
	useSharedKey bool

	focus Field
	width int
}

// New returns a form pre-populated from persisted settings.
func New(cfg config.Config) Model {
	kw := textinput.New()
	kw.Placeholder = "e.g. sunset over mountain lake"
	kw.CharLimit = 120
	kw.Prompt = ""

	qty := textinput.New()
	qty.Placeholder = "1-20"
	qty.CharLimit = 2
	qty.Prompt = ""

	key := textinput.New()
	key.Placeholder = "sk-..."
	key.CharLimit = 200
	key.Prompt = ""
	key.EchoMode = textinput.EchoPassword

	m := Model{
		keyword:      kw,
		quantity:     qty,
		apiKey:       key,
		styleID:      cfg.Style,
		outputFormat: cfg.OutputFormat,
		useSharedKey: cfg.UseSharedKey,
		focus:        FieldKeyword,
		width:        80,
	}

	provider := cfg.Provider
	if !registry.KnownProvider(provider) {
		provider = registry.Providers()[0]
	}
	m.SetProvider(provider)
	if registry.HasModel(provider, cfg.Model) {
		m.modelID = cfg.Model
	}
	if !registry.KnownStyle(m.styleID) {
		m.styleID = registry.Styles()[0].ID
	}
	if m.outputFormat != "text" && m.outputFormat != "json" {
		m.outputFormat = "text"
	}

	qtyVal := cfg.Quantity
	if qtyVal < request.MinQuantity || qtyVal > request.MaxQuantity {
		qtyVal = 5
	}
	m.quantity.SetValue(strconv.Itoa(qtyVal))

	return m
}

// -- Draft accessors ----------------------------------------------------------

// RawInput snapshots the draft for the request builder.
func (m Model) RawInput() request.RawInput {
	return request.RawInput{
		Keyword:      m.keyword.Value(),
		Style:        m.styleID,
		Provider:     m.provider,
		Model:        m.modelID,
		Quantity:     m.quantity.Value(),
		OutputFormat: m.outputFormat,
		UseSharedKey: m.useSharedKey,
		APIKey:       m.apiKey.Value(),
	}
}

// Provider returns the draft provider.
func (m Model) Provider() string { return m.provider }

// ModelID returns the draft model id.
func (m Model) ModelID() string { return m.modelID }

// StyleID returns the draft style id.
func (m Model) StyleID() string { return m.styleID }

// OutputFormat returns the draft output format.
func (m Model) OutputFormat() string { return m.outputFormat }

// UseSharedKey reports the draft credential mode.
func (m Model) UseSharedKey() bool { return m.useSharedKey }

// Focused returns the currently focused field.
func (m Model) Focused() Field { return m.focus }

// -- Draft mutation -----------------------------------------------------------

// SetProvider switches the provider and resets the model to the new
// provider's default in the same update. Unknown providers are ignored.
func (m *Model) SetProvider(p string) {
	def, err := registry.DefaultModelFor(p)
	if err != nil {
		return
	}
	m.provider = p
	m.modelID = def
}

// SetModel selects a model; ignored unless it belongs to the current
// provider's model set.
func (m *Model) SetModel(id string) {
	if registry.HasModel(m.provider, id) {
		m.modelID = id
	}
}

// SetStyle selects a style; unknown styles are ignored.
func (m *Model) SetStyle(id string) {
	if registry.KnownStyle(id) {
		m.styleID = id
	}
}

// SetOutputFormat selects an output format; unknown values are ignored.
func (m *Model) SetOutputFormat(f string) {
	if f == "text" || f == "json" {
		m.outputFormat = f
	}
}

// SetQuantity overwrites the quantity field.
func (m *Model) SetQuantity(q int) {
	m.quantity.SetValue(strconv.Itoa(q))
}

// SetSharedKey switches the credential mode.
func (m *Model) SetSharedKey(shared bool) {
	m.useSharedKey = shared
}

// SetAPIKey pre-fills the caller key (from the environment).
func (m *Model) SetAPIKey(key string) {
	m.apiKey.SetValue(key)
}

// SetWidth constrains rendering to the terminal width.
func (m *Model) SetWidth(w int) {
	m.width = w
	inner := w - 22
	if inner < 20 {
		inner = 20
	}
	m.keyword.SetWidth(inner)
	m.apiKey.SetWidth(inner)
	m.quantity.SetWidth(6)
}

// Focus gives keyboard focus to the form's focused text field, if any.
func (m *Model) Focus() tea.Cmd {
	return m.syncInputFocus()
}

// -- Update -------------------------------------------------------------------

// Update handles key events while the form is the active view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch keyMsg.Code {
	case tea.KeyUp:
		m.focus = m.prevField()
		return m, m.syncInputFocus()

	case tea.KeyDown, tea.KeyTab:
		m.focus = m.nextField()
		return m, m.syncInputFocus()

	case tea.KeyEnter:
		switch m.focus {
		case FieldStyle, FieldProvider, FieldModel, FieldQuantity, FieldFormat, FieldCredential:
			f := m.focus
			return m, func() tea.Msg { return OpenPickerMsg{Field: f} }
		case FieldSubmit:
			return m, func() tea.Msg { return SubmitMsg{} }
		default:
			// Enter in a text field advances to the next row.
			m.focus = m.nextField()
			return m, m.syncInputFocus()
		}
	}

	return m.updateInputs(msg)
}

// updateInputs routes other messages to whichever text input is focused.
func (m Model) updateInputs(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FieldKeyword:
		m.keyword, cmd = m.keyword.Update(msg)
	case FieldQuantity:
		m.quantity, cmd = m.quantity.Update(msg)
	case FieldAPIKey:
		m.apiKey, cmd = m.apiKey.Update(msg)
	}
	return m, cmd
}

// fields returns the navigable rows in display order. The API key row
// only participates in caller-key mode.
func (m Model) fields() []Field {
	rows := []Field{FieldKeyword, FieldStyle, FieldProvider, FieldModel, FieldQuantity, FieldFormat, FieldCredential}
	if !m.useSharedKey {
		rows = append(rows, FieldAPIKey)
	}
	return append(rows, FieldSubmit)
}

func (m Model) nextField() Field {
	rows := m.fields()
	for i, f := range rows {
		if f == m.focus {
			return rows[(i+1)%len(rows)]
		}
	}
	return rows[0]
}

func (m Model) prevField() Field {
	rows := m.fields()
	for i, f := range rows {
		if f == m.focus {
			return rows[(i-1+len(rows))%len(rows)]
		}
	}
	return rows[0]
}

// syncInputFocus blurs all text inputs, then focuses the one under the
// cursor (if the focused row is a text field).
func (m *Model) syncInputFocus() tea.Cmd {
	m.keyword.Blur()
	m.quantity.Blur()
	m.apiKey.Blur()
	switch m.focus {
	case FieldKeyword:
		return m.keyword.Focus()
	case FieldQuantity:
		return m.quantity.Focus()
	case FieldAPIKey:
		return m.apiKey.Focus()
	}
	return nil
}

// -- View ---------------------------------------------------------------------

// View renders the form rows with the focused row highlighted.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(style.SectionTitle.Render("New generation"))
	sb.WriteString("\n\n")

	sb.WriteString(m.rowText(FieldKeyword, "Keyword", m.keyword.View()))
	sb.WriteString(m.rowValue(FieldStyle, "Style", styleLabel(m.styleID)))
	sb.WriteString(m.rowValue(FieldProvider, "Provider", m.provider))
	sb.WriteString(m.rowValue(FieldModel, "Model", modelLabel(m.provider, m.modelID)))
	sb.WriteString(m.rowText(FieldQuantity, "Quantity", m.quantity.View()))
	sb.WriteString(m.rowValue(FieldFormat, "Format", m.outputFormat))
	sb.WriteString(m.rowValue(FieldCredential, "Credential", credentialLabel(m.useSharedKey)))
	if !m.useSharedKey {
		sb.WriteString(m.rowText(FieldAPIKey, "API key", m.apiKey.View()))
	}

	sb.WriteByte('\n')
	sb.WriteString(m.submitRow())
	sb.WriteByte('\n')
	sb.WriteString(style.Hint.Render("↑↓ move · Enter edit/select · Esc back"))

	return sb.String()
}

func (m Model) rowText(f Field, label, input string) string {
	return m.marker(f) + m.label(f, label) + input + "\n"
}

func (m Model) rowValue(f Field, label, value string) string {
	v := style.FieldValue.Render(value)
	if m.focus == f {
		v = style.FieldFocused.Render(value + " ▾")
	}
	return m.marker(f) + m.label(f, label) + v + "\n"
}

func (m Model) marker(f Field) string {
	if m.focus == f {
		return style.PromptChar.Render("❯ ")
	}
	return "  "
}

func (m Model) label(f Field, text string) string {
	padded := fmt.Sprintf("%-12s", text)
	if m.focus == f {
		return style.FieldFocused.Render(padded)
	}
	return style.FieldLabel.Render(padded)
}

func (m Model) submitRow() string {
	label := " Generate "
	if m.focus == FieldSubmit {
		return m.marker(FieldSubmit) + lipgloss.NewStyle().
			Foreground(style.InputBg).
			Background(style.Primary).
			Bold(true).
			Render(label)
	}
	return "  " + lipgloss.NewStyle().
		Foreground(style.Primary).
		Render("["+strings.TrimSpace(label)+"]")
}

// -- Display helpers ----------------------------------------------------------

func styleLabel(id string) string {
	for _, s := range registry.Styles() {
		if s.ID == id {
			return s.Label
		}
	}
	return id
}

func modelLabel(provider, id string) string {
	models, err := registry.ModelsFor(provider)
	if err != nil {
		return id
	}
	for _, mdl := range models {
		if mdl.ID == id {
			return mdl.Label
		}
	}
	return id
}

func credentialLabel(shared bool) string {
	if shared {
		return "shared key"
	}
	return "own API key"
}
