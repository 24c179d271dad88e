package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// NameField is a single-line input that only submits non-blank text.
type NameField struct {
	input   textinput.Model
	warning string
}

// NewNameField returns a focused field limited to maxLen runes.
func NewNameField(placeholder string, maxLen int) NameField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	if maxLen > 0 {
		ti.CharLimit = maxLen
	}
	ti.Focus()
	return NameField{input: ti}
}

func (f NameField) Focus() tea.Cmd {
	return f.input.Focus()
}

// Update forwards key input. Any edit clears a pending warning.
func (f NameField) Update(msg tea.Msg) (NameField, tea.Cmd) {
	var cmd tea.Cmd
	before := f.input.Value()
	f.input, cmd = f.input.Update(msg)
	if f.input.Value() != before {
		f.warning = ""
	}
	return f, cmd
}

// Submit returns the trimmed text. Blank text is refused and leaves a
// warning under the field.
func (f *NameField) Submit(warning string) (string, bool) {
	name := strings.TrimSpace(f.input.Value())
	if name == "" {
		f.warning = warning
		return "", false
	}
	f.warning = ""
	return name, true
}

func (f NameField) Value() string {
	return f.input.Value()
}

func (f *NameField) SetValue(s string) {
	f.input.SetValue(s)
}

func (f NameField) View() string {
	if f.warning == "" {
		return f.input.View()
	}
	return f.input.View() + "\n" + theme.Incorrect.Render(f.warning)
}
