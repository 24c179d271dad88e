package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. It only moves the cursor; the
// answer is handed to OnChoose and shown once Reveal is called.
type MultiChoice struct {
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
	OnChoose     func(option int) tea.Cmd
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(options []string, correctIndex int, onChoose func(int) tea.Cmd) MultiChoice {
	return MultiChoice{
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
		OnChoose:     onChoose,
	}
}

// Reveal marks the question as answered with the given option.
func (m *MultiChoice) Reveal(chosen int) {
	m.Submitted = true
	m.ChosenIndex = chosen
	if chosen >= 0 {
		m.Selected = chosen
	}
}

// Update handles arrows, Enter and the number keys 1-9.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		return m, m.choose(m.Selected)
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Options) {
			m.Selected = n - 1
			return m, m.choose(n - 1)
		}
	}

	return m, nil
}

func (m MultiChoice) choose(option int) tea.Cmd {
	if m.OnChoose == nil || option < 0 || option >= len(m.Options) {
		return nil
	}
	return m.OnChoose(option)
}

// View renders the options. After Reveal the correct option is green and a
// wrong pick is red.
func (m MultiChoice) View() string {
	var b strings.Builder

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%c)  %s", prefix, optionLetter(i), opt)

		var style lipgloss.Style
		switch {
		case m.Submitted && i == m.CorrectIndex:
			style = theme.Correct
		case m.Submitted && i == m.ChosenIndex:
			style = theme.Incorrect
		case m.Submitted:
			style = theme.Muted
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// IsCorrect returns true if the user chose the correct answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}

func optionLetter(i int) rune {
	if i < 26 {
		return rune('A' + i)
	}
	return '?'
}
