package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// ResultsScreen displays the outcome of a finished session.
type ResultsScreen struct {
	module  string
	session quiz.Session
	buttons components.ButtonRow
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for the finished session in m.
func New(module string, m quiz.Machine) *ResultsScreen {
	var sess quiz.Session
	if m.Session != nil {
		sess = *m.Session
	}
	return &ResultsScreen{
		module:  module,
		session: sess,
		buttons: components.NewButtonRow(
			components.NewButton("Tentar novamente", false, func() tea.Cmd {
				return screen.Dispatch(quiz.Retry{})
			}),
			components.NewButton("Voltar aos módulos", false, func() tea.Cmd {
				return screen.Dispatch(quiz.BackToModules{})
			}),
		),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Resultado"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Escolher"},
		{Key: "Enter", Description: "Confirmar"},
		{Key: "R", Description: "Tentar novamente"},
		{Key: "Esc", Description: "Módulos"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "r", "R":
		return s, screen.Dispatch(quiz.Retry{})
	case "esc":
		return s, screen.Dispatch(quiz.BackToModules{})
	}
	var cmd tea.Cmd
	s.buttons, cmd = s.buttons.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) View(width, height int) string {
	score := s.session.Score()
	var b strings.Builder

	b.WriteString(theme.Title.Render("Quiz concluído!"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(s.module))
	b.WriteString("\n\n")

	ring := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(components.RingColor(score)).
		Foreground(components.RingColor(score)).
		Bold(true).
		Padding(1, 4).
		Render(fmt.Sprintf("%d%%", score))
	b.WriteString(ring)
	b.WriteString("\n\n")

	b.WriteString(theme.Correct.Render(fmt.Sprintf("Corretas: %d", s.session.Correct)))
	b.WriteString("    ")
	b.WriteString(theme.Incorrect.Render(fmt.Sprintf("Incorretas: %d", s.session.Incorrect)))
	b.WriteString("    ")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).
		Render("Tempo: " + quiz.FormatElapsed(s.session.ElapsedSecs)))
	b.WriteString("\n\n")

	b.WriteString(theme.Card.Render(quiz.Analysis(score)))
	b.WriteString("\n\n")
	b.WriteString(s.buttons.View())

	content := lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
