package login

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

const maxNameLen = 40

// LoginScreen asks for the user's name.
type LoginScreen struct {
	title string
	input components.NameField
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a LoginScreen for the quiz with the given title.
func New(title string) *LoginScreen {
	return &LoginScreen{
		title: title,
		input: components.NewNameField("Digite seu nome", maxNameLen),
	}
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.input.Focus()
}

func (s *LoginScreen) Title() string {
	return "Entrar"
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Entrar"},
		{Key: "Ctrl+C", Description: "Sair"},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		name, ok := s.input.Submit("Informe seu nome para continuar.")
		if !ok {
			return s, nil
		}
		return s, screen.Dispatch(quiz.Login{Name: name})
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *LoginScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(s.title))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render("Como você se chama?"))
	b.WriteString("\n\n")
	b.WriteString(theme.Card.Render(s.input.View()))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
