package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	flow "github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// QuizScreen shows the current question of a running session.
type QuizScreen struct {
	title   string
	machine flow.Machine
	index   int
	choice  components.MultiChoice
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the session held by m. title is the module name.
func New(title string, m flow.Machine) *QuizScreen {
	s := &QuizScreen{title: title, index: -1}
	s.sync(m)
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return s.title
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.machine.Pending == flow.ConfirmAbandon {
		return []layout.KeyHint{
			{Key: "S", Description: "Sair do quiz"},
			{Key: "N", Description: "Continuar"},
		}
	}
	if s.answered() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Próxima"},
			{Key: "Esc", Description: "Sair do quiz"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter/1-9", Description: "Responder"},
		{Key: "Esc", Description: "Sair do quiz"},
	}
}

// sync copies the machine into the screen and rebuilds the options when the
// question changes.
func (s *QuizScreen) sync(m flow.Machine) {
	s.machine = m
	sess := m.Session
	if sess == nil {
		return
	}
	if sess.Index != s.index {
		s.index = sess.Index
		if q, ok := sess.Current(); ok {
			s.choice = components.NewMultiChoice(q.Options, q.CorrectIndex, func(option int) tea.Cmd {
				return screen.Dispatch(flow.Answer{Option: option})
			})
		}
	}
	if sess.Answered && !s.choice.Submitted {
		s.choice.Reveal(sess.Chosen)
	}
}

func (s *QuizScreen) answered() bool {
	return s.machine.Session != nil && s.machine.Session.Answered
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.MachineMsg:
		s.sync(msg.Machine)
		return s, nil

	case tea.KeyMsg:
		key := msg.String()
		if s.machine.Pending == flow.ConfirmAbandon {
			switch {
			case components.IsYes(key):
				return s, screen.Dispatch(flow.ConfirmPending{})
			case components.IsNo(key):
				return s, screen.Dispatch(flow.CancelPending{})
			}
			return s, nil
		}
		if key == "esc" {
			return s, screen.Dispatch(flow.RequestAbandon{})
		}
		if s.answered() {
			switch key {
			case "enter", "space", "right", "l":
				return s, screen.Dispatch(flow.Next{})
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) View(width, height int) string {
	if s.machine.Pending == flow.ConfirmAbandon {
		return components.ConfirmDialog("Tem certeza que deseja sair do quiz? Seu progresso será salvo.", width, height)
	}

	sess := s.machine.Session
	if sess == nil {
		return ""
	}
	q, ok := sess.Current()
	if !ok {
		return ""
	}

	inner := min(width-4, 76)
	var b strings.Builder

	// Info line: question number and type on the left, clock on the right.
	left := theme.Counter.Render(fmt.Sprintf("Questão %d/%d", sess.Index+1, sess.Total())) +
		theme.Muted.Render("  ·  "+q.Type.Label())
	right := theme.Clock.Render("⏱ " + flow.FormatElapsed(sess.ElapsedSecs))
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	b.WriteString(left + strings.Repeat(" ", max(gap, 1)) + right)
	b.WriteString("\n")

	b.WriteString(components.NewProgressBar("", (sess.Index+1)*100/sess.Total(), false, inner).View())
	b.WriteString("\n\n")

	b.WriteString(theme.Question.Width(inner).Render(q.Question))
	b.WriteString("\n\n")
	b.WriteString(s.choice.View())

	if sess.Answered {
		b.WriteString("\n")
		label := "Incorreta!"
		if s.choice.IsCorrect() {
			label = "Correta!"
		}
		explanation := theme.Verdict(s.choice.IsCorrect()).Render(label) + "\n" + theme.Body.Render(q.Explanation)
		b.WriteString(theme.Card.Width(inner).Render(explanation))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Correct.Render(fmt.Sprintf("Corretas: %d", sess.Correct)))
	b.WriteString("    ")
	b.WriteString(theme.Incorrect.Render(fmt.Sprintf("Incorretas: %d", sess.Incorrect)))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}
