package modules

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

// Entry is one row of the module list.
type Entry struct {
	ID        string
	Name      string
	Questions int
	Progress  int
}

// ModulesScreen lists the configured modules with the user's progress.
type ModulesScreen struct {
	machine quiz.Machine
	entries []Entry
	overall int
	menu    components.Menu
}

var _ screen.Screen = (*ModulesScreen)(nil)
var _ screen.KeyHintProvider = (*ModulesScreen)(nil)

// New creates a ModulesScreen. Progress figures are computed by the caller.
func New(m quiz.Machine, entries []Entry) *ModulesScreen {
	progress := make([]int, len(entries))
	items := make([]components.MenuItem, len(entries))
	for i, e := range entries {
		progress[i] = e.Progress
		id := e.ID
		items[i] = components.MenuItem{
			Label:  e.Name,
			Detail: components.ProgressBadge(e.Progress) + theme.Muted.Render(fmt.Sprintf("  %d questões", e.Questions)),
			Action: func() tea.Cmd {
				return screen.Dispatch(quiz.SelectModule{Module: id})
			},
		}
	}

	return &ModulesScreen{
		machine: m,
		entries: entries,
		overall: quiz.OverallProgress(progress),
		menu:    components.NewMenu(items),
	}
}

func (s *ModulesScreen) Init() tea.Cmd {
	return nil
}

func (s *ModulesScreen) Title() string {
	return "Módulos"
}

func (s *ModulesScreen) KeyHints() []layout.KeyHint {
	if s.machine.Pending == quiz.ConfirmLogout {
		return []layout.KeyHint{
			{Key: "S", Description: "Sair"},
			{Key: "N", Description: "Ficar"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Iniciar"},
		{Key: "Esc", Description: "Sair da conta"},
		{Key: "Ctrl+C", Description: "Fechar"},
	}
}

// Overall returns the overall progress shown on the screen.
func (s *ModulesScreen) Overall() int {
	return s.overall
}

func (s *ModulesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.MachineMsg:
		s.machine = msg.Machine
		return s, nil

	case tea.KeyMsg:
		key := msg.String()
		if s.machine.Pending == quiz.ConfirmLogout {
			switch {
			case components.IsYes(key):
				return s, screen.Dispatch(quiz.ConfirmPending{})
			case components.IsNo(key):
				return s, screen.Dispatch(quiz.CancelPending{})
			}
			return s, nil
		}
		if key == "esc" || key == "q" {
			return s, screen.Dispatch(quiz.RequestLogout{})
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ModulesScreen) View(width, height int) string {
	if s.machine.Pending == quiz.ConfirmLogout {
		return components.ConfirmDialog("Tem certeza que deseja sair? Seu progresso está salvo.", width, height)
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Olá, %s!", s.machine.Username)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Progresso geral", s.overall, true, min(width-8, 56))
	bar.Fill = components.BadgeColor(s.overall)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	if len(s.entries) == 0 {
		b.WriteString(theme.Hint.Render("Nenhum módulo configurado."))
	} else {
		b.WriteString(s.menu.View())
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
