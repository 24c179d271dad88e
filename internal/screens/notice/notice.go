package notice

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// NoticeScreen is a blocking message pushed over another screen. Any key
// dismisses it.
type NoticeScreen struct {
	title string
	lines []string
}

var _ screen.Screen = (*NoticeScreen)(nil)
var _ screen.KeyHintProvider = (*NoticeScreen)(nil)

// New creates a NoticeScreen showing one line per message.
func New(title string, lines []string) *NoticeScreen {
	return &NoticeScreen{title: title, lines: lines}
}

func (s *NoticeScreen) Init() tea.Cmd {
	return nil
}

func (s *NoticeScreen) Title() string {
	return s.title
}

func (s *NoticeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "any key", Description: "OK"},
	}
}

func (s *NoticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *NoticeScreen) View(width, height int) string {
	body := lipgloss.NewStyle().
		Foreground(theme.Error).
		Width(min(width-10, 70)).
		Render(strings.Join(s.lines, "\n\n"))

	hint := theme.Hint.Render("pressione qualquer tecla para continuar")

	box := theme.Dialog.Render(body + "\n\n" + hint)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
