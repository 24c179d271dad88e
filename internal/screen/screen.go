package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// Screen is one page of the quiz UI. The router owns a stack of them;
// the bottom one mirrors the current quiz state and overlays (dialogs,
// notices) sit above it.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body only. The app draws the header and footer.
	View(width, height int) string

	// Title is shown in the header next to the quiz title.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
