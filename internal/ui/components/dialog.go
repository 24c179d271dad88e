package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// ConfirmDialog renders a yes/no question centered in the given area.
func ConfirmDialog(question string, width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(question))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("[S] Sim"))
	b.WriteString("    ")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render("[N] Não"))

	box := theme.Dialog.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// IsYes reports whether key confirms a dialog.
func IsYes(key string) bool {
	switch key {
	case "s", "S", "y", "Y":
		return true
	}
	return false
}

// IsNo reports whether key dismisses a dialog.
func IsNo(key string) bool {
	switch key {
	case "n", "N", "esc":
		return true
	}
	return false
}
