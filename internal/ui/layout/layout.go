package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// Smallest terminal the quiz screens fit in.
const (
	MinWidth  = 60
	MinHeight = 20
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal muito pequeno.\n\nAumente para pelo menos %d x %d.\nAtual: %d x %d",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Body.Render(msg))
}

var rule = lipgloss.NewStyle().Foreground(theme.Border)

// RenderHeader draws one line with the quiz title, the screen title and,
// once logged in, the user's name, followed by a rule.
func RenderHeader(appTitle, title, user string, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(" " + appTitle)
	if title != "" {
		left += theme.Muted.Render("  ›  ") + theme.Body.Render(title)
	}

	right := ""
	if user != "" {
		right = lipgloss.NewStyle().Foreground(theme.Accent).Render("● "+user) + " "
	}

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right + "\n" + rule.Render(strings.Repeat("─", max(width, 0)))
}

// RenderFooter draws a rule followed by the key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, theme.Body.Bold(true).Render(h.Key)+" "+theme.Muted.Render(h.Description))
	}
	return rule.Render(strings.Repeat("─", max(width, 0))) + "\n " + strings.Join(parts, theme.Muted.Render("  ·  "))
}

// BodyHeight is what remains of height once header and footer are drawn.
func BodyHeight(header, footer string, height int) int {
	return max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
}

// RenderFrame stacks header, body and footer, padding the body to fill
// the terminal.
func RenderFrame(header, body, footer string, width, height int) string {
	body = lipgloss.NewStyle().
		Width(width).
		Height(BodyHeight(header, footer, height)).
		Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
