package components

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// BadgeColor maps a progress percentage to its badge color.
func BadgeColor(percent int) color.Color {
	switch quiz.BadgeFor(percent) {
	case quiz.BadgeHigh:
		return theme.Success
	case quiz.BadgeMid:
		return theme.Warning
	default:
		return theme.Primary
	}
}

// RingColor maps a final score to the color of the score ring.
func RingColor(score int) color.Color {
	switch quiz.RingFor(score) {
	case quiz.RingGreen:
		return theme.Success
	case quiz.RingYellow:
		return theme.Warning
	case quiz.RingOrange:
		return theme.Accent
	default:
		return theme.Error
	}
}

// ProgressBadge renders a percentage as a colored pill.
func ProgressBadge(percent int) string {
	return lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(BadgeColor(percent)).
		Bold(true).
		Padding(0, 1).
		Render(fmt.Sprintf("%3d%%", percent))
}
