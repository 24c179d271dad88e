package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

const (
	barFull  = "█"
	barEmpty = "░"
)

// ProgressBar draws a whole-number percentage as a row of blocks.
type ProgressBar struct {
	Label       string
	Percent     int
	ShowPercent bool
	Width       int
	// Fill defaults to theme.Secondary.
	Fill color.Color
}

func NewProgressBar(label string, percent int, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, ShowPercent: showPercent, Width: width}
}

func (p ProgressBar) View() string {
	pct := min(max(p.Percent, 0), 100)

	prefix := ""
	if p.Label != "" {
		prefix = theme.Body.Render(p.Label) + "  "
	}
	suffix := ""
	if p.ShowPercent {
		suffix = theme.Muted.Render(fmt.Sprintf(" %3d%%", pct))
	}

	cells := max(p.Width-lipgloss.Width(prefix)-lipgloss.Width(suffix), 4)
	// Anything under 100% keeps at least one empty cell.
	filled := min((cells*pct+50)/100, cells)
	if pct < 100 && filled == cells {
		filled--
	}

	fill := p.Fill
	if fill == nil {
		fill = theme.Secondary
	}
	bar := lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat(barFull, filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat(barEmpty, cells-filled))

	return prefix + bar + suffix
}
