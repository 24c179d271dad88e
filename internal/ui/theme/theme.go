package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette. Success, Warning, Accent and Error double as the score ring
// colors (green, yellow, orange, red).
var (
	Primary   = lipgloss.Color("#3B82F6") // blue
	Secondary = lipgloss.Color("#06B6D4") // cyan
	Accent    = lipgloss.Color("#F97316") // orange
	Success   = lipgloss.Color("#22C55E")
	Warning   = lipgloss.Color("#EAB308")
	Error     = lipgloss.Color("#EF4444")
	Text      = lipgloss.Color("#F1F5F9")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0B1220")
	BgCard    = lipgloss.Color("#172033")
	Border    = lipgloss.Color("#2D3B55")
)

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body     = lipgloss.NewStyle().Foreground(Text)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	Muted    = lipgloss.NewStyle().Foreground(TextDim)

	// Question is the prompt text on the quiz screen.
	Question = lipgloss.NewStyle().Foreground(Text).Bold(true)
	Counter  = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	Clock    = lipgloss.NewStyle().Foreground(Accent)
)

var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Dialog = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(Accent).
		Padding(1, 4)
)

var (
	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Correct    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Error).Bold(true)
)

var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// Verdict picks the correct or incorrect style.
func Verdict(ok bool) lipgloss.Style {
	if ok {
		return Correct
	}
	return Incorrect
}
