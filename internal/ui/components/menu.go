package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// MenuItem is one row of a Menu.
type MenuItem struct {
	Label string
	// Detail is appended after the padded label as is.
	Detail string
	Action func() tea.Cmd
}

// Menu is a wrapping vertical list. Items 1-9 can be picked by number.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	n := len(m.Items)
	key := kmsg.String()
	switch key {
	case "up", "k":
		m.Selected = (m.Selected - 1 + n) % n
	case "down", "j", "tab":
		m.Selected = (m.Selected + 1) % n
	case "home", "g":
		m.Selected = 0
	case "end", "G":
		m.Selected = n - 1
	case "enter", "space":
		return m, m.run(m.Selected)
	default:
		if d, err := strconv.Atoi(key); err == nil && d >= 1 && d <= min(n, 9) {
			m.Selected = d - 1
			return m, m.run(m.Selected)
		}
	}
	return m, nil
}

func (m Menu) run(i int) tea.Cmd {
	if a := m.Items[i].Action; a != nil {
		return a()
	}
	return nil
}

// View pads labels to a common width so details line up.
func (m Menu) View() string {
	labelWidth := 0
	for _, item := range m.Items {
		labelWidth = max(labelWidth, lipgloss.Width(item.Label))
	}

	var b strings.Builder
	for i, item := range m.Items {
		num := ""
		if i < 9 {
			num = strconv.Itoa(i+1) + ". "
		}
		label := num + item.Label + strings.Repeat(" ", labelWidth-lipgloss.Width(item.Label))
		if i == m.Selected {
			b.WriteString(theme.Selected.Render("  ▸ " + label))
		} else {
			b.WriteString(theme.Unselected.Render("    " + label))
		}
		if item.Detail != "" {
			b.WriteString("  " + item.Detail)
		}
		b.WriteString("\n")
	}
	return b.String()
}
