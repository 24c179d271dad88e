package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

type chosenMsg int

func TestMenuWraps(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "one"}, {Label: "two"}, {Label: "three"}})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 2 {
		t.Fatalf("expected up from the top to wrap, got %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 0 {
		t.Errorf("expected down from the bottom to wrap, got %d", m.Selected)
	}
}

func TestMenuNumberKeyPicks(t *testing.T) {
	picked := -1
	item := func(i int) MenuItem {
		return MenuItem{Label: "m", Action: func() tea.Cmd {
			picked = i
			return nil
		}}
	}
	m := NewMenu([]MenuItem{item(0), item(1)})

	m, _ = m.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	if picked != 1 || m.Selected != 1 {
		t.Errorf("picked %d, selected %d; want 1, 1", picked, m.Selected)
	}

	picked = -1
	m.Update(tea.KeyPressMsg{Code: '5', Text: "5"})
	if picked != -1 {
		t.Errorf("expected out-of-range number to be ignored, picked %d", picked)
	}
}

func TestMenuEnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "go", Action: func() tea.Cmd {
		ran = true
		return nil
	}}})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !ran {
		t.Error("expected Enter to run the selected action")
	}
}

func TestMenuViewShowsDetail(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Módulo 1", Detail: "67%"}})
	if view := m.View(); !strings.Contains(view, "Módulo 1") || !strings.Contains(view, "67%") {
		t.Errorf("menu view missing label or detail: %q", view)
	}
}

func TestMultiChoiceNumberKey(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b", "c"}, 1, func(i int) tea.Cmd {
		return func() tea.Msg { return chosenMsg(i) }
	})
	mc, cmd := mc.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	if cmd == nil {
		t.Fatal("expected a command for a number key")
	}
	if got := cmd(); got != chosenMsg(2) {
		t.Errorf("expected option 2, got %v", got)
	}
	if mc.Selected != 2 {
		t.Errorf("expected cursor on option 2, got %d", mc.Selected)
	}
}

func TestMultiChoiceOutOfRangeNumber(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b"}, 0, func(i int) tea.Cmd {
		return func() tea.Msg { return chosenMsg(i) }
	})
	if _, cmd := mc.Update(tea.KeyPressMsg{Code: '5', Text: "5"}); cmd != nil {
		t.Error("expected no command for an option that does not exist")
	}
}

func TestMultiChoiceEnterAndReveal(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b"}, 0, func(i int) tea.Cmd {
		return func() tea.Msg { return chosenMsg(i) }
	})
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := mc.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil || cmd() != chosenMsg(1) {
		t.Fatal("expected Enter to choose the highlighted option")
	}

	mc.Reveal(1)
	if mc.IsCorrect() {
		t.Error("option 1 is not the correct one")
	}
	if _, cmd := mc.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("expected no further choices after reveal")
	}
	if !strings.Contains(mc.View(), "B)") {
		t.Error("expected lettered options in view")
	}
}

func TestProgressBarClamps(t *testing.T) {
	for _, pct := range []int{-10, 0, 50, 100, 250} {
		bar := NewProgressBar("", pct, true, 30)
		view := bar.View()
		if view == "" {
			t.Errorf("empty view for %d%%", pct)
		}
	}
	if view := NewProgressBar("", 250, true, 30).View(); !strings.Contains(view, "100%") {
		t.Errorf("expected clamp to 100%%, got %q", view)
	}
}

func TestProgressBarCells(t *testing.T) {
	full := NewProgressBar("", 100, false, 20).View()
	if strings.Contains(full, barEmpty) || strings.Count(full, barFull) != 20 {
		t.Errorf("100%% bar should be all full cells: %q", full)
	}
	empty := NewProgressBar("", 0, false, 20).View()
	if strings.Contains(empty, barFull) {
		t.Errorf("0%% bar should have no full cells: %q", empty)
	}
	almost := NewProgressBar("", 99, false, 20).View()
	if !strings.Contains(almost, barEmpty) {
		t.Errorf("99%% bar should keep an empty cell: %q", almost)
	}
}

func TestButtonRowFocus(t *testing.T) {
	pressed := -1
	row := NewButtonRow(
		NewButton("a", false, func() tea.Cmd {
			pressed = 0
			return nil
		}),
		NewButton("b", false, func() tea.Cmd {
			pressed = 1
			return nil
		}),
	)
	if row.Focused() != 0 || !row.Buttons[0].Active {
		t.Fatal("expected first button focused")
	}
	row, _ = row.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if row.Focused() != 1 || row.Buttons[0].Active {
		t.Errorf("expected focus on second button, got %d", row.Focused())
	}
	row.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pressed != 1 {
		t.Errorf("expected second button pressed, got %d", pressed)
	}
	row, _ = row.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if row.Focused() != 0 {
		t.Errorf("expected focus to wrap, got %d", row.Focused())
	}
}

func TestNameFieldSubmit(t *testing.T) {
	f := NewNameField("nome", 40)
	f.SetValue("  Ana ")
	if got, ok := f.Submit("vazio"); !ok || got != "Ana" {
		t.Errorf("Submit = %q, %v; want %q, true", got, ok, "Ana")
	}

	f.SetValue("   ")
	if _, ok := f.Submit("vazio"); ok {
		t.Error("expected blank text to be refused")
	}
	if !strings.Contains(f.View(), "vazio") {
		t.Error("expected warning in view")
	}

	f, _ = f.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if strings.Contains(f.View(), "vazio") {
		t.Error("expected edit to clear the warning")
	}
}

func TestDialogKeys(t *testing.T) {
	for _, k := range []string{"s", "S", "y", "Y"} {
		if !IsYes(k) {
			t.Errorf("expected %q to confirm", k)
		}
	}
	for _, k := range []string{"n", "N", "esc"} {
		if !IsNo(k) {
			t.Errorf("expected %q to dismiss", k)
		}
	}
	if IsYes("enter") || IsNo("enter") {
		t.Error("enter should neither confirm nor dismiss")
	}
}

func TestConfirmDialogText(t *testing.T) {
	out := ConfirmDialog("Tem certeza?", 60, 10)
	if !strings.Contains(out, "Tem certeza?") || !strings.Contains(out, "[S] Sim") {
		t.Errorf("dialog missing text: %q", out)
	}
}

func TestProgressBadgeText(t *testing.T) {
	if out := ProgressBadge(67); !strings.Contains(out, "67%") {
		t.Errorf("badge missing percentage: %q", out)
	}
}
