package modules

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/screen"
)

func testEntries() []Entry {
	return []Entry{
		{ID: "modulo1", Name: "Módulo 1", Questions: 10, Progress: 50},
		{ID: "modulo2", Name: "Módulo 2", Questions: 4, Progress: 100},
	}
}

func loggedIn() quiz.Machine {
	return quiz.Machine{State: quiz.StateModuleSelect, Username: "Ana"}
}

func eventOf(t *testing.T, cmd tea.Cmd) quiz.Event {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(screen.EventMsg)
	if !ok {
		t.Fatalf("expected EventMsg, got %T", cmd())
	}
	return msg.Event
}

func TestOverallProgress(t *testing.T) {
	s := New(loggedIn(), testEntries())
	if s.Overall() != 75 {
		t.Errorf("Overall = %d, want 75", s.Overall())
	}
}

func TestViewListsModules(t *testing.T) {
	view := New(loggedIn(), testEntries()).View(80, 24)
	for _, want := range []string{"Olá, Ana!", "Módulo 1", "Módulo 2", "50%", "100%", "75%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestEnterSelectsModule(t *testing.T) {
	s := New(loggedIn(), testEntries())
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	ev, ok := eventOf(t, cmd).(quiz.SelectModule)
	if !ok {
		t.Fatalf("expected SelectModule, got %T", ev)
	}
	if ev.Module != "modulo2" {
		t.Errorf("Module = %q, want modulo2", ev.Module)
	}
}

func TestLogoutFlow(t *testing.T) {
	s := New(loggedIn(), testEntries())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := eventOf(t, cmd).(quiz.RequestLogout); !ok {
		t.Fatal("expected RequestLogout on Esc")
	}

	pending := loggedIn()
	pending.Pending = quiz.ConfirmLogout
	s.Update(screen.MachineMsg{Machine: pending})

	if !strings.Contains(s.View(80, 24), "Tem certeza que deseja sair?") {
		t.Error("expected logout confirmation in view")
	}
	if hints := s.KeyHints(); len(hints) != 2 {
		t.Errorf("expected 2 hints while confirming, got %d", len(hints))
	}

	_, cmd = s.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	if _, ok := eventOf(t, cmd).(quiz.CancelPending); !ok {
		t.Error("expected CancelPending on n")
	}
	_, cmd = s.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	if _, ok := eventOf(t, cmd).(quiz.ConfirmPending); !ok {
		t.Error("expected ConfirmPending on s")
	}
}

func TestNoModules(t *testing.T) {
	s := New(loggedIn(), nil)
	if s.Overall() != 0 {
		t.Errorf("Overall = %d, want 0", s.Overall())
	}
	if !strings.Contains(s.View(80, 24), "Nenhum módulo") {
		t.Error("expected empty-state text")
	}
}
