package results

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/screen"
)

func finished(correct, incorrect, secs int) quiz.Machine {
	return quiz.Machine{
		State:    quiz.StateResults,
		Username: "Ana",
		Session: &quiz.Session{
			ID:          "s1",
			Module:      "modulo1",
			Correct:     correct,
			Incorrect:   incorrect,
			ElapsedSecs: secs,
			Chosen:      -1,
		},
	}
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

func TestViewShowsScore(t *testing.T) {
	view := New("Módulo 1", finished(2, 1, 83)).View(100, 30)
	for _, want := range []string{"67%", "Corretas: 2", "Incorretas: 1", "Tempo: 01:23", "Regular.", "Módulo 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestEmptySessionScoresZero(t *testing.T) {
	view := New("Módulo 2", finished(0, 0, 0)).View(100, 30)
	for _, want := range []string{"0%", "Corretas: 0", "Incorretas: 0", "Você precisa dedicar"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestEnterRetriesByDefault(t *testing.T) {
	s := New("Módulo 1", finished(1, 0, 5))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := eventOf(t, cmd).(quiz.Retry); !ok {
		t.Error("expected Retry from the focused first button")
	}
}

func TestSecondButtonGoesBack(t *testing.T) {
	s := New("Módulo 1", finished(1, 0, 5))
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := eventOf(t, cmd).(quiz.BackToModules); !ok {
		t.Error("expected BackToModules from the second button")
	}
}

func TestShortcuts(t *testing.T) {
	s := New("Módulo 1", finished(1, 0, 5))
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if _, ok := eventOf(t, cmd).(quiz.Retry); !ok {
		t.Error("expected Retry on r")
	}
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := eventOf(t, cmd).(quiz.BackToModules); !ok {
		t.Error("expected BackToModules on Esc")
	}
}
