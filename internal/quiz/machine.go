package quiz

import (
	"strings"

	"github.com/abhisek/quizdeck/internal/questions"
)

// Apply runs one event through the machine and returns the next machine and
// the effects the caller has to carry out. Events that are not valid in the
// current state leave the machine unchanged and produce no effects.
func Apply(m Machine, ev Event) (Machine, []Effect) {
	if m.Pending != ConfirmNone {
		return applyPending(m, ev)
	}

	switch m.State {
	case StateLoggedOut:
		return applyLoggedOut(m, ev)
	case StateModuleSelect:
		return applyModuleSelect(m, ev)
	case StateInQuiz:
		return applyInQuiz(m, ev)
	case StateResults:
		return applyResults(m, ev)
	}
	return m, nil
}

func applyLoggedOut(m Machine, ev Event) (Machine, []Effect) {
	switch ev := ev.(type) {
	case Login:
		name := strings.TrimSpace(ev.Name)
		if name == "" {
			return m, nil
		}
		m.Username = name
		m.State = StateModuleSelect
		return m, []Effect{SaveUsername{Name: name}}
	case Resume:
		if ev.Name == "" {
			return m, nil
		}
		m.Username = ev.Name
		m.State = StateModuleSelect
		return m, nil
	}
	return m, nil
}

func applyModuleSelect(m Machine, ev Event) (Machine, []Effect) {
	switch ev := ev.(type) {
	case SelectModule:
		return startSession(m, ev.Module, ev.Questions, ev.SessionID)
	case RequestLogout:
		m.Pending = ConfirmLogout
		return m, nil
	}
	return m, nil
}

func applyInQuiz(m Machine, ev Event) (Machine, []Effect) {
	if m.Session == nil {
		return m, nil
	}
	s := *m.Session

	switch ev := ev.(type) {
	case Answer:
		q, ok := s.Current()
		if !ok || s.Answered || ev.Option < 0 || ev.Option >= len(q.Options) {
			return m, nil
		}
		correct := q.IsCorrect(ev.Option)
		s.Answered = true
		s.Chosen = ev.Option
		if correct {
			s.Correct++
		} else {
			s.Incorrect++
		}
		m.Session = &s
		return m, []Effect{RecordAnswer{Module: s.Module, Index: s.Index, Correct: correct}}

	case Next:
		if !s.Answered {
			return m, nil
		}
		s.Index++
		s.Answered = false
		s.Chosen = -1
		m.Session = &s
		if s.Index >= s.Total() {
			return finishSession(m)
		}
		return m, nil

	case RequestAbandon:
		m.Pending = ConfirmAbandon
		return m, nil

	case Tick:
		if ev.SessionID != s.ID {
			return m, nil
		}
		s.ElapsedSecs++
		m.Session = &s
		return m, []Effect{ScheduleTick{SessionID: s.ID}}
	}
	return m, nil
}

func applyResults(m Machine, ev Event) (Machine, []Effect) {
	switch ev := ev.(type) {
	case Retry:
		if m.Session == nil {
			return m, nil
		}
		return startSession(m, m.Session.Module, ev.Questions, ev.SessionID)
	case BackToModules:
		m.State = StateModuleSelect
		m.Session = nil
		return m, nil
	}
	return m, nil
}

func applyPending(m Machine, ev Event) (Machine, []Effect) {
	switch ev.(type) {
	case CancelPending:
		m.Pending = ConfirmNone
		return m, nil
	case ConfirmPending:
		pending := m.Pending
		m.Pending = ConfirmNone
		switch pending {
		case ConfirmLogout:
			m.State = StateLoggedOut
			m.Username = ""
			return m, nil
		case ConfirmAbandon:
			return abandonSession(m)
		}
		return m, nil
	case Tick:
		// The session clock keeps running behind the dialog.
		if m.State == StateInQuiz {
			return applyInQuiz(m, ev)
		}
	}
	return m, nil
}

func startSession(m Machine, module string, qs []questions.Question, sessionID string) (Machine, []Effect) {
	m.State = StateInQuiz
	m.Session = &Session{
		ID:        sessionID,
		Module:    module,
		Questions: qs,
		Chosen:    -1,
	}
	effects := []Effect{SessionStarted{SessionID: sessionID, Module: module}}
	if len(qs) == 0 {
		var end []Effect
		m, end = finishSession(m)
		return m, append(effects, end...)
	}
	return m, append(effects, ScheduleTick{SessionID: sessionID})
}

func finishSession(m Machine) (Machine, []Effect) {
	s := m.Session
	m.State = StateResults
	return m, []Effect{
		StopTimer{SessionID: s.ID},
		SessionEnded{
			SessionID:   s.ID,
			Module:      s.Module,
			Correct:     s.Correct,
			Incorrect:   s.Incorrect,
			ElapsedSecs: s.ElapsedSecs,
		},
	}
}

func abandonSession(m Machine) (Machine, []Effect) {
	s := m.Session
	m.State = StateModuleSelect
	m.Session = nil
	if s == nil {
		return m, nil
	}
	return m, []Effect{
		StopTimer{SessionID: s.ID},
		SessionEnded{
			SessionID:   s.ID,
			Module:      s.Module,
			Correct:     s.Correct,
			Incorrect:   s.Incorrect,
			ElapsedSecs: s.ElapsedSecs,
			Abandoned:   true,
		},
	}
}
