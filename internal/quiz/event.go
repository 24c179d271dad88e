package quiz

import "github.com/abhisek/quizdeck/internal/questions"

// Event is an input to the state machine.
type Event interface {
	isEvent()
}

// Login submits a user name from the login screen.
type Login struct {
	Name string
}

// Resume enters module selection for a user restored from storage.
type Resume struct {
	Name string
}

// SelectModule starts a session over the given questions.
type SelectModule struct {
	Module    string
	Questions []questions.Question
	SessionID string
}

// Answer picks an option of the current question.
type Answer struct {
	Option int
}

// Next moves past an answered question.
type Next struct{}

// RequestAbandon asks to leave the running quiz.
type RequestAbandon struct{}

// RequestLogout asks to return to the login screen.
type RequestLogout struct{}

// ConfirmPending accepts the pending confirmation.
type ConfirmPending struct{}

// CancelPending dismisses the pending confirmation.
type CancelPending struct{}

// Retry starts a fresh session for the module just finished.
type Retry struct {
	Questions []questions.Question
	SessionID string
}

// BackToModules leaves the results screen.
type BackToModules struct{}

// Tick is one second of a session's timer.
type Tick struct {
	SessionID string
}

func (Login) isEvent()          {}
func (Resume) isEvent()         {}
func (SelectModule) isEvent()   {}
func (Answer) isEvent()         {}
func (Next) isEvent()           {}
func (RequestAbandon) isEvent() {}
func (RequestLogout) isEvent()  {}
func (ConfirmPending) isEvent() {}
func (CancelPending) isEvent()  {}
func (Retry) isEvent()          {}
func (BackToModules) isEvent()  {}
func (Tick) isEvent()           {}
