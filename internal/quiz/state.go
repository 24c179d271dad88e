package quiz

import "github.com/abhisek/quizdeck/internal/questions"

// State is the screen the user is on.
type State int

const (
	StateLoggedOut    State = iota // Waiting for a user name
	StateModuleSelect              // Choosing a module
	StateInQuiz                    // Answering questions
	StateResults                   // Looking at the score of a finished session
)

func (s State) String() string {
	switch s {
	case StateLoggedOut:
		return "logged-out"
	case StateModuleSelect:
		return "module-select"
	case StateInQuiz:
		return "in-quiz"
	case StateResults:
		return "results"
	default:
		return "unknown"
	}
}

// Confirm is a pending yes/no question shown over the current screen.
type Confirm int

const (
	ConfirmNone Confirm = iota
	ConfirmAbandon
	ConfirmLogout
)

// Session is the state of one pass through a module. It is never persisted.
type Session struct {
	// ID owns the session's timer; ticks carrying another ID are stale.
	ID string

	Module    string
	Questions []questions.Question

	// Index points at the current question.
	Index int

	Correct   int
	Incorrect int

	ElapsedSecs int

	// Answered is true once the current question has been answered.
	Answered bool

	// Chosen is the option picked for the current question, -1 before answering.
	Chosen int
}

// Current returns the question at Index.
func (s Session) Current() (questions.Question, bool) {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return questions.Question{}, false
	}
	return s.Questions[s.Index], true
}

// Total is the number of questions in the session.
func (s Session) Total() int {
	return len(s.Questions)
}

// Answers is the number of questions answered so far.
func (s Session) Answers() int {
	return s.Correct + s.Incorrect
}

// Score returns the session's score percentage.
func (s Session) Score() int {
	return ScorePercentage(s.Correct, s.Incorrect)
}

// Machine is the whole flow state. Apply never mutates its input.
type Machine struct {
	State    State
	Username string

	// Session is set while InQuiz and kept on Results for display and retry.
	Session *Session

	Pending Confirm
}

// New returns a machine on the login screen.
func New() Machine {
	return Machine{State: StateLoggedOut}
}
