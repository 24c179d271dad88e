package quiz

// Effect is work the caller must perform after a transition.
type Effect interface {
	isEffect()
}

// SaveUsername persists the user name.
type SaveUsername struct {
	Name string
}

// RecordAnswer persists the outcome of one question.
type RecordAnswer struct {
	Module  string
	Index   int
	Correct bool
}

// ScheduleTick arms the one-second timer of a session.
type ScheduleTick struct {
	SessionID string
}

// StopTimer disarms the timer of a session.
type StopTimer struct {
	SessionID string
}

// SessionStarted marks the start of a session.
type SessionStarted struct {
	SessionID string
	Module    string
}

// SessionEnded marks a finished or abandoned session.
type SessionEnded struct {
	SessionID   string
	Module      string
	Correct     int
	Incorrect   int
	ElapsedSecs int
	Abandoned   bool
}

func (SaveUsername) isEffect()   {}
func (RecordAnswer) isEffect()   {}
func (ScheduleTick) isEffect()   {}
func (StopTimer) isEffect()      {}
func (SessionStarted) isEffect() {}
func (SessionEnded) isEffect()   {}
