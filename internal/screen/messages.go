package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// EventMsg carries a flow event from a screen to the app, which applies it
// to the state machine.
type EventMsg struct {
	Event quiz.Event
}

// MachineMsg tells the current screen that the machine changed without
// leaving its state, for example after an answer or a timer tick.
type MachineMsg struct {
	Machine quiz.Machine
}

// Dispatch returns a command that delivers ev to the app.
func Dispatch(ev quiz.Event) tea.Cmd {
	return func() tea.Msg {
		return EventMsg{Event: ev}
	}
}
