package app

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/quizdeck/internal/config"
	"github.com/abhisek/quizdeck/internal/progress"
	"github.com/abhisek/quizdeck/internal/questions"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/login"
	"github.com/abhisek/quizdeck/internal/screens/modules"
	quizscreen "github.com/abhisek/quizdeck/internal/screens/quiz"
	"github.com/abhisek/quizdeck/internal/screens/results"
	"github.com/abhisek/quizdeck/internal/store"
)

// tickInterval is the resolution of the session clock.
const tickInterval = time.Second

// Deps are the collaborators of a Controller.
type Deps struct {
	Config    config.Config
	Tracker   *progress.Tracker
	Questions *questions.Repository

	// Events receives session lifecycle events. Optional.
	Events store.EventRepo

	// NewID returns session ids. Defaults to random UUIDs.
	NewID func() string
}

// Controller owns the flow state machine and carries out its effects:
// persistence, the session clock and the session event log.
type Controller struct {
	cfg     config.Config
	tracker *progress.Tracker
	repo    *questions.Repository
	events  store.EventRepo
	newID   func() string

	machine quiz.Machine

	// timer is the session whose clock is armed, empty when stopped.
	timer string
}

// NewController creates a Controller on the login state.
func NewController(d Deps) *Controller {
	newID := d.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	return &Controller{
		cfg:     d.Config,
		tracker: d.Tracker,
		repo:    d.Questions,
		events:  d.Events,
		newID:   newID,
		machine: quiz.New(),
	}
}

// Start restores the stored user and loads every module's questions. A
// restored user skips the login screen. The returned errors are per-module
// load failures.
func (c *Controller) Start(ctx context.Context) []*questions.FetchError {
	restored := c.tracker.Load(ctx)
	errs := c.repo.LoadAll(ctx)
	if restored {
		c.Dispatch(ctx, quiz.Resume{Name: c.tracker.Username()})
	}
	return errs
}

// Machine returns the current flow state.
func (c *Controller) Machine() quiz.Machine {
	return c.machine
}

// Config returns the quiz configuration.
func (c *Controller) Config() config.Config {
	return c.cfg
}

// Dispatch applies ev and returns the command for any timer it armed.
func (c *Controller) Dispatch(ctx context.Context, ev quiz.Event) tea.Cmd {
	switch e := ev.(type) {
	case quiz.Tick:
		if e.SessionID == "" || e.SessionID != c.timer {
			return nil
		}
	case quiz.SelectModule:
		e.Questions = c.repo.Get(e.Module)
		e.SessionID = c.newID()
		ev = e
	case quiz.Retry:
		if c.machine.Session != nil {
			e.Questions = c.repo.Get(c.machine.Session.Module)
		}
		e.SessionID = c.newID()
		ev = e
	}

	next, effects := quiz.Apply(c.machine, ev)
	if next.State != c.machine.State {
		slog.Debug("state change", "from", c.machine.State.String(), "to", next.State.String())
	}
	c.machine = next
	return c.run(ctx, effects)
}

func (c *Controller) run(ctx context.Context, effects []quiz.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, eff := range effects {
		switch e := eff.(type) {
		case quiz.SaveUsername:
			if err := c.tracker.SetUsername(ctx, e.Name); err != nil {
				slog.Error("save username", "error", err)
			}
		case quiz.RecordAnswer:
			if err := c.tracker.RecordAnswer(ctx, e.Module, e.Index, e.Correct); err != nil {
				slog.Error("record answer", "module", e.Module, "index", e.Index, "error", err)
			}
		case quiz.ScheduleTick:
			c.timer = e.SessionID
			cmds = append(cmds, tickCmd(e.SessionID))
		case quiz.StopTimer:
			if c.timer == e.SessionID {
				c.timer = ""
			}
		case quiz.SessionStarted:
			c.appendEvent(ctx, store.SessionEventData{
				SessionID: e.SessionID,
				ModuleID:  e.Module,
				Action:    store.ActionStart,
			})
		case quiz.SessionEnded:
			action := store.ActionEnd
			if e.Abandoned {
				action = store.ActionAbandon
			}
			c.appendEvent(ctx, store.SessionEventData{
				SessionID:        e.SessionID,
				ModuleID:         e.Module,
				Action:           action,
				CorrectAnswers:   e.Correct,
				IncorrectAnswers: e.Incorrect,
				DurationSecs:     e.ElapsedSecs,
			})
		}
	}
	return tea.Batch(cmds...)
}

func (c *Controller) appendEvent(ctx context.Context, data store.SessionEventData) {
	if c.events == nil {
		return
	}
	if err := c.events.AppendSessionEvent(ctx, data); err != nil {
		slog.Error("append session event", "session", data.SessionID, "action", data.Action, "error", err)
	}
}

// tickCmd delivers one clock tick for the session after a second.
func tickCmd(sessionID string) tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return screen.EventMsg{Event: quiz.Tick{SessionID: sessionID}}
	})
}

// Save persists the user record.
func (c *Controller) Save(ctx context.Context) {
	if err := c.tracker.Save(ctx); err != nil {
		slog.Error("save user record", "error", err)
	}
}

// exitSaveTimeout bounds the final write once ctx may already be canceled.
const exitSaveTimeout = 5 * time.Second

// SaveOnExit writes the user record even when ctx was canceled by a signal.
func (c *Controller) SaveOnExit(ctx context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), exitSaveTimeout)
	defer cancel()
	c.Save(ctx)
}

// ModuleEntries returns the module list with the user's progress.
func (c *Controller) ModuleEntries() []modules.Entry {
	entries := make([]modules.Entry, 0, len(c.cfg.Modules))
	for _, m := range c.cfg.Modules {
		count := c.repo.Count(m.ID)
		entries = append(entries, modules.Entry{
			ID:        m.ID,
			Name:      m.Name,
			Questions: count,
			Progress:  quiz.ModuleProgress(m.ID, count, c.tracker.Module(m.ID)),
		})
	}
	return entries
}

// ScreenFor builds the screen that presents state m.
func (c *Controller) ScreenFor(m quiz.Machine) screen.Screen {
	switch m.State {
	case quiz.StateModuleSelect:
		return modules.New(m, c.ModuleEntries())
	case quiz.StateInQuiz:
		return quizscreen.New(c.cfg.ModuleName(m.Session.Module), m)
	case quiz.StateResults:
		return results.New(c.cfg.ModuleName(m.Session.Module), m)
	default:
		return login.New(c.cfg.Title)
	}
}
