package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdeck/internal/config"
	"github.com/abhisek/quizdeck/internal/progress"
	"github.com/abhisek/quizdeck/internal/questions"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/store"
)

const threeQuestions = `[
  {"question": "Q1", "options": ["a", "b", "c", "d"], "correctIndex": 1, "explanation": "e1", "type": "conteudista"},
  {"question": "Q2", "options": ["a", "b", "c", "d"], "correctIndex": 2, "explanation": "e2", "type": "raciocinio"},
  {"question": "Q3", "options": ["a", "b", "c", "d"], "correctIndex": 0, "explanation": "e3", "type": "conteudista"}
]`

type harness struct {
	dir   string
	store *store.Store
	cfg   config.Config
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "questoes_modulo1.json"), []byte(threeQuestions), 0o644))

	s, err := store.Open(filepath.Join(dir, "quizdeck.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return &harness{dir: dir, store: s, cfg: config.DefaultConfig()}
}

func (h *harness) controller() *Controller {
	tracker := progress.NewTracker(h.store.KVRepo(), h.cfg.StorageKey, h.cfg.ModuleIDs())
	repo := questions.NewRepository(questions.DirFetcher{Dir: h.dir}, h.cfg.Modules, tracker)
	n := 0
	return NewController(Deps{
		Config:    h.cfg,
		Tracker:   tracker,
		Questions: repo,
		Events:    h.store.EventRepo(),
		NewID: func() string {
			n++
			return fmt.Sprintf("session-%d", n)
		},
	})
}

func answerAll(ctx context.Context, c *Controller, options ...int) {
	for _, opt := range options {
		c.Dispatch(ctx, quiz.Answer{Option: opt})
		c.Dispatch(ctx, quiz.Next{})
	}
}

func TestStartReportsMissingModule(t *testing.T) {
	ctx := context.Background()
	c := newHarness(t).controller()

	errs := c.Start(ctx)
	require.Len(t, errs, 1)
	assert.Equal(t, "modulo2", errs[0].Module.ID)
	assert.Equal(t, 404, errs[0].Status())
	assert.Equal(t, "Erro ao carregar o módulo Módulo 2. Verifique se o arquivo questoes_modulo2.json existe.", errs[0].UserMessage())
	assert.Equal(t, quiz.StateLoggedOut, c.Machine().State)
}

func TestFullSessionPersists(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	c := h.controller()
	c.Start(ctx)

	c.Dispatch(ctx, quiz.Login{Name: "Ana"})
	require.Equal(t, quiz.StateModuleSelect, c.Machine().State)

	cmd := c.Dispatch(ctx, quiz.SelectModule{Module: "modulo1"})
	assert.NotNil(t, cmd, "starting a session arms the clock")
	require.Equal(t, quiz.StateInQuiz, c.Machine().State)
	assert.Equal(t, "session-1", c.Machine().Session.ID)

	answerAll(ctx, c, 1, 0, 0)

	m := c.Machine()
	require.Equal(t, quiz.StateResults, m.State)
	assert.Equal(t, 2, m.Session.Correct)
	assert.Equal(t, 1, m.Session.Incorrect)
	assert.Equal(t, 67, m.Session.Score())

	entries := c.ModuleEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, 67, entries[0].Progress)
	assert.Equal(t, 3, entries[0].Questions)
	assert.Equal(t, 0, entries[1].Progress)

	sessions, err := h.store.EventRepo().RecentSessions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, store.ActionEnd, sessions[0].Action)
	assert.Equal(t, "session-1", sessions[0].SessionID)
	assert.Equal(t, 2, sessions[0].CorrectAnswers)
	assert.Equal(t, 1, sessions[0].IncorrectAnswers)

	// A new process resumes the stored user with the same progress.
	c2 := h.controller()
	c2.Start(ctx)
	assert.Equal(t, quiz.StateModuleSelect, c2.Machine().State)
	assert.Equal(t, "Ana", c2.Machine().Username)
	assert.Equal(t, 67, c2.ModuleEntries()[0].Progress)
}

func TestClockTicksOnlyForActiveSession(t *testing.T) {
	ctx := context.Background()
	c := newHarness(t).controller()
	c.Start(ctx)
	c.Dispatch(ctx, quiz.Login{Name: "Ana"})
	c.Dispatch(ctx, quiz.SelectModule{Module: "modulo1"})

	cmd := c.Dispatch(ctx, quiz.Tick{SessionID: "session-1"})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, c.Machine().Session.ElapsedSecs)

	assert.Nil(t, c.Dispatch(ctx, quiz.Tick{SessionID: "stale"}))
	assert.Equal(t, 1, c.Machine().Session.ElapsedSecs)

	// Abandoning stops the clock: the in-flight tick is dropped.
	c.Dispatch(ctx, quiz.RequestAbandon{})
	c.Dispatch(ctx, quiz.ConfirmPending{})
	assert.Nil(t, c.Dispatch(ctx, quiz.Tick{SessionID: "session-1"}))
	assert.Equal(t, quiz.StateModuleSelect, c.Machine().State)
}

func TestAbandonRecordsAnsweredQuestions(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	c := h.controller()
	c.Start(ctx)
	c.Dispatch(ctx, quiz.Login{Name: "Ana"})
	c.Dispatch(ctx, quiz.SelectModule{Module: "modulo1"})
	c.Dispatch(ctx, quiz.Answer{Option: 1})
	c.Dispatch(ctx, quiz.RequestAbandon{})
	c.Dispatch(ctx, quiz.ConfirmPending{})

	assert.Equal(t, quiz.StateModuleSelect, c.Machine().State)
	assert.Equal(t, 33, c.ModuleEntries()[0].Progress)

	sessions, err := h.store.EventRepo().RecentSessions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, store.ActionAbandon, sessions[0].Action)
	assert.Equal(t, 1, sessions[0].CorrectAnswers)
}

func TestMissingModuleGoesToEmptyResults(t *testing.T) {
	ctx := context.Background()
	c := newHarness(t).controller()
	c.Start(ctx)
	c.Dispatch(ctx, quiz.Login{Name: "Ana"})

	cmd := c.Dispatch(ctx, quiz.SelectModule{Module: "modulo2"})
	assert.Nil(t, cmd, "no clock for an empty session")

	m := c.Machine()
	require.Equal(t, quiz.StateResults, m.State)
	assert.Equal(t, 0, m.Session.Correct)
	assert.Equal(t, 0, m.Session.Incorrect)
	assert.Equal(t, 0, m.Session.Score())
}

func TestRetryUsesFreshSession(t *testing.T) {
	ctx := context.Background()
	c := newHarness(t).controller()
	c.Start(ctx)
	c.Dispatch(ctx, quiz.Login{Name: "Ana"})
	c.Dispatch(ctx, quiz.SelectModule{Module: "modulo1"})
	answerAll(ctx, c, 1, 2, 0)
	require.Equal(t, quiz.StateResults, c.Machine().State)

	c.Dispatch(ctx, quiz.Retry{})
	m := c.Machine()
	require.Equal(t, quiz.StateInQuiz, m.State)
	assert.Equal(t, "session-2", m.Session.ID)
	assert.Equal(t, "modulo1", m.Session.Module)
	assert.Len(t, m.Session.Questions, 3)

	assert.Nil(t, c.Dispatch(ctx, quiz.Tick{SessionID: "session-1"}))
	assert.NotNil(t, c.Dispatch(ctx, quiz.Tick{SessionID: "session-2"}))
}

func TestScreenForEachState(t *testing.T) {
	ctx := context.Background()
	c := newHarness(t).controller()
	c.Start(ctx)

	titles := []string{c.ScreenFor(c.Machine()).Title()}
	c.Dispatch(ctx, quiz.Login{Name: "Ana"})
	titles = append(titles, c.ScreenFor(c.Machine()).Title())
	c.Dispatch(ctx, quiz.SelectModule{Module: "modulo1"})
	titles = append(titles, c.ScreenFor(c.Machine()).Title())
	answerAll(ctx, c, 0, 0, 0)
	titles = append(titles, c.ScreenFor(c.Machine()).Title())

	assert.Equal(t, []string{"Entrar", "Módulos", "Módulo 1", "Resultado"}, titles)
}

func TestTickCmdCarriesSession(t *testing.T) {
	cmd := tickCmd("abc")
	require.NotNil(t, cmd)

	msg, ok := cmd().(screen.EventMsg)
	require.True(t, ok)
	assert.Equal(t, quiz.Tick{SessionID: "abc"}, msg.Event)
}
