package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/abhisek/quizdeck/internal/store"
)

// Tracker owns the in-memory UserRecord and persists it wholesale to a
// key-value store under a single key.
type Tracker struct {
	mu        sync.Mutex
	kv        store.KVRepo
	key       string
	moduleIDs []string
	record    UserRecord
	now       func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the time source used for lastSeen and lastSession.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// NewTracker creates a Tracker holding a fresh record for the given modules.
func NewTracker(kv store.KVRepo, key string, moduleIDs []string, opts ...Option) *Tracker {
	t := &Tracker{
		kv:        kv,
		key:       key,
		moduleIDs: append([]string(nil), moduleIDs...),
		record:    NewRecord(moduleIDs),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Load reads the stored record. It reports whether a structurally valid
// record (non-empty username and a progress map) was found. On success the
// in-memory record is replaced; otherwise it is left untouched.
func (t *Tracker) Load(ctx context.Context) bool {
	raw, err := t.kv.Get(ctx, t.key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slog.Warn("load user record", "key", t.key, "error", err)
		}
		return false
	}

	var rec UserRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		slog.Warn("parse user record", "key", t.key, "error", err)
		return false
	}
	if rec.Username == "" || rec.Progress == nil {
		return false
	}

	rec.ensureModules(t.moduleIDs)

	t.mu.Lock()
	t.record = rec
	t.mu.Unlock()
	return true
}

// Save stamps lastSession and writes the record, overwriting what is stored.
func (t *Tracker) Save(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.saveLocked(ctx)
}

func (t *Tracker) saveLocked(ctx context.Context) error {
	now := t.now().UTC()
	t.record.LastSession = &now

	raw, err := json.Marshal(t.record)
	if err != nil {
		return fmt.Errorf("marshal user record: %w", err)
	}
	if err := t.kv.Put(ctx, t.key, string(raw)); err != nil {
		return fmt.Errorf("save user record: %w", err)
	}
	return nil
}

// Clear resets to a fresh record and removes the stored blob.
func (t *Tracker) Clear(ctx context.Context) error {
	t.mu.Lock()
	t.record = NewRecord(t.moduleIDs)
	t.mu.Unlock()

	if err := t.kv.Delete(ctx, t.key); err != nil {
		return fmt.Errorf("clear user record: %w", err)
	}
	return nil
}

// Username returns the stored user name.
func (t *Tracker) Username() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.record.Username
}

// SetUsername stores the user name and saves.
func (t *Tracker) SetUsername(ctx context.Context, name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.record.Username = name
	return t.saveLocked(ctx)
}

// RecordAnswer counts one answer to the question at index in module and
// saves. The question's entry is created if it does not exist yet.
func (t *Tracker) RecordAnswer(ctx context.Context, module string, index int, correct bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	questions := t.record.Progress[module]
	if questions == nil {
		questions = make(map[string]QuestionProgress)
		t.record.Progress[module] = questions
	}

	id := QuestionID(module, index)
	qp := questions[id]
	qp.Seen++
	if correct {
		qp.Correct++
	} else {
		qp.Incorrect++
	}
	now := t.now().UTC()
	qp.LastSeen = &now
	questions[id] = qp

	return t.saveLocked(ctx)
}

// EnsureQuestions creates zeroed entries for question indices [0, count) of
// module that have none. Existing counters are never touched.
func (t *Tracker) EnsureQuestions(module string, count int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	questions := t.record.Progress[module]
	if questions == nil {
		questions = make(map[string]QuestionProgress, count)
		t.record.Progress[module] = questions
	}
	for i := 0; i < count; i++ {
		id := QuestionID(module, i)
		if _, ok := questions[id]; !ok {
			questions[id] = QuestionProgress{}
		}
	}
}

// Module returns a copy of the progress map for module. The result is empty,
// not nil, for unknown modules.
func (t *Tracker) Module(module string) map[string]QuestionProgress {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[string]QuestionProgress, len(t.record.Progress[module]))
	for id, qp := range t.record.Progress[module] {
		qp.LastSeen = copyTime(qp.LastSeen)
		out[id] = qp
	}
	return out
}

// Record returns a deep copy of the current record.
func (t *Tracker) Record() UserRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.record.clone()
}
