package questions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/quizdeck/internal/config"
)

// maxConcurrentFetches bounds parallel module fetches.
const maxConcurrentFetches = 4

// ProgressInitializer receives the question count of each loaded module so
// progress placeholders can be created.
type ProgressInitializer interface {
	EnsureQuestions(module string, count int)
}

// FetchError describes why one module failed to load.
type FetchError struct {
	Module config.Module
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("load module %s (%s.json): %v", e.Module.ID, e.Module.File, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Status returns the HTTP status of the failure, or 0 when the failure was
// not an HTTP status.
func (e *FetchError) Status() int {
	var se *StatusError
	if errors.As(e.Err, &se) {
		return se.Status
	}
	return 0
}

// UserMessage is the notice shown to the user for this failure.
func (e *FetchError) UserMessage() string {
	return fmt.Sprintf("Erro ao carregar o módulo %s. Verifique se o arquivo %s.json existe.", e.Module.Name, e.Module.File)
}

// Repository holds the questions of every configured module in memory.
type Repository struct {
	fetcher  Fetcher
	modules  []config.Module
	progress ProgressInitializer

	mu        sync.RWMutex
	questions map[string][]Question
}

// NewRepository creates an empty repository. progress may be nil.
func NewRepository(fetcher Fetcher, modules []config.Module, progress ProgressInitializer) *Repository {
	r := &Repository{
		fetcher:   fetcher,
		modules:   modules,
		progress:  progress,
		questions: make(map[string][]Question, len(modules)),
	}
	for _, m := range modules {
		r.questions[m.ID] = []Question{}
	}
	return r
}

// LoadAll fetches every module's question file. A failing module does not
// stop the others; its list stays empty and its error is returned. Errors
// are ordered like the configured modules. Nothing is retried.
func (r *Repository) LoadAll(ctx context.Context) []*FetchError {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs = make([]*FetchError, len(r.modules))
	)
	g.SetLimit(maxConcurrentFetches)

	for i, m := range r.modules {
		g.Go(func() error {
			if err := r.load(ctx, m); err != nil {
				slog.Error("load module", "module", m.ID, "file", m.File+".json", "error", err)
				mu.Lock()
				errs[i] = &FetchError{Module: m, Err: err}
				mu.Unlock()
				return nil
			}
			slog.Info("module loaded", "module", m.ID)
			return nil
		})
	}
	_ = g.Wait()

	var out []*FetchError
	for _, e := range errs {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

func (r *Repository) load(ctx context.Context, m config.Module) error {
	raw, err := r.fetcher.Fetch(ctx, m.File+".json")
	if err != nil {
		return err
	}

	qs, err := decode(raw)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.questions[m.ID] = qs
	r.mu.Unlock()

	if r.progress != nil {
		r.progress.EnsureQuestions(m.ID, len(qs))
	}
	return nil
}

// decode parses a module file. The only checks are that the payload is a
// JSON array of question objects.
func decode(raw []byte) ([]Question, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.New("question file is not a JSON array")
	}
	var qs []Question
	if err := json.Unmarshal(trimmed, &qs); err != nil {
		return nil, fmt.Errorf("parse question file: %w", err)
	}
	if qs == nil {
		qs = []Question{}
	}
	return qs, nil
}

// Get returns the questions of module in file order, or an empty list when
// the module was never loaded.
func (r *Repository) Get(module string) []Question {
	r.mu.RLock()
	defer r.mu.RUnlock()
	qs := r.questions[module]
	if qs == nil {
		return []Question{}
	}
	return slices.Clone(qs)
}

// Count returns the number of loaded questions in module.
func (r *Repository) Count(module string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.questions[module])
}
