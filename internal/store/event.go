package store

import (
	"context"
	"fmt"
	"sync"
)

// sessionCounter names the counter that orders session_events rows.
const sessionCounter = "session_events"

// counters hands out per-name monotonic values backed by the counters
// table. Values start at 1.
type counters struct {
	mu sync.Mutex
	s  *Store
}

// next returns the next value for name, creating the row on first use.
func (c *counters) next(ctx context.Context, name string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var v int64
	err := c.s.db.QueryRowContext(ctx,
		`INSERT INTO counters (name, value) VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		RETURNING value`, name).Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("counter %s: %w", name, err)
	}
	return v, nil
}
