package store

import (
	"context"
	"fmt"
	"time"
)

// Session event actions.
const (
	ActionStart   = "start"
	ActionEnd     = "end"
	ActionAbandon = "abandon"
)

// SessionEventData captures one quiz session lifecycle event.
type SessionEventData struct {
	SessionID        string
	ModuleID         string
	Action           string
	CorrectAnswers   int
	IncorrectAnswers int
	DurationSecs     int
}

// SessionEvent is a stored session event.
type SessionEvent struct {
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// EventRepo provides append and query access to session events.
type EventRepo interface {
	// AppendSessionEvent records a session lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// RecentSessions returns the newest completed or abandoned sessions
	// first, at most limit of them (0 = unlimited).
	RecentSessions(ctx context.Context, limit int) ([]SessionEvent, error)
}

type eventRepo struct {
	s *Store
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.s.seq.next(ctx, sessionCounter)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.s.db.ExecContext(ctx, `
		INSERT INTO session_events
			(sequence, session_id, module_id, action, correct_answers, incorrect_answers, duration_secs, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		seqNum, data.SessionID, data.ModuleID, data.Action,
		data.CorrectAnswers, data.IncorrectAnswers, data.DurationSecs,
		time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionEvent, error) {
	query := `
		SELECT sequence, session_id, module_id, action, correct_answers, incorrect_answers, duration_secs, created_at
		FROM session_events
		WHERE action IN ($1, $2)
		ORDER BY sequence DESC`
	args := []any{ActionEnd, ActionAbandon}
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}

	rows, err := r.s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var events []SessionEvent
	for rows.Next() {
		var ev SessionEvent
		var createdAt int64
		if err := rows.Scan(
			&ev.Sequence, &ev.SessionID, &ev.ModuleID, &ev.Action,
			&ev.CorrectAnswers, &ev.IncorrectAnswers, &ev.DurationSecs, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		ev.Timestamp = time.UnixMilli(createdAt)
		events = append(events, ev)
	}
	return events, rows.Err()
}
