package progress

import (
	"fmt"
	"time"
)

// QuestionProgress counts a user's attempts at one question.
type QuestionProgress struct {
	Seen      int        `json:"seen"`
	Correct   int        `json:"correct"`
	Incorrect int        `json:"incorrect"`
	LastSeen  *time.Time `json:"lastSeen"`
}

// UserRecord is the whole persisted state: the user's name and per-question
// progress, keyed by module id and then by question id.
type UserRecord struct {
	Username    string                                 `json:"username"`
	Progress    map[string]map[string]QuestionProgress `json:"progress"`
	LastSession *time.Time                             `json:"lastSession"`
}

// QuestionID returns the synthetic id of the question at index in module.
func QuestionID(module string, index int) string {
	return fmt.Sprintf("%s_%d", module, index)
}

// NewRecord returns an empty record with one progress map per module.
func NewRecord(moduleIDs []string) UserRecord {
	rec := UserRecord{Progress: make(map[string]map[string]QuestionProgress, len(moduleIDs))}
	rec.ensureModules(moduleIDs)
	return rec
}

func (r *UserRecord) ensureModules(moduleIDs []string) {
	if r.Progress == nil {
		r.Progress = make(map[string]map[string]QuestionProgress, len(moduleIDs))
	}
	for _, id := range moduleIDs {
		if r.Progress[id] == nil {
			r.Progress[id] = make(map[string]QuestionProgress)
		}
	}
}

// clone returns a deep copy of the record.
func (r UserRecord) clone() UserRecord {
	out := UserRecord{
		Username:    r.Username,
		Progress:    make(map[string]map[string]QuestionProgress, len(r.Progress)),
		LastSession: copyTime(r.LastSession),
	}
	for mod, questions := range r.Progress {
		qs := make(map[string]QuestionProgress, len(questions))
		for id, qp := range questions {
			qp.LastSeen = copyTime(qp.LastSeen)
			qs[id] = qp
		}
		out.Progress[mod] = qs
	}
	return out
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
