package service

import (
	"context"
	"time"

	"quest-board/internal/model"
	"quest-board/internal/store"
)

const dateLayout = "2006-01-02"

// Service holds the board's domain rules. All time-dependent behavior (day
// and week rollover) is computed on demand from the injected clock in one
// fixed civil timezone, never from a background scheduler.
type Service struct {
	store *store.Store
	loc   *time.Location
	now   func() time.Time
}

func New(st *store.Store, loc *time.Location) *Service {
	return &Service{store: st, loc: loc, now: time.Now}
}

func (s *Service) today() time.Time { return s.now().In(s.loc) }

func dateOf(t time.Time) string { return t.Format(dateLayout) }

// isoWeek returns the ISO week number and week-year of t.
func isoWeek(t time.Time) (week, year int) {
	y, w := t.ISOWeek()
	return w, y
}

// requireAdmin enforces the shared authorization contract on admin routes:
// an unknown actor and a known non-admin are both PermissionDenied, the two
// cases are indistinguishable to the caller.
func (s *Service) requireAdmin(ctx context.Context, actorID string) error {
	u, err := s.store.UserByID(ctx, actorID)
	if err != nil {
		return err
	}
	if u == nil || !u.IsAdmin {
		return ErrPermissionDenied
	}
	return nil
}

// annotate marks each task with whether it appears in the given completions.
func annotate(tasks []model.Task, completed []model.CompletedTask) []model.AnnotatedTask {
	done := make(map[string]bool, len(completed))
	for _, ct := range completed {
		done[ct.TaskID] = true
	}
	out := make([]model.AnnotatedTask, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, model.AnnotatedTask{Task: t, IsCompleted: done[t.ID]})
	}
	return out
}
