package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/segmentio/ksuid"

	"quest-board/internal/model"
)

// TodayTasks lists the caller's daily tasks for today, each annotated with
// completion status. An empty board is not an error.
func (s *Service) TodayTasks(ctx context.Context, userID string) (*model.TodayTasksResponse, error) {
	now := s.today()
	day := model.WeekdayOf(now)
	week, year := isoWeek(now)

	tasks, err := s.store.DailyTasksForUser(ctx, day, week, year, userID)
	if err != nil {
		return nil, err
	}
	completed, err := s.store.CompletionsOn(ctx, userID, dateOf(now))
	if err != nil {
		return nil, err
	}

	return &model.TodayTasksResponse{
		Tasks: annotate(tasks, completed),
		Day:   day.Label(),
	}, nil
}

// WeeklyTasks lists the caller's weekly tasks for the current ISO week.
// Completion is checked against the full ledger: weekly tasks are done once
// ever, so any historical completion counts.
func (s *Service) WeeklyTasks(ctx context.Context, userID string) (*model.WeeklyTasksResponse, error) {
	now := s.today()
	week, year := isoWeek(now)

	tasks, err := s.store.WeeklyTasksForUser(ctx, week, year, userID)
	if err != nil {
		return nil, err
	}
	completed, err := s.store.CompletionsFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.WeeklyTasksResponse{Tasks: annotate(tasks, completed)}, nil
}

// WeekTasks lists every active task of the current week regardless of
// assignment. Admin only.
func (s *Service) WeekTasks(ctx context.Context, actorID string) ([]model.Task, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	week, year := isoWeek(s.today())
	return s.store.ActiveTasksForWeek(ctx, week, year)
}

// CreateTask adds a task to the current week's board. Admin only. Tasks are
// always stamped with the current ISO week, never a past or future one.
func (s *Service) CreateTask(ctx context.Context, actorID string, in model.TaskCreate) (*model.Task, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	now := s.today()
	week, year := isoWeek(now)
	t := &model.Task{
		ID:         "task_" + ksuid.New().String(),
		Title:      in.Title,
		Points:     in.Points,
		Strength:   in.Strength,
		Agility:    in.Agility,
		Charisma:   in.Charisma,
		Endurance:  in.Endurance,
		IsWeekly:   in.IsWeekly,
		AssignedTo: in.AssignedTo,
		WeekNumber: week,
		Year:       year,
		IsActive:   true,
		CreatedAt:  now,
	}
	if !in.IsWeekly {
		day, ok := model.ParseWeekday(in.DayOfWeek)
		if !ok {
			return nil, fmt.Errorf("%w: unknown day %q", ErrInvalidInput, in.DayOfWeek)
		}
		label := day.Label()
		t.DayOfWeek = &label
	}

	if err := s.store.CreateTask(ctx, t); err != nil {
		return nil, err
	}
	slog.Info("task created", "task", t.ID, "title", t.Title, "weekly", t.IsWeekly, "week", week, "year", year)
	return t, nil
}

// DeleteTask soft-deletes a task so the ledger keeps resolving against it.
// Admin only.
func (s *Service) DeleteTask(ctx context.Context, actorID, taskID string) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	found, err := s.store.DeactivateTask(ctx, taskID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("task %s: %w", taskID, ErrNotFound)
	}
	slog.Info("task deactivated", "task", taskID)
	return nil
}
