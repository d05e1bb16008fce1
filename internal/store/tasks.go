package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"quest-board/internal/model"
)

func (s *Store) CreateTask(ctx context.Context, t *model.Task) error {
	if err := s.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// TaskByID returns the task (active or not) or nil when no row matches.
func (s *Store) TaskByID(ctx context.Context, id string) (*model.Task, error) {
	var t model.Task
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query task: %w", err)
	}
	return &t, nil
}

// DeactivateTask soft-deletes a task so historical completions keep
// resolving against it. Reports whether a row was touched.
func (s *Store) DeactivateTask(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return false, fmt.Errorf("deactivate task: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DailyTasksForUser lists the active daily tasks on one weekday of one ISO
// week that are shared or assigned to the given user.
func (s *Store) DailyTasksForUser(ctx context.Context, day model.Weekday, week, year int, userID string) ([]model.Task, error) {
	var tasks []model.Task
	err := s.db.WithContext(ctx).
		Where("day_of_week = ? AND week_number = ? AND year = ?", day.Label(), week, year).
		Where("is_active = ? AND is_weekly = ?", true, false).
		Where("(assigned_to IS NULL OR assigned_to = ?)", userID).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("query daily tasks: %w", err)
	}
	return tasks, nil
}

// DailyTasksForDay lists all active daily tasks on one weekday of one ISO
// week, regardless of who they are assigned to.
func (s *Store) DailyTasksForDay(ctx context.Context, day model.Weekday, week, year int) ([]model.Task, error) {
	var tasks []model.Task
	err := s.db.WithContext(ctx).
		Where("day_of_week = ? AND week_number = ? AND year = ?", day.Label(), week, year).
		Where("is_active = ? AND is_weekly = ?", true, false).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("query day tasks: %w", err)
	}
	return tasks, nil
}

// WeeklyTasksForUser lists the active weekly tasks of one ISO week that are
// shared or assigned to the given user.
func (s *Store) WeeklyTasksForUser(ctx context.Context, week, year int, userID string) ([]model.Task, error) {
	var tasks []model.Task
	err := s.db.WithContext(ctx).
		Where("week_number = ? AND year = ?", week, year).
		Where("is_active = ? AND is_weekly = ?", true, true).
		Where("(assigned_to IS NULL OR assigned_to = ?)", userID).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("query weekly tasks: %w", err)
	}
	return tasks, nil
}

// WeeklyTasks lists all active weekly tasks of one ISO week.
func (s *Store) WeeklyTasks(ctx context.Context, week, year int) ([]model.Task, error) {
	var tasks []model.Task
	err := s.db.WithContext(ctx).
		Where("week_number = ? AND year = ?", week, year).
		Where("is_active = ? AND is_weekly = ?", true, true).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("query weekly tasks: %w", err)
	}
	return tasks, nil
}

// ActiveTasksForWeek lists every active task of one ISO week, daily and
// weekly, for the admin board view.
func (s *Store) ActiveTasksForWeek(ctx context.Context, week, year int) ([]model.Task, error) {
	var tasks []model.Task
	err := s.db.WithContext(ctx).
		Where("week_number = ? AND year = ? AND is_active = ?", week, year, true).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("query week tasks: %w", err)
	}
	return tasks, nil
}
