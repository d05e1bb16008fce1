package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"quest-board/internal/model"
)

// ErrDuplicateCompletion reports that the ledger already holds a row for the
// derived completion key.
var ErrDuplicateCompletion = errors.New("duplicate completion")

// InsertCompletion appends a ledger row. The derived key is the primary key,
// so a concurrent duplicate surfaces as ErrDuplicateCompletion instead of a
// second award.
func (s *Store) InsertCompletion(ctx context.Context, ct *model.CompletedTask) error {
	err := s.db.WithContext(ctx).Create(ct).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateCompletion
	}
	if err != nil {
		return fmt.Errorf("insert completion: %w", err)
	}
	return nil
}

// CompletionExists reports whether the ledger holds the given derived key.
func (s *Store) CompletionExists(ctx context.Context, id string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&model.CompletedTask{}).
		Where("id = ?", id).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("query completion: %w", err)
	}
	return n > 0, nil
}

// CompletionsOn lists a user's completions dated on one calendar day.
func (s *Store) CompletionsOn(ctx context.Context, userID, date string) ([]model.CompletedTask, error) {
	var cts []model.CompletedTask
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND completed_date = ?", userID, date).
		Find(&cts).Error
	if err != nil {
		return nil, fmt.Errorf("query completions on date: %w", err)
	}
	return cts, nil
}

// CompletionsFor lists a user's entire ledger.
func (s *Store) CompletionsFor(ctx context.Context, userID string) ([]model.CompletedTask, error) {
	var cts []model.CompletedTask
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&cts).Error
	if err != nil {
		return nil, fmt.Errorf("query completions: %w", err)
	}
	return cts, nil
}

// CompletedCountForTasks counts how many of the given tasks the user has
// ever completed, over the full ledger.
func (s *Store) CompletedCountForTasks(ctx context.Context, userID string, taskIDs []string) (int, error) {
	if len(taskIDs) == 0 {
		return 0, nil
	}
	var n int64
	err := s.db.WithContext(ctx).Model(&model.CompletedTask{}).
		Distinct("task_id").
		Where("user_id = ? AND task_id IN ?", userID, taskIDs).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count completions: %w", err)
	}
	return int(n), nil
}
