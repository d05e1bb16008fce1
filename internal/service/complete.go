package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"quest-board/internal/model"
	"quest-board/internal/store"
)

// CompleteResult is what the player gets back for finishing a task.
type CompleteResult struct {
	NewPoints int
	Stats     model.Stats
	LevelUp   bool
	NewLevel  int
	Reward    *model.LevelReward
}

// CompleteTask records a completion and awards its points and stat deltas.
// Daily tasks can be completed once per calendar day, weekly tasks once
// ever; a duplicate is rejected, not silently ignored.
//
// Completing a daily task labeled with the last day of the week (Pazar) is
// the only thing that raises the player's level. Weekly tasks never do,
// whatever day they are completed on.
func (s *Service) CompleteTask(ctx context.Context, userID, taskID string) (*CompleteResult, error) {
	today := dateOf(s.today())

	task, err := s.store.TaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, fmt.Errorf("task %s: %w", taskID, ErrNotFound)
	}

	key := task.CompletionID(userID, today)
	exists, err := s.store.CompletionExists(ctx, key)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyCompleted
	}

	user, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	err = s.store.InsertCompletion(ctx, &model.CompletedTask{
		ID:            key,
		UserID:        userID,
		TaskID:        taskID,
		CompletedDate: today,
	})
	if errors.Is(err, store.ErrDuplicateCompletion) {
		return nil, ErrAlreadyCompleted
	}
	if err != nil {
		return nil, err
	}

	user.Points += task.Points
	user.Strength += task.Strength
	user.Agility += task.Agility
	user.Charisma += task.Charisma
	user.Endurance += task.Endurance

	levelUp := false
	var reward *model.LevelReward
	if !task.IsWeekly && task.DayOfWeek != nil {
		if day, ok := model.ParseWeekday(*task.DayOfWeek); ok && day == model.Sunday {
			user.Level++
			levelUp = true
			reward, err = s.store.RewardByLevel(ctx, user.Level)
			if err != nil {
				return nil, err
			}
		}
	}

	if err := s.store.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	slog.Info("task completed", "user", userID, "task", taskID, "points", user.Points, "level_up", levelUp)

	return &CompleteResult{
		NewPoints: user.Points,
		Stats: model.Stats{
			Strength:  user.Strength,
			Agility:   user.Agility,
			Charisma:  user.Charisma,
			Endurance: user.Endurance,
		},
		LevelUp:  levelUp,
		NewLevel: user.Level,
		Reward:   reward,
	}, nil
}
