package service

import (
	"context"
	"fmt"
	"log/slog"

	"quest-board/internal/model"
)

// CheckResult describes the outcome of one daily health check.
type CheckResult struct {
	GameOver       bool
	AlreadyChecked bool
	HealthReduced  bool
	NewHealth      int
	WeeklyLoss     int
}

// DailyHealthCheck evaluates yesterday's board against the player's ledger
// and decays health for what was missed. It is idempotent per calendar day:
// LastCheckDate short-circuits repeat calls, so the penalty can never be
// applied twice.
//
// Daily loss is 1 when yesterday had at least one daily task defined (for
// anyone) and the player logged no completion at all dated yesterday — any
// completion on that date counts, not just one of yesterday's tasks. On
// Mondays each weekly task of the prior ISO week the player never completed
// costs one more health.
func (s *Service) DailyHealthCheck(ctx context.Context, userID string) (*CheckResult, error) {
	user, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	if user.GameOver {
		return &CheckResult{GameOver: true, NewHealth: user.Health}, nil
	}

	now := s.today()
	today := dateOf(now)
	if user.LastCheckDate != nil && *user.LastCheckDate == today {
		return &CheckResult{AlreadyChecked: true, NewHealth: user.Health}, nil
	}

	yesterday := now.AddDate(0, 0, -1)
	yWeek, yYear := isoWeek(yesterday)
	dayTasks, err := s.store.DailyTasksForDay(ctx, model.WeekdayOf(yesterday), yWeek, yYear)
	if err != nil {
		return nil, err
	}
	completed, err := s.store.CompletionsOn(ctx, userID, dateOf(yesterday))
	if err != nil {
		return nil, err
	}

	weeklyLoss := 0
	if model.WeekdayOf(now) == model.Monday {
		lwWeek, lwYear := isoWeek(now.AddDate(0, 0, -7))
		lastWeekTasks, err := s.store.WeeklyTasks(ctx, lwWeek, lwYear)
		if err != nil {
			return nil, err
		}
		if len(lastWeekTasks) > 0 {
			ids := make([]string, len(lastWeekTasks))
			for i, t := range lastWeekTasks {
				ids[i] = t.ID
			}
			done, err := s.store.CompletedCountForTasks(ctx, userID, ids)
			if err != nil {
				return nil, err
			}
			weeklyLoss = len(lastWeekTasks) - done
		}
	}

	dailyLoss := 0
	if len(dayTasks) > 0 && len(completed) == 0 {
		dailyLoss = 1
	}

	user.LastCheckDate = &today

	totalLoss := dailyLoss + weeklyLoss
	if totalLoss == 0 {
		if err := s.store.SaveUser(ctx, user); err != nil {
			return nil, err
		}
		return &CheckResult{NewHealth: user.Health}, nil
	}

	user.Health = model.ClampHealth(user.Health - totalLoss)
	user.GameOver = user.Health == model.MinHealth
	if err := s.store.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	slog.Info("health reduced", "user", userID, "loss", totalLoss, "weekly_loss", weeklyLoss,
		"health", user.Health, "game_over", user.GameOver)

	return &CheckResult{
		HealthReduced: true,
		NewHealth:     user.Health,
		GameOver:      user.GameOver,
		WeeklyLoss:    weeklyLoss,
	}, nil
}

// UpdateHealth lets an admin set a player's health directly. The value is
// clamped to the valid range rather than rejected, and game_over follows the
// clamped value, so setting health above zero resurrects a finished player.
func (s *Service) UpdateHealth(ctx context.Context, actorID, targetID string, health int) (newHealth int, gameOver bool, err error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return 0, false, err
	}

	target, err := s.store.UserByID(ctx, targetID)
	if err != nil {
		return 0, false, err
	}
	if target == nil {
		return 0, false, fmt.Errorf("user %s: %w", targetID, ErrNotFound)
	}

	target.Health = model.ClampHealth(health)
	target.GameOver = target.Health == model.MinHealth
	if err := s.store.SaveUser(ctx, target); err != nil {
		return 0, false, err
	}
	slog.Info("health set", "admin", actorID, "user", targetID, "health", target.Health, "game_over", target.GameOver)
	return target.Health, target.GameOver, nil
}
