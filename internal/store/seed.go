package store

import (
	"context"
	"fmt"
	"log/slog"

	"quest-board/internal/model"
)

// Seed provisions the board on first startup: the two players and the reward
// table for levels 1-50. On later startups it only repairs users whose stat
// columns were zeroed by a pre-stats schema.
func (s *Store) Seed(ctx context.Context) error {
	var userCount int64
	if err := s.db.WithContext(ctx).Model(&model.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}

	if userCount > 0 {
		return s.backfillStats(ctx)
	}

	users := []model.User{
		{
			ID: "user_bellatrix", Name: "Bellatrix",
			Health: 13, Level: 2,
			Strength: 10, Agility: 10, Charisma: 10, Endurance: 10,
		},
		{
			ID: "user_agamemnon", Name: "Agamemnon",
			Health: 14, Level: 2, IsAdmin: true,
			Strength: 10, Agility: 10, Charisma: 10, Endurance: 10,
		},
	}
	if err := s.db.WithContext(ctx).Create(&users).Error; err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	slog.Info("seeded players", "count", len(users))

	rewards := make([]model.LevelReward, 0, 50)
	for level := 1; level <= 50; level++ {
		if level%5 == 0 {
			rewards = append(rewards, model.LevelReward{
				Level:       level,
				Title:       "Büyük Ödül",
				Description: fmt.Sprintf("Seviye %d Büyük Başarı! 🏆", level),
				IsBig:       true,
			})
			continue
		}
		rewards = append(rewards, model.LevelReward{
			Level:       level,
			Title:       "Seviye Atlama Ödülü",
			Description: fmt.Sprintf("Seviye %d'e ulaştın! 🎉", level),
		})
	}
	if err := s.db.WithContext(ctx).Create(&rewards).Error; err != nil {
		return fmt.Errorf("seed rewards: %w", err)
	}
	slog.Info("seeded level rewards", "count", len(rewards))

	return nil
}

// backfillStats resets zeroed stat columns to their starting value. Stats are
// monotonically non-decreasing from 10, so a zero can only mean the row
// predates the stat columns.
func (s *Store) backfillStats(ctx context.Context) error {
	for _, col := range []string{"strength", "agility", "charisma", "endurance"} {
		res := s.db.WithContext(ctx).Model(&model.User{}).
			Where(col+" = ?", 0).
			Update(col, 10)
		if res.Error != nil {
			return fmt.Errorf("backfill %s: %w", col, res.Error)
		}
		if res.RowsAffected > 0 {
			slog.Info("backfilled user stats", "column", col, "rows", res.RowsAffected)
		}
	}
	return nil
}
