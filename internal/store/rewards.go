package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quest-board/internal/model"
)

// RewardByLevel returns the reward for a level or nil when none is defined.
func (s *Store) RewardByLevel(ctx context.Context, level int) (*model.LevelReward, error) {
	var r model.LevelReward
	err := s.db.WithContext(ctx).Where("level = ?", level).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query reward: %w", err)
	}
	return &r, nil
}

func (s *Store) Rewards(ctx context.Context) ([]model.LevelReward, error) {
	var rewards []model.LevelReward
	if err := s.db.WithContext(ctx).Order("level asc").Find(&rewards).Error; err != nil {
		return nil, fmt.Errorf("query rewards: %w", err)
	}
	return rewards, nil
}

// UpsertReward inserts the reward or overwrites the existing row for its level.
func (s *Store) UpsertReward(ctx context.Context, r *model.LevelReward) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "level"}},
			UpdateAll: true,
		}).
		Create(r).Error
	if err != nil {
		return fmt.Errorf("upsert reward: %w", err)
	}
	return nil
}

// DeleteReward removes the reward for a level. Reports whether a row existed.
func (s *Store) DeleteReward(ctx context.Context, level int) (bool, error) {
	res := s.db.WithContext(ctx).Where("level = ?", level).Delete(&model.LevelReward{})
	if res.Error != nil {
		return false, fmt.Errorf("delete reward: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
