package service

import (
	"context"
	"fmt"

	"quest-board/internal/model"
)

// Rewards lists the reward table sorted by level. Admin only.
func (s *Service) Rewards(ctx context.Context, actorID string) ([]model.LevelReward, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	return s.store.Rewards(ctx)
}

// UpsertReward creates or replaces the reward for a level. Admin only.
func (s *Service) UpsertReward(ctx context.Context, actorID string, in model.RewardUpsert) (*model.LevelReward, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	if in.Level < 1 {
		return nil, fmt.Errorf("%w: level %d", ErrInvalidInput, in.Level)
	}

	r := &model.LevelReward{
		Level:       in.Level,
		Title:       in.Title,
		Description: in.Description,
		IsBig:       in.IsBig,
	}
	if err := s.store.UpsertReward(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// DeleteReward removes a level's reward. Admin only.
func (s *Service) DeleteReward(ctx context.Context, actorID string, level int) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	found, err := s.store.DeleteReward(ctx, level)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("reward for level %d: %w", level, ErrNotFound)
	}
	return nil
}
