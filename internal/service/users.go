package service

import (
	"context"
	"fmt"

	"quest-board/internal/model"
)

// Login selects a player by display name. Identity is picked, not secured;
// there are no credentials in this game.
func (s *Service) Login(ctx context.Context, name string) (*model.User, error) {
	u, err := s.store.UserByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %q: %w", name, ErrNotFound)
	}
	return u, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*model.User, error) {
	u, err := s.store.UserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return u, nil
}

// AllUsers lists every player. Admin only.
func (s *Service) AllUsers(ctx context.Context, actorID string) ([]model.User, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	return s.store.Users(ctx)
}
