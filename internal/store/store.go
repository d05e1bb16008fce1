package store

import (
	"gorm.io/gorm"

	"quest-board/internal/model"
)

// Store is the single storage access layer. Every handler reads and writes
// through it; there is no in-process caching, the database is the source of
// truth for each request.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{db: db} }

func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.CompletedTask{},
		&model.LevelReward{},
	)
}
