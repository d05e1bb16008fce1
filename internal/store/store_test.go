package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"quest-board/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	s := New(db)
	if err := s.AutoMigrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return s
}

func TestSeedIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := s.Seed(ctx); err != nil {
			t.Fatalf("seed #%d: %v", i+1, err)
		}
	}

	users, err := s.Users(ctx)
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("got %d users, want 2", len(users))
	}

	var admins int
	for _, u := range users {
		if u.GameOver || u.Health < model.MinHealth || u.Health > model.MaxHealth {
			t.Fatalf("seeded user %s broken: %+v", u.ID, u)
		}
		if u.IsAdmin {
			admins++
		}
	}
	if admins != 1 {
		t.Fatalf("got %d admins, want 1", admins)
	}

	rewards, err := s.Rewards(ctx)
	if err != nil {
		t.Fatalf("rewards: %v", err)
	}
	if len(rewards) != 50 {
		t.Fatalf("got %d rewards, want 50", len(rewards))
	}
	for _, r := range rewards {
		if want := r.Level%5 == 0; r.IsBig != want {
			t.Fatalf("level %d is_big=%v, want %v", r.Level, r.IsBig, want)
		}
	}
}

func TestSeedBackfillsZeroedStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// A row from before the stat columns existed.
	legacy := &model.User{ID: "user_old", Name: "Old", Health: 10, Level: 1}
	if err := s.db.WithContext(ctx).Create(legacy).Error; err != nil {
		t.Fatalf("create legacy user: %v", err)
	}
	if err := s.db.WithContext(ctx).Model(legacy).
		Updates(map[string]any{"strength": 0, "agility": 0, "charisma": 0, "endurance": 0}).Error; err != nil {
		t.Fatalf("zero stats: %v", err)
	}

	if err := s.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	u, err := s.UserByID(ctx, "user_old")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if u.Strength != 10 || u.Agility != 10 || u.Charisma != 10 || u.Endurance != 10 {
		t.Fatalf("stats not backfilled: %+v", u)
	}
}

func TestCompletionKeyIsUnique(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ct := &model.CompletedTask{
		ID:            model.DailyCompletionID("u", "t", "2026-01-06"),
		UserID:        "u",
		TaskID:        "t",
		CompletedDate: "2026-01-06",
	}
	if err := s.InsertCompletion(ctx, ct); err != nil {
		t.Fatalf("first insert: %v", err)
	}

	// The derived key is the primary key: the racing duplicate loses at
	// write time, not after a stale read.
	dup := *ct
	if err := s.InsertCompletion(ctx, &dup); err == nil {
		t.Fatalf("duplicate insert succeeded")
	}

	exists, err := s.CompletionExists(ctx, ct.ID)
	if err != nil || !exists {
		t.Fatalf("exists=%v err=%v", exists, err)
	}
}

func TestTaskQueriesFilterAssignment(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	day := model.Tuesday
	label := day.Label()
	mk := func(id string, assign model.Assignment) {
		t.Helper()
		err := s.CreateTask(ctx, &model.Task{
			ID: id, Title: id, DayOfWeek: &label,
			AssignedTo: assign, WeekNumber: 2, Year: 2026, IsActive: true,
		})
		if err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}
	mk("task_shared", model.Assignment{})
	mk("task_a", model.AssignedTo("user_a"))
	mk("task_b", model.AssignedTo("user_b"))

	forA, err := s.DailyTasksForUser(ctx, day, 2, 2026, "user_a")
	if err != nil {
		t.Fatalf("daily for user: %v", err)
	}
	if len(forA) != 2 {
		t.Fatalf("user_a sees %d tasks, want shared + own", len(forA))
	}

	all, err := s.DailyTasksForDay(ctx, day, 2, 2026)
	if err != nil {
		t.Fatalf("daily for day: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("day view sees %d tasks, want all 3", len(all))
	}
}
