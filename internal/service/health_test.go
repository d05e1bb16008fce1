package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"quest-board/internal/model"
)

// setHealth rewrites a player's health directly, keeping the invariant.
func setHealth(t *testing.T, svc *Service, id string, health int) {
	t.Helper()
	u := getUser(t, svc, id)
	u.Health = health
	u.GameOver = health == 0
	saveUser(t, svc, u)
}

func TestDailyCheckReducesHealthForMissedDay(t *testing.T) {
	// Monday had a task, the player did nothing, Tuesday's check bills it.
	svc := newTestService(t, mondayWeek2)
	ctx := context.Background()

	mustCreateTask(t, svc, model.TaskCreate{Title: "Pazartesi işi", DayOfWeek: "Pazartesi"})
	setHealth(t, svc, playerID, 2)

	svc.now = fixedClock(tuesdayWeek2)
	res, err := svc.DailyHealthCheck(ctx, playerID)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !res.HealthReduced || res.NewHealth != 1 || res.GameOver || res.WeeklyLoss != 0 {
		t.Fatalf("result=%+v, want health 2->1", res)
	}

	u := getUser(t, svc, playerID)
	if u.Health != 1 || u.GameOver {
		t.Fatalf("persisted health=%d game_over=%v", u.Health, u.GameOver)
	}
	if u.LastCheckDate == nil || *u.LastCheckDate != "2026-01-06" {
		t.Fatalf("last_check_date=%v", u.LastCheckDate)
	}
}

func TestDailyCheckIsIdempotentPerDay(t *testing.T) {
	svc := newTestService(t, mondayWeek2)
	ctx := context.Background()

	mustCreateTask(t, svc, model.TaskCreate{Title: "Pazartesi işi", DayOfWeek: "Pazartesi"})
	setHealth(t, svc, playerID, 5)

	svc.now = fixedClock(tuesdayWeek2)
	first, err := svc.DailyHealthCheck(ctx, playerID)
	if err != nil {
		t.Fatalf("first check: %v", err)
	}
	if first.NewHealth != 4 {
		t.Fatalf("first check health=%d, want 4", first.NewHealth)
	}

	second, err := svc.DailyHealthCheck(ctx, playerID)
	if err != nil {
		t.Fatalf("second check: %v", err)
	}
	if !second.AlreadyChecked || second.NewHealth != 4 || second.HealthReduced {
		t.Fatalf("second check=%+v, want short-circuit at health 4", second)
	}

	if u := getUser(t, svc, playerID); u.Health != 4 {
		t.Fatalf("double penalty applied: health=%d", u.Health)
	}
}

func TestDailyCheckGameOverAtZero(t *testing.T) {
	svc := newTestService(t, mondayWeek2)
	ctx := context.Background()

	mustCreateTask(t, svc, model.TaskCreate{Title: "Pazartesi işi", DayOfWeek: "Pazartesi"})
	setHealth(t, svc, playerID, 1)

	svc.now = fixedClock(tuesdayWeek2)
	res, err := svc.DailyHealthCheck(ctx, playerID)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !res.HealthReduced || res.NewHealth != 0 || !res.GameOver {
		t.Fatalf("result=%+v, want game over at 0", res)
	}

	// Once the game is over the check fails closed, even on a later day.
	svc.now = fixedClock(tuesdayWeek2.AddDate(0, 0, 1))
	again, err := svc.DailyHealthCheck(ctx, playerID)
	if err != nil {
		t.Fatalf("check after game over: %v", err)
	}
	if !again.GameOver || again.HealthReduced {
		t.Fatalf("game-over check=%+v, want no-op", again)
	}
}

func TestDailyCheckAnyCompletionPreventsLoss(t *testing.T) {
	svc := newTestService(t, mondayWeek2)
	ctx := context.Background()

	mustCreateTask(t, svc, model.TaskCreate{Title: "Pazartesi işi", DayOfWeek: "Pazartesi"})
	weekly := mustCreateTask(t, svc, model.TaskCreate{Title: "Haftalık", IsWeekly: true})

	// The player skipped Monday's daily task but completed an unrelated
	// weekly task that day; any completion dated yesterday counts.
	if _, err := svc.CompleteTask(ctx, playerID, weekly.ID); err != nil {
		t.Fatalf("complete weekly: %v", err)
	}
	setHealth(t, svc, playerID, 5)

	svc.now = fixedClock(tuesdayWeek2)
	res, err := svc.DailyHealthCheck(ctx, playerID)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.HealthReduced || res.NewHealth != 5 {
		t.Fatalf("result=%+v, want no reduction", res)
	}

	u := getUser(t, svc, playerID)
	if u.LastCheckDate == nil || *u.LastCheckDate != "2026-01-06" {
		t.Fatalf("last_check_date=%v, want it stamped on a clean check too", u.LastCheckDate)
	}
}

func TestDailyCheckNoTasksNoLoss(t *testing.T) {
	svc := newTestService(t, tuesdayWeek2)

	res, err := svc.DailyHealthCheck(context.Background(), playerID)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.HealthReduced || res.NewHealth != 13 {
		t.Fatalf("result=%+v, want untouched seed health", res)
	}
}

func TestMondayCheckBillsUncompletedWeeklyTasks(t *testing.T) {
	// Two weekly tasks in ISO week 1, one completed. Monday of week 2
	// charges the other one.
	inWeek1 := time.Date(2025, 12, 30, 10, 0, 0, 0, time.UTC)
	svc := newTestService(t, inWeek1)
	ctx := context.Background()

	done := mustCreateTask(t, svc, model.TaskCreate{Title: "Yapılan", IsWeekly: true})
	mustCreateTask(t, svc, model.TaskCreate{Title: "Yapılmayan", IsWeekly: true})
	if _, err := svc.CompleteTask(ctx, playerID, done.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	setHealth(t, svc, playerID, 13)

	svc.now = fixedClock(mondayWeek2)
	res, err := svc.DailyHealthCheck(ctx, playerID)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !res.HealthReduced || res.WeeklyLoss != 1 || res.NewHealth != 12 {
		t.Fatalf("result=%+v, want weekly loss of 1", res)
	}
}

func TestMondayCheckAllWeeklyDoneCostsNothing(t *testing.T) {
	inWeek1 := time.Date(2025, 12, 30, 10, 0, 0, 0, time.UTC)
	svc := newTestService(t, inWeek1)
	ctx := context.Background()

	weekly := mustCreateTask(t, svc, model.TaskCreate{Title: "Haftalık", IsWeekly: true})
	if _, err := svc.CompleteTask(ctx, playerID, weekly.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	svc.now = fixedClock(mondayWeek2)
	res, err := svc.DailyHealthCheck(ctx, playerID)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.HealthReduced || res.WeeklyLoss != 0 {
		t.Fatalf("result=%+v, want no loss", res)
	}
}

func TestDailyCheckUnknownUser(t *testing.T) {
	svc := newTestService(t, tuesdayWeek2)

	if _, err := svc.DailyHealthCheck(context.Background(), "user_ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestUpdateHealthClampsAndFollowsInvariant(t *testing.T) {
	svc := newTestService(t, tuesdayWeek2)
	ctx := context.Background()

	newHealth, gameOver, err := svc.UpdateHealth(ctx, adminID, playerID, 99)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if newHealth != model.MaxHealth || gameOver {
		t.Fatalf("health=%d game_over=%v, want clamp to 15", newHealth, gameOver)
	}

	newHealth, gameOver, err = svc.UpdateHealth(ctx, adminID, playerID, -3)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if newHealth != 0 || !gameOver {
		t.Fatalf("health=%d game_over=%v, want clamp to 0 and game over", newHealth, gameOver)
	}

	// Setting health back above zero resurrects the player.
	newHealth, gameOver, err = svc.UpdateHealth(ctx, adminID, playerID, 5)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if newHealth != 5 || gameOver {
		t.Fatalf("health=%d game_over=%v, want resurrection", newHealth, gameOver)
	}
	if u := getUser(t, svc, playerID); u.GameOver {
		t.Fatalf("persisted game_over still set")
	}
}

func TestUpdateHealthAuthorization(t *testing.T) {
	svc := newTestService(t, tuesdayWeek2)
	ctx := context.Background()

	if _, _, err := svc.UpdateHealth(ctx, playerID, adminID, 5); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("non-admin: err=%v, want ErrPermissionDenied", err)
	}
	if _, _, err := svc.UpdateHealth(ctx, adminID, "user_ghost", 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing target: err=%v, want ErrNotFound", err)
	}
}
