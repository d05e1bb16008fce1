package model

import "time"

// User is one of the two players. Health runs 0-15 and GameOver is true
// exactly when it hits 0.
type User struct {
	ID            string  `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"uniqueIndex" json:"name"`
	Health        int     `json:"health"`
	Level         int     `json:"level"`
	Points        int     `json:"points"`
	Strength      int     `gorm:"default:10" json:"strength"`
	Agility       int     `gorm:"default:10" json:"agility"`
	Charisma      int     `gorm:"default:10" json:"charisma"`
	Endurance     int     `gorm:"default:10" json:"endurance"`
	IsAdmin       bool    `json:"is_admin"`
	GameOver      bool    `json:"game_over"`
	LastCheckDate *string `json:"last_check_date"`
}

// Task belongs to one ISO (week, year) pair. Daily tasks carry a weekday
// label; weekly tasks never do. Tasks are immutable after creation except
// for IsActive flipping to false on soft delete.
type Task struct {
	ID         string     `gorm:"primaryKey" json:"id"`
	Title      string     `json:"title"`
	Points     int        `json:"points"`
	Strength   int        `json:"strength"`
	Agility    int        `json:"agility"`
	Charisma   int        `json:"charisma"`
	Endurance  int        `json:"endurance"`
	IsWeekly   bool       `json:"is_weekly"`
	DayOfWeek  *string    `json:"day_of_week"`
	AssignedTo Assignment `gorm:"type:varchar(64)" json:"assigned_to"`
	WeekNumber int        `gorm:"index:idx_tasks_week" json:"week_number"`
	Year       int        `gorm:"index:idx_tasks_week" json:"year"`
	IsActive   bool       `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
}

// CompletedTask is an append-only ledger row. The primary key is the derived
// completion key, so a duplicate completion fails at insert time even if two
// requests race past the existence check.
type CompletedTask struct {
	ID            string `gorm:"primaryKey" json:"id"`
	UserID        string `gorm:"index" json:"user_id"`
	TaskID        string `json:"task_id"`
	CompletedDate string `json:"completed_date"`
}

type LevelReward struct {
	Level       int    `gorm:"primaryKey" json:"level"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsBig       bool   `json:"is_big"`
}

func (User) TableName() string          { return "users" }
func (Task) TableName() string          { return "tasks" }
func (CompletedTask) TableName() string { return "completed_tasks" }
func (LevelReward) TableName() string   { return "level_rewards" }

// DailyCompletionID keys the ledger per (user, task, date): a daily task can
// be completed once per calendar day.
func DailyCompletionID(userID, taskID, date string) string {
	return userID + "_" + taskID + "_" + date
}

// WeeklyCompletionID keys the ledger per (user, task): a weekly task can be
// completed once ever, regardless of date.
func WeeklyCompletionID(userID, taskID string) string {
	return userID + "_" + taskID
}

// CompletionID returns the ledger key for completing t on the given date.
func (t *Task) CompletionID(userID, date string) string {
	if t.IsWeekly {
		return WeeklyCompletionID(userID, t.ID)
	}
	return DailyCompletionID(userID, t.ID, date)
}

const (
	MinHealth = 0
	MaxHealth = 15
)

// ClampHealth forces h into the valid [MinHealth, MaxHealth] range.
func ClampHealth(h int) int {
	if h < MinHealth {
		return MinHealth
	}
	if h > MaxHealth {
		return MaxHealth
	}
	return h
}
