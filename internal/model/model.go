package model

type LoginRequest struct {
	Name string `json:"name" binding:"required"`
}

type LoginResponse struct {
	User     User `json:"user"`
	GameOver bool `json:"game_over"`
}

type TaskCreate struct {
	Title      string     `json:"title" binding:"required"`
	Points     int        `json:"points"`
	Strength   int        `json:"strength"`
	Agility    int        `json:"agility"`
	Charisma   int        `json:"charisma"`
	Endurance  int        `json:"endurance"`
	IsWeekly   bool       `json:"is_weekly"`
	DayOfWeek  string     `json:"day_of_week"`
	AssignedTo Assignment `json:"assigned_to"`
}

type CompleteTaskRequest struct {
	UserID string `json:"user_id" binding:"required"`
	TaskID string `json:"task_id" binding:"required"`
}

// AnnotatedTask is a task plus its completion status for one user.
type AnnotatedTask struct {
	Task
	IsCompleted bool `json:"is_completed"`
}

type TodayTasksResponse struct {
	Tasks []AnnotatedTask `json:"tasks"`
	Day   string          `json:"day"`
}

type WeeklyTasksResponse struct {
	Tasks []AnnotatedTask `json:"tasks"`
}

type Stats struct {
	Strength  int `json:"strength"`
	Agility   int `json:"agility"`
	Charisma  int `json:"charisma"`
	Endurance int `json:"endurance"`
}

type CompleteTaskResponse struct {
	Success   bool         `json:"success"`
	NewPoints int          `json:"new_points"`
	Stats     Stats        `json:"stats"`
	LevelUp   bool         `json:"level_up"`
	NewLevel  int          `json:"new_level"`
	Reward    *LevelReward `json:"reward"`
}

type RewardUpsert struct {
	Level       int    `json:"level" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	IsBig       bool   `json:"is_big"`
}

// HealthUpdate carries the raw admin-supplied value; 0 is a valid (lethal)
// input, so there is no required binding on it.
type HealthUpdate struct {
	Health int `json:"health"`
}

type HealthUpdateResponse struct {
	Success   bool `json:"success"`
	NewHealth int  `json:"new_health"`
	GameOver  bool `json:"game_over"`
}
