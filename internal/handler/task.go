package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quest-board/internal/model"
	"quest-board/internal/service"
)

type TaskHandler struct {
	svc *service.Service
}

func NewTaskHandler(svc *service.Service) *TaskHandler { return &TaskHandler{svc: svc} }

// GET /api/tasks/today?user_id=
func (h *TaskHandler) Today(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	res, err := h.svc.TodayTasks(c.Request.Context(), actor)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/tasks/weekly?user_id=
func (h *TaskHandler) Weekly(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	res, err := h.svc.WeeklyTasks(c.Request.Context(), actor)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/tasks/week?user_id=  (admin)
func (h *TaskHandler) Week(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	tasks, err := h.svc.WeekTasks(c.Request.Context(), actor)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// POST /api/tasks?user_id=  (admin)
func (h *TaskHandler) Create(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	var req model.TaskCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	task, err := h.svc.CreateTask(c.Request.Context(), actor, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "task": task})
}

// POST /api/tasks/:task_id/delete?user_id=  (admin)
func (h *TaskHandler) Delete(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteTask(c.Request.Context(), actor, c.Param("task_id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /api/tasks/complete  body: {"user_id":"...","task_id":"..."}
func (h *TaskHandler) Complete(c *gin.Context) {
	var req model.CompleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	res, err := h.svc.CompleteTask(c.Request.Context(), req.UserID, req.TaskID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.CompleteTaskResponse{
		Success:   true,
		NewPoints: res.NewPoints,
		Stats:     res.Stats,
		LevelUp:   res.LevelUp,
		NewLevel:  res.NewLevel,
		Reward:    res.Reward,
	})
}
