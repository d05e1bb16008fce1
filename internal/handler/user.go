package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quest-board/internal/model"
	"quest-board/internal/service"
)

type UserHandler struct {
	svc *service.Service
}

func NewUserHandler(svc *service.Service) *UserHandler { return &UserHandler{svc: svc} }

// POST /api/login  body: {"name":"..."}
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.svc.Login(c.Request.Context(), req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.LoginResponse{User: *u, GameOver: u.GameOver})
}

// GET /api/users/:user_id
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.svc.GetUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// GET /api/users/all/list?user_id=  (admin)
func (h *UserHandler) List(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	users, err := h.svc.AllUsers(c.Request.Context(), actor)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// POST /api/users/:user_id/health?user_id=  (admin)
// The path id is the target player; the acting admin comes from the query.
func (h *UserHandler) UpdateHealth(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	var req model.HealthUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	newHealth, gameOver, err := h.svc.UpdateHealth(c.Request.Context(), actor, c.Param("user_id"), req.Health)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, model.HealthUpdateResponse{Success: true, NewHealth: newHealth, GameOver: gameOver})
}

// POST /api/daily-check?user_id=
func (h *UserHandler) DailyCheck(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	res, err := h.svc.DailyHealthCheck(c.Request.Context(), actor)
	if err != nil {
		fail(c, err)
		return
	}

	switch {
	case res.GameOver && !res.HealthReduced:
		c.JSON(http.StatusOK, gin.H{"game_over": true})
	case res.AlreadyChecked:
		c.JSON(http.StatusOK, gin.H{"checked": true, "health": res.NewHealth})
	default:
		c.JSON(http.StatusOK, gin.H{
			"health_reduced": res.HealthReduced,
			"new_health":     res.NewHealth,
			"game_over":      res.GameOver,
			"weekly_loss":    res.WeeklyLoss,
		})
	}
}
