package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quest-board/internal/model"
	"quest-board/internal/service"
)

type RewardHandler struct {
	svc *service.Service
}

func NewRewardHandler(svc *service.Service) *RewardHandler { return &RewardHandler{svc: svc} }

// GET /api/rewards?user_id=  (admin)
func (h *RewardHandler) List(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	rewards, err := h.svc.Rewards(c.Request.Context(), actor)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rewards": rewards})
}

// POST /api/rewards?user_id=  (admin)
func (h *RewardHandler) Upsert(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	var req model.RewardUpsert
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	reward, err := h.svc.UpsertReward(c.Request.Context(), actor, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reward": reward})
}

// DELETE /api/rewards/:level?user_id=  (admin)
func (h *RewardHandler) Delete(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	level, err := strconv.Atoi(c.Param("level"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid level"})
		return
	}

	if err := h.svc.DeleteReward(c.Request.Context(), actor, level); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
