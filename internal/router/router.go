package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"quest-board/internal/handler"
	"quest-board/internal/service"
)

// New wires the full HTTP surface onto a gin engine.
func New(svc *service.Service) *gin.Engine {
	userH := handler.NewUserHandler(svc)
	taskH := handler.NewTaskHandler(svc)
	rewardH := handler.NewRewardHandler(svc)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")
	api.POST("/login", userH.Login)
	api.GET("/users/:user_id", userH.Get)
	api.GET("/users/all/list", userH.List)
	api.POST("/users/:user_id/health", userH.UpdateHealth)
	api.GET("/tasks/today", taskH.Today)
	api.GET("/tasks/weekly", taskH.Weekly)
	api.GET("/tasks/week", taskH.Week)
	api.POST("/tasks", taskH.Create)
	api.POST("/tasks/:task_id/delete", taskH.Delete)
	api.POST("/tasks/complete", taskH.Complete)
	api.GET("/rewards", rewardH.List)
	api.POST("/rewards", rewardH.Upsert)
	api.DELETE("/rewards/:level", rewardH.Delete)
	api.POST("/daily-check", userH.DailyCheck)

	return r
}
