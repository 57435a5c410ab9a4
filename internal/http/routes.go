package http

import (
	"time"

	"github.com/labstack/echo/v4"

	"task-desk.com/task-desk/internal/auth"
	middleware "task-desk.com/task-desk/internal/http/middlewares"
	"task-desk.com/task-desk/internal/metrics"
)

type Handlers struct {
	Auth     *AuthHandler
	Task     *TaskHandler
	Solution *SolutionHandler
	Review   *ReviewHandler
	File     *FileHandler
}

func Register(e *echo.Echo, h Handlers, tokens *auth.TokenProvider, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/metrics", metrics.Handler())

	e.POST("/auth/login", h.Auth.Login)
	e.POST("/auth/refresh", h.Auth.Refresh)
	e.POST("/auth/logout", h.Auth.Logout)

	authed := e.Group("", middleware.RequireAuth(tokens))

	authed.POST("/tasks", h.Task.CreateTask)
	authed.PATCH("/tasks/:id/priority", h.Task.ChangePriority)
	authed.GET("/tasks/owned", h.Task.GetOwnedTasks)
	authed.GET("/tasks/assigned", h.Task.GetAssignedTasks)

	authed.POST("/solutions", h.Solution.SubmitSolution)
	authed.POST("/reviews", h.Review.ReviewTask)
	authed.POST("/files", h.File.RegisterFile)
}
