package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"task-desk.com/task-desk/internal/auth"
	config "task-desk.com/task-desk/internal/configs"
	httpapi "task-desk.com/task-desk/internal/http"
	repository "task-desk.com/task-desk/internal/repositories"
	"task-desk.com/task-desk/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task management HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		userRepo := repository.NewUserRepository(database)
		taskRepo := repository.NewTaskRepository(database)
		solutionRepo := repository.NewSolutionRepository(database)
		reviewRepo := repository.NewReviewRepository(database)
		fileRepo := repository.NewFileRepository(database)
		txManager := repository.NewGormTransactionManager(database)

		tokens := auth.NewTokenProvider(cfg.JWTSecret, time.Duration(cfg.AccessTokenTTLMinutes)*time.Minute)
		sessions := auth.NewRedisSessionStore(redisClient, time.Duration(cfg.RefreshTokenTTLHours)*time.Hour)
		authService := auth.NewAuthService(userRepo, tokens, sessions)

		taskService := services.NewTaskService(userRepo, taskRepo, txManager)
		solutionService := services.NewSolutionService(fileRepo, taskRepo, solutionRepo, txManager)
		reviewService := services.NewReviewService(userRepo, solutionRepo, taskRepo, reviewRepo, txManager)
		fileService := services.NewFileService(fileRepo)

		e := echo.New()
		httpapi.Register(e, httpapi.Handlers{
			Auth:     httpapi.NewAuthHandler(authService),
			Task:     httpapi.NewTaskHandler(taskService),
			Solution: httpapi.NewSolutionHandler(solutionService),
			Review:   httpapi.NewReviewHandler(reviewService),
			File:     httpapi.NewFileHandler(fileService),
		}, tokens, cfg.RateLimit)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
