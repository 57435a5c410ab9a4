package cmd

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"task-desk.com/task-desk/internal/auth"
	config "task-desk.com/task-desk/internal/configs"
	"task-desk.com/task-desk/internal/domain"
	repository "task-desk.com/task-desk/internal/repositories"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed demo accounts",
	Long:  "Creates one demo account per role so the API is usable right away",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabaseClient(cfg.DatabaseDSN)
		userRepo := repository.NewUserRepository(database)

		ctx := context.Background()

		seeds := []struct {
			email    string
			username string
			password string
			role     domain.Role
		}{
			{"admin@task-desk.local", "admin", "admin-password", domain.RoleAdmin},
			{"supervisor@task-desk.local", "supervisor", "supervisor-password", domain.RoleSupervisor},
			{"member@task-desk.local", "member", "member-password", domain.RoleMember},
		}

		for _, seed := range seeds {
			existing, err := userRepo.GetByEmail(ctx, seed.email)
			if err != nil {
				return err
			}
			if existing != nil {
				log.Printf("seed: %s already exists, skipping", seed.email)
				continue
			}

			hash, err := auth.HashPassword(seed.password)
			if err != nil {
				return err
			}

			user := domain.NewUser(seed.email, seed.username, hash, seed.role)
			if err := userRepo.Create(ctx, user); err != nil {
				return err
			}

			log.Printf("seed: created %s (%s)", seed.email, seed.role)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
