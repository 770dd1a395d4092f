package main

import (
	"context"
	"errors"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/Avangel08/furniro-sub001/internal/auth"
	"github.com/Avangel08/furniro-sub001/internal/config"
	"github.com/Avangel08/furniro-sub001/internal/domain"
	"github.com/Avangel08/furniro-sub001/internal/observability"
	"github.com/Avangel08/furniro-sub001/internal/persistence"
	"github.com/Avangel08/furniro-sub001/internal/repository"
)

// seed creates the first staff account so the back office can be reached.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	email := os.Getenv("SEED_STAFF_EMAIL")
	password := os.Getenv("SEED_STAFF_PASSWORD")
	if email == "" || password == "" {
		logger.Fatal("SEED_STAFF_EMAIL and SEED_STAFF_PASSWORD are required")
	}
	name := os.Getenv("SEED_STAFF_NAME")
	if name == "" {
		name = "Administrator"
	}
	role := domain.Role(os.Getenv("SEED_STAFF_ROLE"))
	if role == "" {
		role = domain.RoleAdmin
	}
	if !role.Valid() || role.Kind() != domain.PrincipalStaff {
		logger.Fatal("SEED_STAFF_ROLE must be a staff role", zap.String("role", string(role)))
	}

	ctx := context.Background()
	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if err := persistence.RunMigrations(ctx, pg.PoolHandle(), persistence.DefaultMigrationsDir, logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	hash, err := auth.HashPassword(password, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to hash password", zap.Error(err))
	}

	staff := &domain.StaffUser{Name: name, Email: email, PasswordHash: hash, Role: role, Active: true}
	err = repository.NewStaffRepository(pg.PoolHandle()).Create(ctx, staff)
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		logger.Info("staff user already exists", zap.String("email", email))
	case err != nil:
		logger.Fatal("failed to create staff user", zap.Error(err))
	default:
		logger.Info("staff user created", zap.String("id", staff.ID), zap.String("email", staff.Email), zap.String("role", string(staff.Role)))
	}
}
