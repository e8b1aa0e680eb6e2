package main

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/zigac9/ElectricalCarBlog-backend/config"
	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/entity"
	pginfra "github.com/zigac9/ElectricalCarBlog-backend/internal/infrastructure/postgres"
	"github.com/zigac9/ElectricalCarBlog-backend/pkg/helpers"
)

var baseCategories = []string{
	"Road trip",
	"City driving",
	"Winter driving",
	"Charging tips",
	"Car review",
}

// Seeds the admin account and the base categories. Safe to run repeatedly.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	users := pginfra.NewUserRepository(pool)
	categories := pginfra.NewCategoryRepository(pool)

	adminEmail := cfg.AdminEmail
	if adminEmail == "" {
		adminEmail = "admin@evblog.local"
	}

	admin, err := users.GetByEmail(ctx, adminEmail)
	if err != nil {
		hash, err := helpers.HashPassword("Admin!123")
		if err != nil {
			log.Fatalf("hash admin password: %v", err)
		}
		admin = &entity.User{
			ID:                uuid.NewString(),
			FirstName:         "Admin",
			LastName:          "Admin",
			Email:             adminEmail,
			Password:          hash,
			IsAdmin:           true,
			IsAccountVerified: true,
		}
		if err := users.Create(ctx, admin); err != nil {
			log.Fatalf("create admin: %v", err)
		}
		logger.Infof("created admin user %s (change the default password)", adminEmail)
	} else {
		logger.Infof("admin user %s already present", adminEmail)
	}

	for _, title := range baseCategories {
		if _, err := categories.GetByTitle(ctx, title); err == nil {
			continue
		}
		category := &entity.Category{
			ID:     uuid.NewString(),
			UserID: admin.ID,
			Title:  title,
		}
		if err := categories.Create(ctx, category); err != nil {
			log.Fatalf("create category %q: %v", title, err)
		}
		logger.Infof("created category %q", title)
	}

	logger.Info("seed complete")
}
