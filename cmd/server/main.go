package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/petitspas/backend/internal/config"
	"github.com/petitspas/backend/internal/db"
	"github.com/petitspas/backend/internal/handler"
	"github.com/petitspas/backend/internal/router"
	"github.com/petitspas/backend/internal/service"
	"github.com/petitspas/backend/internal/storage"
)

func main() {
	// Missing .env is fine, the environment may carry everything.
	_ = godotenv.Load()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := db.EnsureUser(cfg.SuperAdminEmail, cfg.SuperAdminPassword); err != nil {
		log.Fatalf("failed to ensure admin account: %v", err)
	}

	if err := service.NewContentService(db.DB).SeedDefaults(); err != nil {
		log.Fatalf("failed to seed site content: %v", err)
	}

	store := storage.NewLocalStore(cfg.UploadDir, cfg.UploadURLPath)
	api := handler.NewAPI(db.DB, store, handler.Options{
		CaptchaSecret:   cfg.CaptchaSecret,
		StripeSecretKey: cfg.StripeSecretKey,
		SiteBaseURL:     cfg.SiteBaseURL,
	})

	r := router.SetupRouter(api, cfg.SessionSecret, cfg.UploadDir, cfg.UploadURLPath)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
