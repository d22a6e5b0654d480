package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	config "github.com/maheshrc27/scheduling-console/configs"
	"github.com/maheshrc27/scheduling-console/internal/api"
	"github.com/maheshrc27/scheduling-console/internal/console"
	job "github.com/maheshrc27/scheduling-console/internal/jobs"
	"github.com/maheshrc27/scheduling-console/internal/service"
	"github.com/maheshrc27/scheduling-console/internal/session"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	httpClient := service.NewHTTPClient(cfg.RequestTimeout)
	postService := service.NewPostService(cfg.APIURL, httpClient)
	secretsService := service.NewSecretsService(cfg.APIURL, httpClient)

	assetService, err := service.NewAssetService(context.Background(), *cfg)
	if err != nil {
		log.Fatalf("Failed to configure object storage: %v", err)
	}

	store := session.NewStore(func() (*console.HomePage, *console.AdminPage) {
		return console.NewHomePage(postService, assetService, cfg.Location),
			console.NewAdminPage(secretsService)
	})

	// cron jobs
	sweepJob := job.NewSessionSweepJob(store, cfg.SessionTTL)

	c := cron.New()
	if err := c.AddFunc(sweepJob.Schedule(), sweepJob.SweepSessions); err != nil {
		log.Fatalf("Failed to schedule session sweep: %v", err)
	}
	c.Start()
	defer c.Stop()

	app := api.NewServer(cfg, store)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Console is running on http://localhost:%s (backend %s)", cfg.Port, cfg.APIURL)

	gracefulShutdown(app)
}

func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	log.Println("Server shutdown complete.")
}
