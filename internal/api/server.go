package api

import (
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	config "github.com/maheshrc27/scheduling-console/configs"
	"github.com/maheshrc27/scheduling-console/internal/api/handlers"
	"github.com/maheshrc27/scheduling-console/internal/api/middleware"
	"github.com/maheshrc27/scheduling-console/internal/session"
	"github.com/maheshrc27/scheduling-console/internal/views"
)

// NewServer builds the console app with every route registered.
func NewServer(cfg *config.Config, store *session.Store) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:        views.NewEngine(),
		BodyLimit:    cfg.MaxUploadSize,
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	if cfg.ConsoleUser != "" && cfg.ConsolePassword != "" {
		app.Use(basicauth.New(basicauth.Config{
			Users: map[string]string{cfg.ConsoleUser: cfg.ConsolePassword},
			Realm: "Scheduling Console",
		}))
	}

	sessions := middleware.NewSessionMiddleware(*cfg, store)
	app.Use(sessions.SessionMiddleware())

	home := handlers.NewHomeHandler()
	app.Get("/", home.Home)
	app.Post("/compose/open", home.OpenCompose)
	app.Post("/compose", home.Compose)
	app.Post("/posts/:id/delete", home.DeletePost)

	admin := handlers.NewAdminHandler(cfg.Location)
	app.Get("/admin", admin.Admin)
	app.Post("/admin/secrets", admin.SaveSecrets)
	app.Post("/admin/secrets/delete", admin.DeleteSecrets)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	log.Printf("Error: %v", err)
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
