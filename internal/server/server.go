package server

import (
	"log/slog"
	"time"

	"github.com/init-pkg/cinecheck/internal/config"

	"github.com/gofiber/fiber/v3"
	fiber_recover "github.com/gofiber/fiber/v3/middleware/recover"
)

func New(cfg *config.Config, log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "cinecheck",
		BodyLimit:    cfg.BodyLimit(),
		ErrorHandler: ErrorHandler(log),
	})

	app.Use(fiber_recover.New())
	app.Use(AccessLog(log))

	app.Get("/health", func(fctx fiber.Ctx) error {
		return fctx.JSON(fiber.Map{"status": "ok"})
	})

	return app
}

func AccessLog(log *slog.Logger) fiber.Handler {
	return func(fctx fiber.Ctx) error {
		start := time.Now()
		err := fctx.Next()

		status := fctx.Response().StatusCode()
		if err != nil {
			status, _ = Classify(err)
		}

		log.Info("http request",
			"method", fctx.Method(),
			"path", fctx.Path(),
			"status", status,
			"duration", time.Since(start),
			"error", err)

		return err
	}
}
