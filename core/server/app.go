package server

import (
	"errors"

	"text-share/core/loader"
	"text-share/core/logger"
	"text-share/core/middleware/auth"
	"text-share/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "text-share/docs/swagger"
)

// NewApp builds the Fiber application: global middleware, Swagger UI and
// every enabled feature of mgr.
func NewApp(cfg Config, logg *zap.Logger, mgr *loader.Manager) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:               "text-share",
		DisableStartupMessage: true, // We will log our own startup message
		ErrorHandler:          errorHandler,
		BodyLimit:             cfg.BodyLimit,
	})

	// RayID must come before logging so every line carries it
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	// Inside the logger so recovered panics are logged with the request's RayID
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	// Reads stay public so the pages keep working; writes need the key when one is set.
	app.Use(auth.New(auth.Config{ApiKey: cfg.ApiKey, Next: auth.SafeMethods}))

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return nil, err
	}
	logg.Debug("Features loaded", zap.Strings("features", loaded))

	return app, nil
}

// errorHandler renders errors as {"error": "..."} with the matching status.
// Only *fiber.Error messages reach the client; anything else is a generic 500.
func errorHandler(c *fiber.Ctx, err error) error {
	var e *fiber.Error
	if errors.As(err, &e) {
		return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": internalErrorMessage})
}

const internalErrorMessage = "internal server error"
