package routes

import (
	"errors"
	"time"

	"quicksend/internal/config"
	"quicksend/internal/middleware"
	"quicksend/internal/result"
	"quicksend/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// NewApp builds the Fiber app with the shared middleware stack. Errors that
// escape a handler are rendered as envelopes.
func NewApp(cfg config.Config, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "quicksend",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())

	// Credentials cannot be combined with a wildcard origin.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, " + middleware.RequestIDHeader,
		AllowMethods:     "GET,POST,HEAD,PUT",
		AllowCredentials: cfg.CORSOrigins != "*",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	return app
}

func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusNotFound:
				return response.NotFound(c, fe.Message)
			case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
				return response.BadRequest(c, fe.Message)
			}
			return c.Status(fe.Code).JSON(fiber.Map{"status": fe.Code, "message": fe.Message})
		}

		log.Error("unhandled request error",
			zap.String("path", c.Path()),
			zap.Any("request_id", c.Locals(middleware.RequestIDKey)),
			zap.Error(err))
		return response.Write(c, result.Internal[any](err))
	}
}
