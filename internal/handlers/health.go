package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger is anything whose connectivity can be checked.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

// NewHealthHandler builds the health handler. cache may be nil when Redis
// is disabled.
func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	dbStatus := check(ctx, h.db)
	redisStatus := "disabled"
	if h.cache != nil {
		redisStatus = check(ctx, h.cache)
	}

	status, label := fiber.StatusOK, "ok"
	if dbStatus != "connected" || (redisStatus != "connected" && redisStatus != "disabled") {
		status, label = fiber.StatusServiceUnavailable, "degraded"
	}

	return c.Status(status).JSON(fiber.Map{
		"status":  label,
		"version": "1.0.0",
		"services": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func check(ctx context.Context, ping Pinger) string {
	if ping == nil {
		return "unconfigured"
	}
	if err := ping(ctx); err != nil {
		return err.Error()
	}
	return "connected"
}
