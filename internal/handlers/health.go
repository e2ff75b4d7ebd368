package handlers

import (
	"context"
	"time"

	"paygate/internal/repositories/cache"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const healthTimeout = 2 * time.Second

// HealthHandler reports on the stores the gateway depends on. The redis client
// is optional; without it the in-memory rate limiter is in use.
type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	status := fiber.StatusOK
	services := fiber.Map{
		"database": "connected",
		"redis":    "disabled",
	}

	if err := h.pingDB(ctx); err != nil {
		services["database"] = err.Error()
		status = fiber.StatusServiceUnavailable
	}

	if h.redis != nil {
		services["redis"] = "connected"
		if err := cache.HealthCheck(ctx, h.redis); err != nil {
			services["redis"] = err.Error()
			status = fiber.StatusServiceUnavailable
		}
	}

	state := "ok"
	if status != fiber.StatusOK {
		state = "degraded"
	}
	return c.Status(status).JSON(fiber.Map{
		"status":   state,
		"version":  "1.0.0",
		"services": services,
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) error {
	if h.db == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "database not configured")
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
