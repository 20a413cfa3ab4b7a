package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const readinessTimeout = 3 * time.Second

// HealthHandler serves both probe endpoints. Liveness always answers 200;
// Readiness pings MongoDB and Redis and reports 503 when either is down.
type HealthHandler struct {
	mongo *mongo.Database
	redis *redis.Client
}

func NewHealthHandler(db *mongo.Database, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{mongo: db, redis: rdb}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	checks := map[string]string{"mongodb": "ok", "redis": "ok"}
	code := http.StatusOK

	if err := h.mongo.Client().Ping(ctx, nil); err != nil {
		checks["mongodb"] = err.Error()
		code = http.StatusServiceUnavailable
	}
	if err := h.redis.Ping(ctx).Err(); err != nil {
		checks["redis"] = err.Error()
		code = http.StatusServiceUnavailable
	}

	status := "ready"
	if code != http.StatusOK {
		status = "degraded"
	}
	return c.JSON(code, readinessResponse{Status: status, Checks: checks})
}
