// Package api provides HTTP handlers for the phylo server.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/phylo-app/phylo/internal/db"
)

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db        DatabaseChecker
	schema    SchemaChecker
	log       *logrus.Logger
	version   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler. A nil database reports
// not_configured on liveness and fails readiness.
func NewHealthHandler(database DatabaseChecker, schema SchemaChecker, log *logrus.Logger, version string) *HealthHandler {
	return &HealthHandler{
		db:        database,
		schema:    schema,
		log:       log,
		version:   version,
		startTime: time.Now(),
	}
}

// readinessResponse is the JSON payload returned by the readiness endpoint.
type readinessResponse struct {
	Status        string            `json:"status"`
	SchemaVersion int               `json:"schema_version"`
	Checks        map[string]string `json:"checks"`
}

// poolStats mirrors the connection pool counters.
type poolStats struct {
	Total    int32 `json:"total"`
	Idle     int32 `json:"idle"`
	Acquired int32 `json:"acquired"`
}

// healthResponse is the JSON payload returned by the health/liveness endpoint.
type healthResponse struct {
	Status        string     `json:"status"`
	Version       string     `json:"version"`
	Database      string     `json:"database"`
	Pool          *poolStats `json:"pool,omitempty"`
	UptimeSeconds float64    `json:"uptime_seconds"`
}

// Liveness handles GET /api/v1/health.
func (h *HealthHandler) Liveness(c *gin.Context) {
	resp := healthResponse{
		Status:        "ok",
		Version:       h.version,
		Database:      "connected",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}

	// Best-effort database ping (non-fatal for liveness).
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.db.HealthCheck(ctx); err != nil {
			resp.Database = "disconnected"
		}

		total, idle, acquired := h.db.Stats()
		resp.Pool = &poolStats{Total: total, Idle: idle, Acquired: acquired}
	} else {
		resp.Database = "not_configured"
	}

	c.JSON(http.StatusOK, resp)
}

// Readiness handles GET /api/v1/ready: checks DB connectivity and schema.
func (h *HealthHandler) Readiness(c *gin.Context) {
	checks := map[string]string{
		"database": "ok",
		"schema":   "ok",
	}
	status := "ready"
	statusCode := http.StatusOK

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	switch {
	case h.db == nil:
		checks["database"] = "not_configured"
	default:
		if err := h.db.HealthCheck(ctx); err != nil {
			h.log.WithError(err).Error("readiness: database health check failed")
			checks["database"] = "error"
		}
	}

	if checks["database"] != "ok" {
		checks["schema"] = "unknown"
	} else if h.schema != nil {
		if err := h.schema.CheckSchema(ctx); err != nil {
			h.log.WithError(err).Error("readiness: schema check failed")
			checks["schema"] = "error"
		}
	}

	if checks["database"] != "ok" || checks["schema"] != "ok" {
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, readinessResponse{
		Status:        status,
		SchemaVersion: db.SchemaVersion(),
		Checks:        checks,
	})
}
