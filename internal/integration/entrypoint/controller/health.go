// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	healthConnected    = "connected"
	healthDisconnected = "disconnected"
	healthDisabled     = "disabled"

	healthCheckTimeout = 2 * time.Second
)

// HealthChecks groups the checks reported by the health endpoint.
// A nil TrendCache or Events check means that dependency is not configured.
type HealthChecks struct {
	Database   func() bool
	TrendCache func(ctx context.Context) bool
	Events     func() bool
}

// HealthController handles health check endpoints.
type HealthController struct {
	checks HealthChecks
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status     string `json:"status"`
	Database   string `json:"database"`
	TrendCache string `json:"trend_cache"`
	Events     string `json:"events"`
	Timestamp  string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(checks HealthChecks) *HealthController {
	return &HealthController{
		checks: checks,
	}
}

// Check handles GET /health requests.
// The service is unavailable without its database; the cache and broker only degrade it.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	dbStatus := healthDisconnected
	if h.checks.Database != nil && h.checks.Database() {
		dbStatus = healthConnected
	}

	cacheStatus := healthDisabled
	if h.checks.TrendCache != nil {
		cacheStatus = checkStatus(h.checks.TrendCache(ctx))
	}

	eventsStatus := healthDisabled
	if h.checks.Events != nil {
		eventsStatus = checkStatus(h.checks.Events())
	}

	response := HealthResponse{
		Status:     "ok",
		Database:   dbStatus,
		TrendCache: cacheStatus,
		Events:     eventsStatus,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}

	status := http.StatusOK
	if dbStatus != healthConnected {
		response.Status = "unavailable"
		status = http.StatusServiceUnavailable
	} else if cacheStatus == healthDisconnected || eventsStatus == healthDisconnected {
		response.Status = "degraded"
	}

	c.JSON(status, response)
}

func checkStatus(up bool) string {
	if up {
		return healthConnected
	}
	return healthDisconnected
}
