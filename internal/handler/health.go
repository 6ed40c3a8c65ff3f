package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"mathsvc/internal/middleware"
	"mathsvc/internal/server"
)

// HealthHandler exposes a system endpoint that external systems
// (Kubernetes probes, uptime monitors, load balancers) can use to
// verify the service is alive.
//
// The service has no downstream dependencies, so there are no
// sub-checks: a process that can serve the request is a healthy one.
type HealthHandler struct {
	Handler
	startedAt time.Time
}

// NewHealthHandler constructs a HealthHandler with access to shared app
// dependencies. Uptime is measured from construction time.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler:   NewHandler(s),
		startedAt: time.Now(),
	}
}

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
	Uptime      string    `json:"uptime"`
}

// CheckHealth returns the service health status. Always 200: with no
// dependencies to probe, reachability is the whole check.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	status := HealthStatus{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Uptime:      time.Since(h.startedAt).Round(time.Second).String(),
	}

	logger.Debug().Msg("health check passed")

	return c.JSON(http.StatusOK, status)
}
