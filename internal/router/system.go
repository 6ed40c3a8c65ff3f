package router

import (
	"github.com/labstack/echo/v4"

	"mathsvc/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of the
// business logic: health status for Kubernetes/monitors and the API
// documentation.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/openapi.json", h.OpenAPI.ServeOpenAPISpec)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
