// Package router initializes the HTTP router (using Echo).
//
// It registers the middleware stack in order and maps paths to their
// corresponding handlers.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mathsvc/internal/handler"
	"mathsvc/internal/middleware"
	"mathsvc/internal/server"
)

// New builds the Echo instance with the full middleware chain and all
// routes registered. The returned value is an http.Handler ready to be
// passed to server.SetupHTTPServer.
//
// Middleware order matters: recovery first so panics anywhere below
// become 500s; request-id before the context enhancer so loggers carry
// it; New Relic before the enhancer so trace ids reach the logger.
func New(s *server.Server, m *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	// Every error, including router 404s, funnels through the global
	// error handler so the JSON error shape is uniform.
	r.HTTPErrorHandler = m.Global.GlobalErrorHandler

	r.Use(m.Global.Recover())
	r.Use(middleware.RequestID())
	r.Use(m.Tracing.NewRelicMiddleware())
	r.Use(m.ContextEnhancer.EnhanceContext())
	r.Use(m.Tracing.EnhanceTracing())
	r.Use(m.Global.CORS())
	r.Use(m.Global.Secure())
	r.Use(m.Global.RequestLogger())

	registerMathRoutes(r, h)
	registerSystemRoutes(r, h)

	return r
}

// registerMathRoutes maps the service's business routes.
func registerMathRoutes(r *echo.Echo, h *handler.Handlers) {
	// Usage description; fixed payload, no validation pipeline needed.
	r.GET("/", h.Math.Usage)

	// The add operation runs through the typed pipeline: a fresh
	// AddRequest is bound and validated per request.
	r.GET("/add", handler.Handle(h.Math.Handler, h.Math.Add, http.StatusOK,
		func() *handler.AddRequest { return new(handler.AddRequest) }))
}
