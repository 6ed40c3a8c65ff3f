package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"mathsvc/internal/middleware"
	"mathsvc/internal/server"
	"mathsvc/internal/validation"
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete handlers embed it so they can reach config and
// loggers through *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returned by value: the struct
// only contains a pointer, so copies are cheap and share the Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc represents a typed endpoint function that receives a
// bound, validated request payload and returns a response or an error.
//
// Req must satisfy validation.Validatable and is in practice a pointer
// type so binding can populate it.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// Handle wraps a typed endpoint function with the shared execution
// pipeline: binding + validation, structured logging, New Relic
// attributes, timing, and JSON response writing.
//
// makeReq allocates a fresh payload per request; handlers must never
// share payload state across concurrent requests.
//
// Usage:
//
//	r.GET("/add", handler.Handle(h.Handler, h.Add, http.StatusOK,
//		func() *AddRequest { return new(AddRequest) }))
func Handle[Req validation.Validatable, Res any](
	h Handler,
	fn HandlerFunc[Req, Res],
	status int,
	makeReq func() Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		method := c.Request().Method
		route := c.Path()

		// Transaction is set by the New Relic Echo middleware; nil when
		// tracing is disabled.
		txn := newrelic.FromContext(c.Request().Context())
		if txn != nil {
			txn.AddAttribute("handler.name", route)
		}

		// Request-scoped logger from the context enhancer, already
		// carrying request_id / trace ids.
		logger := middleware.GetLogger(c).With().
			Str("operation", "handler").
			Str("method", method).
			Str("route", route).
			Logger()

		logger.Debug().Msg("handling request")

		// ---------------- Validation phase -----------------------------
		validationStart := time.Now()
		req := makeReq()

		if err := validation.BindAndValidate(c, req); err != nil {
			validationDuration := time.Since(validationStart)

			logger.Warn().
				Err(err).
				Dur("validation_duration", validationDuration).
				Msg("request validation failed")

			if txn != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
				txn.AddAttribute("validation.status", "failed")
				txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
			}

			// The global error handler formats the response.
			return err
		}

		validationDuration := time.Since(validationStart)
		if txn != nil {
			txn.AddAttribute("validation.status", "success")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		// ---------------- Execution phase -------------------------------
		handlerStart := time.Now()
		result, err := fn(c, req)
		handlerDuration := time.Since(handlerStart)

		if err != nil {
			totalDuration := time.Since(start)

			logger.Error().
				Err(err).
				Dur("handler_duration", handlerDuration).
				Dur("total_duration", totalDuration).
				Msg("handler execution failed")

			if txn != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
				txn.AddAttribute("handler.status", "error")
				txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			}
			return err
		}

		totalDuration := time.Since(start)
		if txn != nil {
			txn.AddAttribute("handler.status", "success")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}

		logger.Debug().
			Dur("handler_duration", handlerDuration).
			Dur("validation_duration", validationDuration).
			Dur("total_duration", totalDuration).
			Msg("request completed successfully")

		return c.JSON(status, result)
	}
}
