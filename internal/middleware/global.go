package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"mathsvc/internal/errs"
	"mathsvc/internal/server"
)

// GlobalMiddlewares groups the middleware applied to every route and
// the global error handler. The struct exists so middleware can read
// shared config (CORS origins, slow-request threshold) from the app
// container.
type GlobalMiddlewares struct {
	server *server.Server
}

// NewGlobalMiddlewares constructs the global middleware bundle.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS returns Echo's CORS middleware configured from server config.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// RequestLogger returns Echo's request logger middleware with a custom
// LogValuesFunc that produces one structured log line per request via
// zerolog, with severity chosen by status class.
//
// Status derivation quirk: when a handler returns an error, Echo has
// not written the final status yet at log time (the global error
// handler does that afterwards), so the status is derived from the
// error type to avoid logging 200 for failed requests.
// Reference: https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	slowThreshold := global.server.Config.Observability.Logging.SlowRequestThreshold

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			if v.Error != nil {
				var httpErr *errs.HTTPError
				var echoErr *echo.HTTPError

				if errors.As(v.Error, &httpErr) {
					statusCode = httpErr.Status
				} else if errors.As(v.Error, &echoErr) {
					statusCode = echoErr.Code
				}
			}

			logger := GetLogger(c)

			// Severity: 5xx = server fault, 4xx = client fault, slow
			// successful requests are flagged at warn, the rest is info.
			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			case slowThreshold > 0 && v.Latency > slowThreshold:
				e = logger.Warn().Bool("slow", true)
			default:
				e = logger.Info()
			}

			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover returns Echo's panic recovery middleware. Panics become 500
// responses instead of crashing the process.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure returns Echo's secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler is the final error funnel for the entire HTTP
// server. Every error ends up here regardless of where it happened, and
// is translated into the service's JSON error shape.
//
// Classification:
//   - *errs.HTTPError passes through as-is (status + body already decided)
//   - echo.HTTPError (router errors: unknown route, bad verb) maps onto
//     the matching errs constructor
//   - anything else becomes a sanitized 500
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	// Keep the original error for logging; the client may receive a
	// sanitized replacement but logs keep the real failure.
	originalErr := err

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			switch echoErr.Code {
			case http.StatusNotFound:
				httpErr = errs.NewNotFoundError("Route not found")
			case http.StatusMethodNotAllowed:
				httpErr = errs.NewMethodNotAllowedError()
			default:
				httpErr = errs.NewInternalServerError()
			}
		} else {
			httpErr = errs.NewInternalServerError()
		}
	}

	logger := GetLogger(c)
	if httpErr.Status >= 500 {
		logger.Error().
			Err(originalErr).
			Str("code", httpErr.Code).
			Int("status", httpErr.Status).
			Msg("unhandled error")
	}

	// The response may already be committed (e.g. streaming started or
	// the handler wrote before failing); writing again would corrupt it.
	if c.Response().Committed {
		return
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(httpErr.Status)
	} else {
		writeErr = c.JSON(httpErr.Status, httpErr)
	}
	if writeErr != nil {
		logger.Error().Err(writeErr).Msg("failed to write error response")
	}
}
