package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"mathsvc/internal/config"
	"mathsvc/internal/handler"
	"mathsvc/internal/middleware"
	"mathsvc/internal/router"
	"mathsvc/internal/server"
)

// newTestRouter builds the full router with a quiet logger and no
// telemetry, so tests exercise the same middleware chain and error
// handling as production.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "8080",
			ReadTimeout:        5,
			WriteTimeout:       5,
			IdleTimeout:        30,
			CORSAllowedOrigins: []string{"*"},
		},
		Observability: config.DefaultObservabilityConfig(),
	}

	logger := zerolog.Nop()
	srv := server.New(cfg, &logger, nil)

	return router.New(srv, middleware.NewMiddlewares(srv), handler.NewHandlers(srv))
}

func TestAdd(t *testing.T) {
	testCases := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "OK",
			target:     "/add?a=3&b=4",
			wantStatus: http.StatusOK,
			wantBody:   `{"a":3,"b":4,"sum":7}`,
		},
		{
			name:       "NegativeOperands",
			target:     "/add?a=-10&b=4",
			wantStatus: http.StatusOK,
			wantBody:   `{"a":-10,"b":4,"sum":-6}`,
		},
		{
			name:       "ZeroOperands",
			target:     "/add?a=0&b=0",
			wantStatus: http.StatusOK,
			wantBody:   `{"a":0,"b":0,"sum":0}`,
		},
		{
			name:       "ExplicitPlusSign",
			target:     "/add?a=%2B7&b=2",
			wantStatus: http.StatusOK,
			wantBody:   `{"a":7,"b":2,"sum":9}`,
		},
		{
			name:       "MissingBoth",
			target:     "/add",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Missing parameter 'a' or 'b'"}`,
		},
		{
			name:       "MissingA",
			target:     "/add?b=4",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Missing parameter 'a' or 'b'"}`,
		},
		{
			name:       "MissingB",
			target:     "/add?a=3",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Missing parameter 'a' or 'b'"}`,
		},
		{
			// Present-but-unparseable is treated exactly like missing.
			name:       "NonIntegerA",
			target:     "/add?a=abc&b=4",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Missing parameter 'a' or 'b'"}`,
		},
		{
			name:       "FloatB",
			target:     "/add?a=3&b=4.5",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Missing parameter 'a' or 'b'"}`,
		},
		{
			name:       "EmptyValue",
			target:     "/add?a=&b=4",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Missing parameter 'a' or 'b'"}`,
		},
		{
			name:       "OutOfInt64Range",
			target:     "/add?a=92233720368547758080&b=1",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Missing parameter 'a' or 'b'"}`,
		},
	}

	r := newTestRouter(t)

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			require.Equal(t, tc.wantStatus, rec.Code)
			require.JSONEq(t, tc.wantBody, rec.Body.String())
			require.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
		})
	}
}

func TestAddInt64Boundaries(t *testing.T) {
	r := newTestRouter(t)

	testCases := []struct {
		name   string
		target string
		want   handler.AddResult
	}{
		{
			name:   "MaxInt64PlusZero",
			target: "/add?a=9223372036854775807&b=0",
			want:   handler.AddResult{A: 9223372036854775807, B: 0, Sum: 9223372036854775807},
		},
		{
			// Overflow wraps with two's-complement semantics; no
			// detection is performed.
			name:   "MaxInt64PlusOneWraps",
			target: "/add?a=9223372036854775807&b=1",
			want:   handler.AddResult{A: 9223372036854775807, B: 1, Sum: -9223372036854775808},
		},
		{
			name:   "MinInt64PlusZero",
			target: "/add?a=-9223372036854775808&b=0",
			want:   handler.AddResult{A: -9223372036854775808, B: 0, Sum: -9223372036854775808},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			// Decode into the typed result so large int64 values are
			// compared exactly, not as float64.
			var got handler.AddResult
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			require.Equal(t, tc.want, got)
		})
	}
}

func TestAddIsIdempotent(t *testing.T) {
	r := newTestRouter(t)

	var bodies []string
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/add?a=3&b=4", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		bodies = append(bodies, rec.Body.String())
	}

	for _, body := range bodies[1:] {
		require.JSONEq(t, bodies[0], body)
	}
}

func TestUsage(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t,
		`{"usage":"GET /add?a=<int>&b=<int>","description":"Returns JSON {a,b,sum}"}`,
		rec.Body.String())
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/subtract", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"Route not found"}`, rec.Body.String())
}

func TestAddRejectsOtherVerbs(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/add?a=3&b=4", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.JSONEq(t, `{"error":"Method Not Allowed"}`, rec.Body.String())
}

func TestAddResponseCarriesRequestID(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/add?a=1&b=2", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
