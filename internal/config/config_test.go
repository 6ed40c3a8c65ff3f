package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mathsvc/internal/config"
)

// setRequiredEnv sets the minimum environment a valid config needs.
// t.Setenv restores the previous values when the test ends.
func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("MATHSVC_PRIMARY.ENV", "test")
	t.Setenv("MATHSVC_SERVER.PORT", "8080")
	t.Setenv("MATHSVC_SERVER.READ_TIMEOUT", "5")
	t.Setenv("MATHSVC_SERVER.WRITE_TIMEOUT", "10")
	t.Setenv("MATHSVC_SERVER.IDLE_TIMEOUT", "120")
	t.Setenv("MATHSVC_SERVER.CORS_ALLOWED_ORIGINS", "http://localhost:3000")
}

func TestNew(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.New()
	require.NoError(t, err)

	require.Equal(t, "test", cfg.Primary.Env)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, 5, cfg.Server.ReadTimeout)
	require.Equal(t, 10, cfg.Server.WriteTimeout)
	require.Equal(t, 120, cfg.Server.IdleTimeout)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSAllowedOrigins)
}

func TestNewInjectsObservabilityDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.New()
	require.NoError(t, err)

	require.NotNil(t, cfg.Observability)
	require.Equal(t, "info", cfg.Observability.Logging.Level)
	require.Equal(t, "json", cfg.Observability.Logging.Format)
	require.Equal(t, 250*time.Millisecond, cfg.Observability.Logging.SlowRequestThreshold)

	// Service name and environment are forced regardless of input.
	require.Equal(t, "mathsvc", cfg.Observability.ServiceName)
	require.Equal(t, "test", cfg.Observability.Environment)
}

func TestNewObservabilityOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MATHSVC_OBSERVABILITY.SERVICE_NAME", "renamed")
	t.Setenv("MATHSVC_OBSERVABILITY.ENVIRONMENT", "elsewhere")
	t.Setenv("MATHSVC_OBSERVABILITY.LOGGING.LEVEL", "warn")
	t.Setenv("MATHSVC_OBSERVABILITY.LOGGING.FORMAT", "console")
	t.Setenv("MATHSVC_OBSERVABILITY.LOGGING.SLOW_REQUEST_THRESHOLD", "1s")

	cfg, err := config.New()
	require.NoError(t, err)

	require.Equal(t, "warn", cfg.Observability.Logging.Level)
	require.Equal(t, "console", cfg.Observability.Logging.Format)
	require.Equal(t, time.Second, cfg.Observability.Logging.SlowRequestThreshold)

	// Forced naming wins over whatever the environment says.
	require.Equal(t, "mathsvc", cfg.Observability.ServiceName)
	require.Equal(t, "test", cfg.Observability.Environment)
}

func TestNewRejectsInvalidLogLevel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MATHSVC_OBSERVABILITY.LOGGING.LEVEL", "loud")
	t.Setenv("MATHSVC_OBSERVABILITY.LOGGING.FORMAT", "json")

	_, err := config.New()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid logging level")
}

func TestNewMissingRequiredFails(t *testing.T) {
	// Only the environment label; the whole server block is absent.
	t.Setenv("MATHSVC_PRIMARY.ENV", "test")

	_, err := config.New()
	require.Error(t, err)
	require.Contains(t, err.Error(), "config validation failed")
}

func TestDefaultObservabilityConfigIsValid(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())
}

func TestGetLogLevelEnvironmentDefaults(t *testing.T) {
	cfg := &config.ObservabilityConfig{Environment: "production"}
	require.Equal(t, "info", cfg.GetLogLevel())

	cfg = &config.ObservabilityConfig{Environment: "development"}
	require.Equal(t, "debug", cfg.GetLogLevel())

	cfg = &config.ObservabilityConfig{
		Environment: "production",
		Logging:     config.LoggingConfig{Level: "error"},
	}
	require.Equal(t, "error", cfg.GetLogLevel())
}
