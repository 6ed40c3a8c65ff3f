package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mathsvc/internal/config"
	"mathsvc/internal/handler"
	loggerPkg "mathsvc/internal/logger"
	"mathsvc/internal/middleware"
	"mathsvc/internal/router"
	"mathsvc/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.New()
	if err != nil {
		// Config failures happen before the structured logger exists;
		// stderr is all we have.
		os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Bootstrap logger without telemetry, used until the logger service
	// is up; the real application logger is built right after.
	bootLogger := loggerPkg.New(cfg, nil)

	loggerService, err := loggerPkg.NewLoggerService(cfg, &bootLogger)
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("failed to initialize logger service")
	}

	logger := loggerPkg.New(cfg, loggerService)

	srv := server.New(cfg, &logger, loggerService)

	middlewares := middleware.NewMiddlewares(srv)
	handlers := handler.NewHandlers(srv)
	srv.SetupHTTPServer(router.New(srv, middlewares, handlers))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	case <-ctx.Done():
		logger.Info().Msg("shutdown signal received")

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown failed")
			os.Exit(1)
		}

		logger.Info().Msg("server stopped")
	}
}
