package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookstore-api/internal/infrastructure/metrics"
	"bookstore-api/pkg/container"
)

const shutdownTimeout = 10 * time.Second

// Serve runs the HTTP server until SIGINT or SIGTERM, then drains in-flight requests.
func Serve(c *container.Container) error {
	// ========================================
	// 1. SETUP ROUTER
	// ========================================
	metrics.Register()
	router := SetupRouter(c)

	// ========================================
	// 2. CONFIGURE HTTP SERVER
	// ========================================
	port := c.Config.App.Port
	srv := &http.Server{
		Addr:           fmt.Sprintf(":%s", port),
		Handler:        router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// ========================================
	// 3. START SERVER (NON-BLOCKING)
	// ========================================
	serverErr := make(chan error, 1)
	go func() {
		c.Log.Info("Server starting", map[string]interface{}{
			"addr":         "http://localhost:" + port,
			"environment":  c.Config.App.Environment,
			"health_check": "http://localhost:" + port + "/api/health",
		})

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// ========================================
	// 4. GRACEFUL SHUTDOWN
	// ========================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-quit:
	}

	c.Log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		c.Log.Error("Server forced to shutdown", err)
		return err
	}

	c.Log.Info("Server exited gracefully", nil)
	return nil
}
