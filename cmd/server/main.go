package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/quickai/server/internal/auth"
	"codeberg.org/quickai/server/internal/config"
	"codeberg.org/quickai/server/internal/logger"
)

// @title QuickAI API
// @version 1.0
// @description AI generation gateway: article and blog-title writing, image
// @description synthesis and editing, and resume review, dispatched to external
// @description providers with plan-based quota enforcement.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authenticated requests. Format: Bearer {token}

func main() {
	logger.Info("starting quickai server")

	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	// initialize OAuth providers
	if err := auth.InitializeProviders(); err != nil {
		logger.Fatal("failed to initialize OAuth providers", "error", err)
	}

	// create server with all dependencies
	srv, err := NewServer(cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	// get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      srv.router,
		ReadTimeout:  60 * time.Second, // uploads and slow providers
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// start server in goroutine
	go func() {
		logger.Info("server listening", "port", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// graceful shutdown with 10 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	// close Redis connection
	srv.redis.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown

	// close database connection
	srv.db.Close()

	logger.Info("server stopped")
}
