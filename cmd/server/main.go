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

	"github.com/Lixing-Zhang/platos-api/internal/config"
	"github.com/Lixing-Zhang/platos-api/internal/repository"
	"github.com/Lixing-Zhang/platos-api/internal/router"
	"github.com/Lixing-Zhang/platos-api/internal/service"
	"github.com/Lixing-Zhang/platos-api/internal/validation"
	"github.com/Lixing-Zhang/platos-api/pkg/logger"
	"github.com/rs/zerolog"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	var log zerolog.Logger
	if cfg.Log.Pretty {
		log = logger.NewPretty(cfg.Log.Level)
	} else {
		log = logger.New(cfg.Log.Level)
	}

	log.Info().
		Str("project", cfg.App.ProjectName).
		Str("version", cfg.App.Version).
		Str("environment", cfg.App.Environment).
		Str("host", cfg.Server.Host).
		Str("port", cfg.Server.Port).
		Str("log_level", cfg.Log.Level).
		Msg("starting platos api server")

	// The registry lives for the lifetime of the process
	platoRepo := repository.NewInMemoryPlatoRepository(repository.DefaultPlatos()...)
	platoService := service.NewPlatoService(platoRepo, validation.New())

	handler := router.New(cfg, log, router.NewHandlers(cfg, platoService, log))

	addr := cfg.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("address", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped gracefully")
}
