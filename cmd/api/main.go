// Command api runs the collection catalog HTTP server.
//
// Startup order: load config, build the logger, run pending database
// migrations, initialize the app container (which opens the pool), wire
// the layers (repositories, services, handlers, middleware, router),
// then serve until SIGINT/SIGTERM triggers a graceful shutdown.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"collection-catalog/internal/config"
	"collection-catalog/internal/database"
	"collection-catalog/internal/handler"
	"collection-catalog/internal/logger"
	"collection-catalog/internal/middleware"
	"collection-catalog/internal/repository"
	"collection-catalog/internal/router"
	"collection-catalog/internal/server"
	"collection-catalog/internal/service"
)

// shutdownTimeout bounds how long in-flight requests may drain.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.New()

	log := logger.New(cfg.Primary.Env)

	if err := database.Migrate(context.Background(), &log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to run database migrations")
	}

	srv, err := server.New(cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	middlewares := middleware.NewMiddlewares(srv)
	repos := repository.NewRepositories(srv)
	services := service.NewServices(repos)
	handlers := handler.NewHandlers(srv, services)

	r := router.New(middlewares, handlers)
	srv.SetupHTTPServer(r)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
