package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Hritesh-panda/rolebasedauthorization/internal/api"
	"github.com/Hritesh-panda/rolebasedauthorization/internal/infrastructure/config"
	"github.com/Hritesh-panda/rolebasedauthorization/pkg/logger"

	_ "github.com/Hritesh-panda/rolebasedauthorization/docs"
)

// @title           Inventory Admin API
// @version         1.0
// @description     Role-based inventory/catalog admin backend persisting to flat JSON files.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-me"
		log.Warn().Msg("JWT_SECRET not set, using insecure development secret")
	}

	e := api.NewRouter(cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
