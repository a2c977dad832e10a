// Command mockapi runs the development marketplace API on a local port.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/motobazar/admin-console/internal/config"
	"github.com/motobazar/admin-console/internal/mockapi"
	"github.com/motobazar/admin-console/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	store, err := mockapi.NewStore()
	if err != nil {
		log.Fatal().Err(err).Msg("seed store")
	}

	e := mockapi.New(store, mockapi.Config{
		JWTSecret: cfg.Mock.JWTSecret,
		TokenTTL:  cfg.Mock.TokenTTL,
		Logger:    log,
	})

	go func() {
		log.Info().Str("port", cfg.Mock.Port).Msg("mock API listening")
		if err := e.Start(":" + cfg.Mock.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("mock API stopped")
}
