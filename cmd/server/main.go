package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saulo-duarte/personal-lambda/internal/config"
	"github.com/saulo-duarte/personal-lambda/internal/container"
	"github.com/saulo-duarte/personal-lambda/internal/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	settings, err := config.Load()
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to load configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := container.New(ctx, settings)
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to initialize container")
	}

	srv := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           router.New(router.FromContainer(c)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		config.Logger.WithField("addr", srv.Addr).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.WithError(err).Fatal("Server failed")
		}
	}()

	<-ctx.Done()
	config.Logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.WithError(err).Error("Graceful shutdown failed")
	}
	if err := config.Disconnect(shutdownCtx); err != nil {
		config.Logger.WithError(err).Error("Failed to disconnect from MongoDB")
	}
}
