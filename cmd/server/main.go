package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/damayanti/damayanti-be/internal/auth"
	"github.com/damayanti/damayanti-be/internal/config"
	"github.com/damayanti/damayanti-be/internal/logging"
	"github.com/damayanti/damayanti-be/internal/server"
	"github.com/damayanti/damayanti-be/internal/storage/postgres"
)

func main() {
	envLoaded := loadLocalEnv()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		logrus.Fatalf("init logger: %v", err)
	}
	if !envLoaded {
		log.Debug("no .env file found; relying on existing environment")
	}

	ctx := context.Background()
	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	store, err := postgres.Open(connectCtx, cfg.DatabaseURL, postgres.Options{
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	cancel()
	if err != nil {
		log.WithError(err).Fatal("init database")
	}
	defer store.Close()

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpiresIn)
	if _, err := auth.NewService(store, tokens, log).Bootstrap(ctx, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.FullName); err != nil {
		log.WithError(err).Fatal("bootstrap administrator")
	}

	srv := server.New(cfg, store, log)

	go func() {
		log.WithField("addr", cfg.HTTPAddress()).Info("damayanti API listening")
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("http server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.WithError(err).Warn("graceful shutdown error")
	}
	log.Info("server stopped")
}

func loadLocalEnv() bool {
	return godotenv.Load() == nil
}
