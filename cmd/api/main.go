package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ecofinds/internal/config"
	"ecofinds/internal/httpserver"
	"ecofinds/internal/storage"
	"ecofinds/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	backing, err := openBacking(ctx, cfg)
	if err != nil {
		logger.Fatalf("open backing store: %v", err)
	}
	defer backing.Close()

	st := store.New(ctx, backing, logger)
	srv := httpserver.New(cfg.HTTPAddr, logger, st, backing)

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s backing=%s", cfg.HTTPAddr, cfg.Backing)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

func openBacking(ctx context.Context, cfg config.Config) (storage.Backing, error) {
	switch cfg.Backing {
	case config.BackingMemory:
		return storage.NewMemory(), nil
	case config.BackingSQLite:
		return storage.NewSQLite(cfg.SQLitePath)
	case config.BackingPostgres:
		return storage.ConnectPostgres(ctx, cfg.DBConnString)
	case config.BackingRedis:
		return storage.ConnectRedis(ctx, cfg.RedisAddr)
	}
	return nil, fmt.Errorf("unknown backing %q", cfg.Backing)
}
