package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"ecofinds/internal/config"
	"ecofinds/internal/seed"
	"ecofinds/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	backing, err := openBacking(ctx, cfg)
	if err != nil {
		logger.Fatalf("open backing store: %v", err)
	}
	defer backing.Close()

	if err := seed.Apply(ctx, backing); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
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
