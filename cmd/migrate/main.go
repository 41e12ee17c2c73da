package main

import (
	"context"
	"log"
	"os"

	"ecofinds/internal/config"
	"ecofinds/internal/migrate"
	"ecofinds/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pg, err := storage.ConnectPostgres(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pg.Close()

	if err := migrate.Apply(ctx, pg.Pool()); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}

	logger.Println("migrations applied")
}
