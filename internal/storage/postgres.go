package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres backs the store with a kv_entries table. The schema is applied
// by cmd/migrate before first use.
type Postgres struct {
	pool *pgxpool.Pool
}

var _ Backing = (*Postgres)(nil)

// ConnectPostgres opens a pgx connection pool and verifies connectivity with a ping.
func ConnectPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}

	return &Postgres{pool: pool}, nil
}

// NewPostgres wraps an existing pool.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Pool exposes the underlying pool for migrations and health checks.
func (p *Postgres) Pool() *pgxpool.Pool { return p.pool }

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const q = `SELECT value FROM kv_entries WHERE key = $1`
	var value []byte
	if err := p.pool.QueryRow(ctx, q, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	const q = `
INSERT INTO kv_entries (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
`
	if _, err := p.pool.Exec(ctx, q, key, value); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (p *Postgres) Remove(ctx context.Context, key string) error {
	const q = `DELETE FROM kv_entries WHERE key = $1`
	if _, err := p.pool.Exec(ctx, q, key); err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
