package storage

import (
	"context"
	"os"
	"testing"
)

func testPostgres(ctx context.Context, t *testing.T) *Postgres {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	p, err := ConnectPostgres(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return p
}

func TestPostgresRoundTrip(t *testing.T) {
	ctx := context.Background()
	p := testPostgres(ctx, t)
	defer p.Close()

	const key = "ecofinds_test_roundtrip"
	if err := p.Remove(ctx, key); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	if _, ok, err := p.Get(ctx, key); ok || err != nil {
		t.Fatalf("absent key: ok=%v err=%v", ok, err)
	}
	if err := p.Set(ctx, key, []byte("v1")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := p.Set(ctx, key, []byte("v2")); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	v, ok, err := p.Get(ctx, key)
	if err != nil || !ok || string(v) != "v2" {
		t.Fatalf("get: %q ok=%v err=%v", v, ok, err)
	}
	if err := p.Remove(ctx, key); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := p.Get(ctx, key); ok {
		t.Fatal("key survived remove")
	}
}
