package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if _, ok, err := s.Get(ctx, "missing"); ok || err != nil {
		t.Fatalf("absent key: ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	v, ok, err := s.Get(ctx, "k")
	if err != nil || !ok || string(v) != "v2" {
		t.Fatalf("get: %q ok=%v err=%v", v, ok, err)
	}
	if err := s.Remove(ctx, "k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatal("key survived remove")
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Set(ctx, "k", []byte("durable")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, "k")
	if err != nil || !ok || string(v) != "durable" {
		t.Fatalf("value lost across reopen: %q ok=%v err=%v", v, ok, err)
	}
}
