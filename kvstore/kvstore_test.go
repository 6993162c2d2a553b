package kvstore

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.Set(ctx, "cart:u1", `{"lines":[]}`); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	v, err := s.Get(ctx, "cart:u1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if v != `{"lines":[]}` {
		t.Errorf("unexpected value %q", v)
	}

	if err := s.Remove(ctx, "cart:u1"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := s.Get(ctx, "cart:u1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after remove, got %v", err)
	}
}

func TestMemoryStoreRemoveMissingIsNoop(t *testing.T) {
	s := NewMemoryStore()
	if err := s.Remove(context.Background(), "never-set"); err != nil {
		t.Errorf("removing a missing key should not fail: %v", err)
	}
}

func TestMemoryStoreOverwrite(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	s.Set(ctx, "k", "v1")
	s.Set(ctx, "k", "v2")
	v, _ := s.Get(ctx, "k")
	if v != "v2" {
		t.Errorf("expected overwrite to v2, got %q", v)
	}
}
