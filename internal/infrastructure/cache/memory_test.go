package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreSetGet(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	if err := ms.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, ok, err := ms.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if val != "v" {
		t.Fatalf("unexpected value %q", val)
	}
}

func TestMemoryStoreExpiration(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	ms.Set(ctx, "k", "v", -time.Second)

	if _, ok, _ := ms.Get(ctx, "k"); ok {
		t.Fatal("expected expired key to miss")
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	ms.Set(ctx, "k", "v", time.Minute)
	if err := ms.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := ms.Get(ctx, "k"); ok {
		t.Fatal("expected deleted key to miss")
	}
}
