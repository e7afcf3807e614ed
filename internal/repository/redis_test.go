package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, "aromashop"), mr
}

func TestRedisStore_LoadSaveDelete(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedis(t)

	if _, err := store.Load(ctx, KeyOrders); err != ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := store.Save(ctx, KeyOrders, []byte(`[]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if v, err := mr.Get("aromashop:orders"); err != nil || v != "[]" {
		t.Fatalf("prefixed key not written: %q %v", v, err)
	}
	got, err := store.Load(ctx, KeyOrders)
	if err != nil || string(got) != "[]" {
		t.Fatalf("load: %q %v", got, err)
	}
	if err := store.Delete(ctx, KeyOrders); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if mr.Exists("aromashop:orders") {
		t.Fatalf("key still present")
	}
	if err := store.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestRedisStore_BackendErrorFallsBack(t *testing.T) {
	ctx := context.Background()
	// nothing listens on port 1
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	store := NewRedisStore(client, "aromashop")

	if _, err := store.Load(ctx, KeyCart); err == nil || err == ErrNotFound {
		t.Fatalf("expected backend error, got %v", err)
	}
	if got := Get(ctx, store, KeyCart, []string{"default"}); len(got) != 1 || got[0] != "default" {
		t.Fatalf("expected default on backend error, got %v", got)
	}
}

func TestDocumentOrders_OnRedis(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedis(t)
	orders := NewDocumentOrders(Scoped(store, "shop"))

	if err := orders.Create(ctx, newOrder("ORD-R1")); err != nil {
		t.Fatal(err)
	}
	got, err := orders.GetByID(ctx, "ORD-R1")
	if err != nil || got.ID != "ORD-R1" {
		t.Fatalf("get: %v", err)
	}
}
