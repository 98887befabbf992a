package redis

import (
	"context"
	"testing"
	"time"

	"delivery-pricing/internal/config"
	"delivery-pricing/internal/logger"

	miniredis "github.com/alicebob/miniredis/v2"
	redislib "github.com/go-redis/redis/v8"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis, context.Context) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redislib.NewClient(&redislib.Options{Addr: mr.Addr()})
	log := logger.New(&config.LoggerConfig{Level: "error", Format: "json"})
	return &Client{client: rdb, log: log}, mr, context.Background()
}

func TestConnectSuccess(t *testing.T) {
	mr := miniredis.RunT(t)
	defer mr.Close()
	log := logger.New(&config.LoggerConfig{Level: "error", Format: "json"})
	cfg := &config.RedisConfig{Host: "127.0.0.1", Port: mr.Port(), DB: 0}

	client, err := Connect(cfg, log)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}

func TestConnectFailure(t *testing.T) {
	log := logger.New(&config.LoggerConfig{Level: "error", Format: "json"})
	cfg := &config.RedisConfig{Host: "127.0.0.1", Port: "0", DB: 0}
	if _, err := Connect(cfg, log); err == nil {
		t.Fatalf("expected connect error")
	}
}

func TestCloseNil(t *testing.T) {
	var client *Client
	if err := client.Close(); err != nil {
		t.Fatalf("expected nil error on nil client close, got %v", err)
	}
}

func TestGenerateKey(t *testing.T) {
	key := GenerateKey("ratelimit", "10.0.0.1")
	if key != "ratelimit:10.0.0.1" {
		t.Fatalf("unexpected key: %s", key)
	}
}

func TestIncrExpireTTL(t *testing.T) {
	client, mr, ctx := newTestClient(t)

	val, err := client.Incr(ctx, "counter")
	if err != nil {
		t.Fatalf("incr failed: %v", err)
	}
	if val != 1 {
		t.Fatalf("expected 1, got %d", val)
	}

	if _, err := client.Incr(ctx, "counter"); err != nil {
		t.Fatalf("second incr failed: %v", err)
	}

	if err := client.Expire(ctx, "counter", time.Minute); err != nil {
		t.Fatalf("expire failed: %v", err)
	}

	ttl, err := client.TTL(ctx, "counter")
	if err != nil {
		t.Fatalf("ttl failed: %v", err)
	}
	if ttl <= 0 || ttl > time.Minute {
		t.Fatalf("unexpected ttl: %v", ttl)
	}

	got, err := client.GetInt(ctx, "counter")
	if err != nil {
		t.Fatalf("getint failed: %v", err)
	}
	if got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}

	mr.FastForward(2 * time.Minute)
	if _, err := client.GetInt(ctx, "counter"); err == nil {
		t.Fatalf("expected error after ttl expiry")
	}
}

func TestGetIntMissingKey(t *testing.T) {
	client, _, ctx := newTestClient(t)
	if _, err := client.GetInt(ctx, "missing"); err == nil {
		t.Fatalf("expected error for missing key")
	}
}

func TestHealth(t *testing.T) {
	client, mr, ctx := newTestClient(t)
	if err := client.Health(ctx); err != nil {
		t.Fatalf("health failed: %v", err)
	}
	mr.Close()
	if err := client.Health(ctx); err == nil {
		t.Fatalf("expected health error after close")
	}
}
