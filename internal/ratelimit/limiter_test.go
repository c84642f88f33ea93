package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLimiter_FixedWindow(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(2, time.Minute)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if ok, _ := l.Allow(ctx, "1.2.3.4"); !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if ok, _ := l.Allow(ctx, "1.2.3.4"); ok {
		t.Error("third request inside window should be rejected")
	}
	if ok, _ := l.Allow(ctx, "5.6.7.8"); !ok {
		t.Error("other client should have its own bucket")
	}

	now = now.Add(time.Minute + time.Second)
	if ok, _ := l.Allow(ctx, "1.2.3.4"); !ok {
		t.Error("request after window should be allowed")
	}
}

func TestMemoryLimiter_DropsExpiredBuckets(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(5, time.Minute)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		_, _ = l.Allow(ctx, ip)
	}
	if len(l.buckets) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(l.buckets))
	}

	now = now.Add(2 * time.Minute)
	if ok, _ := l.Allow(ctx, "10.0.0.9"); !ok {
		t.Fatal("request from a new client should be allowed")
	}
	if len(l.buckets) != 1 {
		t.Errorf("expected expired buckets to be dropped, %d remain", len(l.buckets))
	}
	if _, ok := l.buckets["10.0.0.9"]; !ok {
		t.Error("bucket of the current client is missing")
	}
}

func TestRedisLimiter_WindowKey(t *testing.T) {
	l := NewRedisLimiter(nil, "tm:rl", 10, time.Minute)
	l.now = func() time.Time { return time.UnixMilli(125_000) }

	if got, want := l.windowKey("10.0.0.1"), "tm:rl:10.0.0.1:2"; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
