package antispam

import (
	"context"
	"errors"
	"testing"
	"time"

	"gozcuweb/internal/kv"
)

// fixedClock returns a clock function and a setter for advancing it.
func fixedClock(start time.Time) (func() time.Time, func(time.Time)) {
	current := start
	return func() time.Time { return current }, func(t time.Time) { current = t }
}

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	ctx := context.Background()
	base := time.UnixMilli(0)
	now, _ := fixedClock(base)
	rl := NewRateLimiterAt(kv.NewMemory(), now)
	rule := Rule{Limit: 3, Window: time.Minute}

	for i := 0; i < 3; i++ {
		d := rl.Allow(ctx, "contact", "1.2.3.4", rule)
		if !d.Allowed {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}

	d := rl.Allow(ctx, "contact", "1.2.3.4", rule)
	if d.Allowed {
		t.Error("4th attempt within the window should be rejected")
	}
}

func TestRateLimiterRejectionWithinMilliseconds(t *testing.T) {
	// Four attempts at t=0ms, 10ms, 20ms, 30ms with limit 3: the fourth
	// must be rejected even though almost no wall time has passed.
	ctx := context.Background()
	now, advance := fixedClock(time.UnixMilli(0))
	rl := NewRateLimiterAt(kv.NewMemory(), now)
	rule := Rule{Limit: 3, Window: time.Minute}

	for i, ms := range []int64{0, 10, 20} {
		advance(time.UnixMilli(ms))
		if d := rl.Allow(ctx, "contact", "c", rule); !d.Allowed {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}

	advance(time.UnixMilli(30))
	d := rl.Allow(ctx, "contact", "c", rule)
	if d.Allowed {
		t.Fatal("4th attempt at t=30ms should be rejected")
	}
	// Oldest attempt at t=0 leaves the window at t=60s; from t=30ms the
	// wait is 59.97s, which rounds up to 60 whole seconds.
	if d.RetryAfter != 60 {
		t.Errorf("RetryAfter: got %d, want 60", d.RetryAfter)
	}
}

func TestRateLimiterSlidingWindow(t *testing.T) {
	ctx := context.Background()
	now, advance := fixedClock(time.UnixMilli(0))
	rl := NewRateLimiterAt(kv.NewMemory(), now)
	rule := Rule{Limit: 2, Window: time.Minute}

	rl.Allow(ctx, "newsletter", "c", rule)
	advance(time.UnixMilli(1000))
	rl.Allow(ctx, "newsletter", "c", rule)

	if d := rl.Allow(ctx, "newsletter", "c", rule); d.Allowed {
		t.Fatal("limit reached, should reject")
	}

	// After the first attempt slides out, one slot opens.
	advance(time.UnixMilli(61_000))
	if d := rl.Allow(ctx, "newsletter", "c", rule); !d.Allowed {
		t.Error("should allow after oldest attempt expired")
	}
}

func TestRateLimiterIsolatesActionsAndClients(t *testing.T) {
	ctx := context.Background()
	now, _ := fixedClock(time.UnixMilli(0))
	rl := NewRateLimiterAt(kv.NewMemory(), now)
	rule := Rule{Limit: 1, Window: time.Minute}

	if d := rl.Allow(ctx, "contact", "a", rule); !d.Allowed {
		t.Fatal("first attempt should pass")
	}
	if d := rl.Allow(ctx, "contact", "a", rule); d.Allowed {
		t.Fatal("second attempt for same pair should be rejected")
	}

	// A different client and a different action are unaffected.
	if d := rl.Allow(ctx, "contact", "b", rule); !d.Allowed {
		t.Error("other client should not share the counter")
	}
	if d := rl.Allow(ctx, "newsletter", "a", rule); !d.Allowed {
		t.Error("other action should not share the counter")
	}
}

// failingStore always errors, simulating an unreachable Valkey.
type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}
func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}
func (failingStore) Delete(context.Context, string) error {
	return errors.New("connection refused")
}

func TestRateLimiterFailsOpen(t *testing.T) {
	ctx := context.Background()
	rl := NewRateLimiter(failingStore{})

	for i := 0; i < 10; i++ {
		if d := rl.Allow(ctx, "contact", "c", ContactRule); !d.Allowed {
			t.Fatal("store failure must not block submissions")
		}
	}
}

func TestRateLimiterReset(t *testing.T) {
	ctx := context.Background()
	now, _ := fixedClock(time.UnixMilli(0))
	rl := NewRateLimiterAt(kv.NewMemory(), now)
	rule := Rule{Limit: 1, Window: time.Minute}

	rl.Allow(ctx, "contact", "c", rule)
	if d := rl.Allow(ctx, "contact", "c", rule); d.Allowed {
		t.Fatal("should be limited before reset")
	}

	rl.Reset(ctx, "contact", "c")
	if d := rl.Allow(ctx, "contact", "c", rule); !d.Allowed {
		t.Error("should allow after reset")
	}
}
