// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

// Package antispam gates every public-facing write (contact form,
// newsletter signup) behind rate limiting, a honeypot check, field
// validation, a spam heuristic, and input sanitization, in that order,
// short-circuiting on the first failure. Only submissions that pass all
// five steps reach the database.
package antispam

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"gozcuweb/internal/kv"
)

// Rule bounds how many attempts a logical action allows per sliding window.
type Rule struct {
	Limit  int
	Window time.Duration
}

// Submission rules per logical action.
var (
	ContactRule    = Rule{Limit: 3, Window: time.Minute}
	NewsletterRule = Rule{Limit: 2, Window: 5 * time.Minute}
)

// Decision is the outcome of a rate-limit check. When Allowed is false,
// RetryAfter carries the whole seconds the client must wait before the
// oldest counted attempt falls out of the window.
type Decision struct {
	Allowed    bool
	RetryAfter int
}

// RateLimiter tracks attempt timestamps per action and client in a kv
// store, using a sliding window. State survives process restarts as long
// as the backing store does.
type RateLimiter struct {
	store kv.Store
	now   func() time.Time
}

// NewRateLimiter returns a rate limiter backed by the given kv store.
func NewRateLimiter(store kv.Store) *RateLimiter {
	return &RateLimiter{store: store, now: time.Now}
}

// NewRateLimiterAt returns a rate limiter with an injected clock, used in tests.
func NewRateLimiterAt(store kv.Store, now func() time.Time) *RateLimiter {
	return &RateLimiter{store: store, now: now}
}

// rateKey builds the kv key for an action and client pair.
func rateKey(action, client string) string {
	return fmt.Sprintf("ratelimit:%s:%s", action, client)
}

// Allow records an attempt for the action/client pair and reports whether
// it is within the rule's limit. Expired timestamps are dropped before
// counting. On a rejection, RetryAfter = ceil((oldest + window − now)/1s).
//
// A kv store failure fails open: the attempt is allowed and the error
// logged, so an unreachable Valkey never blocks legitimate submissions.
func (l *RateLimiter) Allow(ctx context.Context, action, client string, rule Rule) Decision {
	key := rateKey(action, client)
	now := l.now()
	cutoff := now.Add(-rule.Window)

	var attempts []int64 // unix milliseconds
	raw, ok, err := l.store.Get(ctx, key)
	if err != nil {
		slog.Warn("rate limiter store unavailable, allowing", "action", action, "error", err)
		return Decision{Allowed: true}
	}
	if ok {
		if err := json.Unmarshal(raw, &attempts); err != nil {
			// Corrupt state; reset rather than lock the client out.
			attempts = nil
		}
	}

	// Drop attempts that have slid out of the window.
	valid := attempts[:0]
	for _, ts := range attempts {
		if time.UnixMilli(ts).After(cutoff) {
			valid = append(valid, ts)
		}
	}
	attempts = valid

	if len(attempts) >= rule.Limit {
		oldest := time.UnixMilli(attempts[0])
		wait := oldest.Add(rule.Window).Sub(now)
		retry := int((wait + time.Second - 1) / time.Second) // ceil to whole seconds
		if retry < 1 {
			retry = 1
		}
		return Decision{Allowed: false, RetryAfter: retry}
	}

	attempts = append(attempts, now.UnixMilli())
	payload, err := json.Marshal(attempts)
	if err == nil {
		// Keep the key around slightly longer than the window so expired
		// state cleans itself up.
		if err := l.store.Set(ctx, key, payload, rule.Window*2); err != nil {
			slog.Warn("rate limiter store write failed", "action", action, "error", err)
		}
	}

	return Decision{Allowed: true}
}

// Reset clears the attempt log for an action/client pair. Used in tests
// and by admin tooling.
func (l *RateLimiter) Reset(ctx context.Context, action, client string) {
	_ = l.store.Delete(ctx, rateKey(action, client))
}
