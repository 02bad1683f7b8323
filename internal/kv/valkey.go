// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package kv

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Valkey implements Store on top of a Valkey (Redis-compatible) client.
type Valkey struct {
	client *redis.Client
}

// NewValkey returns a Store backed by the given Valkey client.
func NewValkey(client *redis.Client) *Valkey {
	return &Valkey{client: client}
}

// Get implements Store.
func (v *Valkey) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := v.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("kv get %s: %w", key, err)
	}
	return val, true, nil
}

// Set implements Store.
func (v *Valkey) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := v.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("kv set %s: %w", key, err)
	}
	return nil
}

// Delete implements Store.
func (v *Valkey) Delete(ctx context.Context, key string) error {
	if err := v.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("kv delete %s: %w", key, err)
	}
	return nil
}
