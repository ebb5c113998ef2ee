// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"geniewp/internal/models"
)

const (
	guidedValuesKey = "guided:values"
	guidedOrderKey  = "guided:order"
	guidedSeqKey    = "guided:seq"

	// DefaultGuidedTTL is how long extracted values survive without a
	// new write.
	DefaultGuidedTTL = 7 * 24 * time.Hour
)

// GuidedValues stores the values extracted from assistant replies in a
// Valkey hash, remembering the order filters were first seen in.
type GuidedValues struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGuidedValues creates a GuidedValues backed by the given Valkey client.
func NewGuidedValues(client *redis.Client, ttl time.Duration) *GuidedValues {
	if ttl == 0 {
		ttl = DefaultGuidedTTL
	}
	return &GuidedValues{client: client, ttl: ttl}
}

// Put overwrites the values for the given filters.
func (g *GuidedValues) Put(ctx context.Context, values []models.GuidedValue) error {
	if len(values) == 0 {
		return nil
	}

	fields := make([]any, 0, len(values)*2)
	members := make([]redis.Z, 0, len(values))
	for _, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode guided value %s: %w", v.Filter, err)
		}
		seq, err := g.client.Incr(ctx, guidedSeqKey).Result()
		if err != nil {
			return fmt.Errorf("guided seq: %w", err)
		}
		fields = append(fields, v.Filter, data)
		members = append(members, redis.Z{Score: float64(seq), Member: v.Filter})
	}

	pipe := g.client.TxPipeline()
	pipe.HSet(ctx, guidedValuesKey, fields...)
	pipe.ZAddNX(ctx, guidedOrderKey, members...)
	for _, key := range []string{guidedValuesKey, guidedOrderKey, guidedSeqKey} {
		pipe.Expire(ctx, key, g.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store guided values: %w", err)
	}

	slog.Debug("guided values stored", "count", len(values))
	return nil
}

// All returns the stored values in first-seen order.
func (g *GuidedValues) All(ctx context.Context) ([]models.GuidedValue, error) {
	filters, err := g.client.ZRange(ctx, guidedOrderKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("guided order: %w", err)
	}
	if len(filters) == 0 {
		return []models.GuidedValue{}, nil
	}

	raw, err := g.client.HMGet(ctx, guidedValuesKey, filters...).Result()
	if err != nil {
		return nil, fmt.Errorf("guided values: %w", err)
	}

	out := make([]models.GuidedValue, 0, len(raw))
	for i, r := range raw {
		s, ok := r.(string)
		if !ok {
			continue
		}
		var v models.GuidedValue
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			slog.Warn("skipping undecodable guided value", "filter", filters[i], "error", err)
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// Clear removes every stored value.
func (g *GuidedValues) Clear(ctx context.Context) error {
	if err := g.client.Del(ctx, guidedValuesKey, guidedOrderKey, guidedSeqKey).Err(); err != nil {
		return fmt.Errorf("clear guided values: %w", err)
	}
	return nil
}
