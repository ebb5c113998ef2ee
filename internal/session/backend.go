// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type valkeyBackend struct {
	client *redis.Client
}

func (b *valkeyBackend) set(ctx context.Context, id string, payload []byte, ttl time.Duration) error {
	return b.client.Set(ctx, keyPrefix+id, payload, ttl).Err()
}

func (b *valkeyBackend) get(ctx context.Context, id string) ([]byte, error) {
	payload, err := b.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Session expired or doesn't exist
	}
	return payload, err
}

func (b *valkeyBackend) del(ctx context.Context, id string) error {
	return b.client.Del(ctx, keyPrefix+id).Err()
}

type memoryEntry struct {
	payload []byte
	expires time.Time
}

type memoryBackend struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{entries: make(map[string]memoryEntry), now: time.Now}
}

func (b *memoryBackend) set(_ context.Context, id string, payload []byte, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[id] = memoryEntry{payload: payload, expires: b.now().Add(ttl)}
	return nil
}

func (b *memoryBackend) get(_ context.Context, id string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.entries[id]
	if !ok {
		return nil, nil
	}
	if b.now().After(e.expires) {
		delete(b.entries, id)
		return nil, nil
	}
	return e.payload, nil
}

func (b *memoryBackend) del(_ context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.entries, id)
	return nil
}
