// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package assistant

import (
	"context"
	"sync"

	"geniewp/internal/models"
)

// ValuesSink keeps the guided values extracted so far. Put overwrites
// values with the same filter and leaves the others untouched.
type ValuesSink interface {
	Put(ctx context.Context, values []models.GuidedValue) error
	All(ctx context.Context) ([]models.GuidedValue, error)
	Clear(ctx context.Context) error
}

// MemoryValues is an in-process ValuesSink.
type MemoryValues struct {
	mu     sync.RWMutex
	order  []string
	values map[string]models.GuidedValue
}

// NewMemoryValues creates an empty MemoryValues.
func NewMemoryValues() *MemoryValues {
	return &MemoryValues{values: make(map[string]models.GuidedValue)}
}

func (m *MemoryValues) Put(_ context.Context, values []models.GuidedValue) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range values {
		if _, ok := m.values[v.Filter]; !ok {
			m.order = append(m.order, v.Filter)
		}
		m.values[v.Filter] = v
	}
	return nil
}

// All returns the values in first-seen order.
func (m *MemoryValues) All(_ context.Context) ([]models.GuidedValue, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.GuidedValue, 0, len(m.order))
	for _, f := range m.order {
		out = append(out, m.values[f])
	}
	return out, nil
}

func (m *MemoryValues) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.order = nil
	m.values = make(map[string]models.GuidedValue)
	return nil
}
