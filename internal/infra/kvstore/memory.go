package kvstore

import (
	"context"
	"log/slog"
	"sync"

	"storefront-cart/internal/infra"
)

type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
	logger  *slog.Logger
}

func NewMemory(logger *slog.Logger) *Memory {
	return &Memory{
		entries: make(map[string][]byte),
		logger:  logger,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.entries[key]
	if !ok {
		return nil, infra.WrapRepoErr(m.logger, infra.KindNotFound, "kv entry not found", nil)
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}
