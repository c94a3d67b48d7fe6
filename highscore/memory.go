package highscore

import (
	"context"
	"sync"
)

// MemoryStore keeps the score for the lifetime of the process
type MemoryStore struct {
	mu    sync.Mutex
	value string
	set   bool
	saves int
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWith creates a store holding a raw stored value, used to simulate corrupt data
func NewMemoryStoreWith(raw string) *MemoryStore {
	return &MemoryStore{value: raw, set: true}
}

// Load returns the stored score, 0 if none
func (m *MemoryStore) Load(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.set {
		return 0, nil
	}
	return parseScore(m.value)
}

// Save overwrites the stored score
func (m *MemoryStore) Save(ctx context.Context, score int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := formatScore(score)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = raw
	m.set = true
	m.saves++
	return nil
}

// Saves returns how many times Save succeeded
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
