package tinymap

import (
	"context"
	"sync"

	"github.com/wastefall/wastefall/internal/model"
)

// MemoryRepository keeps submaps in memory. Used for ephemeral worlds
// and as the backing store in tests. Thread-safe.
type MemoryRepository struct {
	mu      sync.RWMutex
	submaps map[model.Tripoint][]byte
}

// NewMemoryRepository creates an empty in-memory submap store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{submaps: make(map[model.Tripoint][]byte, 64)}
}

// LoadSubmap returns the stored submap or nil when absent.
func (r *MemoryRepository) LoadSubmap(_ context.Context, pos model.Tripoint) (*Submap, error) {
	r.mu.RLock()
	blob, ok := r.submaps[pos]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return DecodeSubmap(blob)
}

// SaveSubmap stores the submap, replacing any previous version.
func (r *MemoryRepository) SaveSubmap(_ context.Context, pos model.Tripoint, sm *Submap) error {
	blob, err := EncodeSubmap(sm)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.submaps[pos] = blob
	r.mu.Unlock()
	return nil
}

// Len returns how many submaps are stored.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.submaps)
}
