package repository

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/fortipass/fortipass-go/internal/model"
)

var (
	ErrEntryNotFound  = errors.New("vault entry not found")
	ErrDuplicateEntry = errors.New("vault entry already exists")
)

// MemoryVaultStore keeps vault entries in memory in insertion order.
// The zero value is not usable; use NewMemoryVaultStore.
type MemoryVaultStore struct {
	mu      sync.RWMutex
	entries []model.VaultEntry
	index   map[string]int
}

// NewMemoryVaultStore creates an empty MemoryVaultStore.
func NewMemoryVaultStore() *MemoryVaultStore {
	return &MemoryVaultStore{index: make(map[string]int)}
}

// List returns copies of all entries in insertion order.
func (s *MemoryVaultStore) List(ctx context.Context) ([]model.VaultEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.VaultEntry, len(s.entries))
	for i, e := range s.entries {
		out[i] = cloneEntry(e)
	}
	return out, nil
}

// Get returns a copy of the entry with the given ID.
func (s *MemoryVaultStore) Get(ctx context.Context, id string) (model.VaultEntry, error) {
	if err := ctx.Err(); err != nil {
		return model.VaultEntry{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return model.VaultEntry{}, ErrEntryNotFound
	}
	return cloneEntry(s.entries[i]), nil
}

// Add stores a copy of entry. The ID must be unique.
func (s *MemoryVaultStore) Add(ctx context.Context, entry model.VaultEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[entry.ID]; ok {
		return ErrDuplicateEntry
	}
	s.index[entry.ID] = len(s.entries)
	s.entries = append(s.entries, cloneEntry(entry))
	return nil
}

// Remove deletes the entry with the given ID.
func (s *MemoryVaultStore) Remove(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return ErrEntryNotFound
	}

	s.entries = slices.Delete(s.entries, i, i+1)
	delete(s.index, id)
	for j := i; j < len(s.entries); j++ {
		s.index[s.entries[j].ID] = j
	}
	return nil
}

func cloneEntry(e model.VaultEntry) model.VaultEntry {
	e.SealedPassword = slices.Clone(e.SealedPassword)
	e.Tags = slices.Clone(e.Tags)
	return e
}
