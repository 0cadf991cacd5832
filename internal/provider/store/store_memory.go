package store

import (
	"context"
	"fmt"

	"sumbandila/internal/provider/models"
	"sumbandila/pkg/platform/sentinel"
)

// InMemoryStore is a read-only provider registry keyed by models.NormalizeKey.
// It is built once at startup and never mutated, so lookups take no locks.
type InMemoryStore struct {
	providers map[models.Key]models.Provider
}

// NewInMemoryStore indexes records under their normalized key. Two records
// that normalize to the same key are rejected.
func NewInMemoryStore(records []Record) (*InMemoryStore, error) {
	providers := make(map[models.Key]models.Provider, len(records))
	for _, r := range records {
		key := models.NormalizeKey(r.Type, r.Identifier)
		if _, dup := providers[key]; dup {
			return nil, fmt.Errorf("duplicate provider %s/%s: %w", key.Type, key.Identifier, sentinel.ErrAlreadyExists)
		}
		providers[key] = r.provider()
	}
	return &InMemoryStore{providers: providers}, nil
}

// FindByKey returns a copy of the record stored under key.
func (s *InMemoryStore) FindByKey(_ context.Context, key models.Key) (*models.Provider, error) {
	p, ok := s.providers[key]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &p, nil
}

// Len reports the number of records.
func (s *InMemoryStore) Len() int {
	return len(s.providers)
}
