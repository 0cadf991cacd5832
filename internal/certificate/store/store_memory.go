package store

import (
	"context"
	"fmt"
	"sync"

	"sumbandila/internal/certificate/models"
	"sumbandila/pkg/domain"
	"sumbandila/pkg/platform/sentinel"
)

// InMemoryStore backs the registry in development and tests.
type InMemoryStore struct {
	mu    sync.RWMutex
	certs map[domain.CertificateNumber]models.Certificate
}

func NewInMemoryStore(certs ...*models.Certificate) *InMemoryStore {
	s := &InMemoryStore{certs: make(map[domain.CertificateNumber]models.Certificate, len(certs))}
	for _, c := range certs {
		s.certs[c.Number] = *c
	}
	return s
}

// Save inserts a certificate. Certificate numbers are unique.
func (s *InMemoryStore) Save(_ context.Context, cert *models.Certificate) error {
	if cert == nil {
		return fmt.Errorf("certificate is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.certs[cert.Number]; ok {
		return fmt.Errorf("certificate exists: %w", sentinel.ErrAlreadyExists)
	}
	s.certs[cert.Number] = *cert
	return nil
}

func (s *InMemoryStore) FindByNumber(_ context.Context, number domain.CertificateNumber) (*models.Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.certs[number]
	if !ok {
		return nil, fmt.Errorf("certificate not found: %w", sentinel.ErrNotFound)
	}
	return &c, nil
}
