package user

import (
	"context"
	"fmt"
	"sync"

	"sumbandila/internal/auth/models"
	"sumbandila/pkg/domain"
	"sumbandila/pkg/platform/sentinel"
)

// InMemoryUserStore keeps users in a map guarded by a RWMutex.
type InMemoryUserStore struct {
	mu    sync.RWMutex
	users map[domain.PhoneNumber]*models.User
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{users: make(map[domain.PhoneNumber]*models.User)}
}

// Register checks and inserts under one write lock.
func (s *InMemoryUserStore) Register(_ context.Context, user *models.User) error {
	if user == nil {
		return fmt.Errorf("user is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Phone]; ok {
		return fmt.Errorf("user exists: %w", sentinel.ErrAlreadyExists)
	}
	stored := *user
	s.users[user.Phone] = &stored
	return nil
}

func (s *InMemoryUserStore) FindByPhone(_ context.Context, phone domain.PhoneNumber) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[phone]
	if !ok {
		return nil, fmt.Errorf("user not found: %w", sentinel.ErrNotFound)
	}
	found := *u
	return &found, nil
}
