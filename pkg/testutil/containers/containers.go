//go:build integration

// Package containers starts Postgres, Redis and Kafka with testcontainers.
// Each container is started at most once per test binary and shared by every
// suite in it.
package containers

import (
	"sync"
	"testing"
)

type shared[T any] struct {
	mu  sync.Mutex
	val T
	ok  bool
}

func (s *shared[T]) get(t *testing.T, start func(*testing.T) T) T {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ok {
		s.val = start(t)
		s.ok = true
	}
	return s.val
}

type Manager struct {
	postgres shared[*PostgresContainer]
	redis    shared[*RedisContainer]
	kafka    shared[*KafkaContainer]
}

var manager = &Manager{}

// GetManager returns the process-wide manager.
func GetManager() *Manager {
	return manager
}

// GetPostgres returns a migrated Postgres container.
func (m *Manager) GetPostgres(t *testing.T) *PostgresContainer {
	return m.postgres.get(t, NewPostgresContainer)
}

func (m *Manager) GetRedis(t *testing.T) *RedisContainer {
	return m.redis.get(t, NewRedisContainer)
}

func (m *Manager) GetKafka(t *testing.T) *KafkaContainer {
	return m.kafka.get(t, NewKafkaContainer)
}
