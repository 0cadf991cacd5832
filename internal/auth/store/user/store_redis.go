package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sumbandila/internal/auth/models"
	"sumbandila/pkg/domain"
	"sumbandila/pkg/platform/sentinel"
)

const userKeyPrefix = "user:"

type userJSON struct {
	Phone        string `json:"phone"`
	Name         string `json:"name"`
	PasswordHash string `json:"password_hash"`
	CreatedAt    int64  `json:"created_at"` // Unix nano
}

// RedisStore keeps one JSON document per user under "user:<phone>".
type RedisStore struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func userKey(phone domain.PhoneNumber) string {
	return userKeyPrefix + string(phone)
}

// Register uses SETNX so the existence check and the write are one command.
func (s *RedisStore) Register(ctx context.Context, user *models.User) error {
	if user == nil {
		return fmt.Errorf("user is required")
	}

	payload, err := json.Marshal(userJSON{
		Phone:        string(user.Phone),
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt.UnixNano(),
	})
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	ok, err := s.client.SetNX(ctx, userKey(user.Phone), payload, 0).Result()
	if err != nil {
		return fmt.Errorf("register user: %w", err)
	}
	if !ok {
		return fmt.Errorf("user exists: %w", sentinel.ErrAlreadyExists)
	}
	return nil
}

func (s *RedisStore) FindByPhone(ctx context.Context, phone domain.PhoneNumber) (*models.User, error) {
	raw, err := s.client.Get(ctx, userKey(phone)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("user not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find user by phone: %w", err)
	}

	var j userJSON
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &models.User{
		Phone:        domain.PhoneNumber(j.Phone),
		Name:         j.Name,
		PasswordHash: j.PasswordHash,
		CreatedAt:    time.Unix(0, j.CreatedAt).UTC(),
	}, nil
}
