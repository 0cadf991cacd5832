package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"sumbandila/internal/auth/models"
	"sumbandila/pkg/domain"
	"sumbandila/pkg/platform/sentinel"
)

// PostgresStore persists users in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed user store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Register relies on the primary key: a conflicting insert affects zero rows.
func (s *PostgresStore) Register(ctx context.Context, user *models.User) error {
	if user == nil {
		return fmt.Errorf("user is required")
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO users (phone, name, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (phone) DO NOTHING
	`, string(user.Phone), user.Name, user.PasswordHash, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user exists: %w", sentinel.ErrAlreadyExists)
		}
		return fmt.Errorf("insert user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert user rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user exists: %w", sentinel.ErrAlreadyExists)
	}
	return nil
}

func (s *PostgresStore) FindByPhone(ctx context.Context, phone domain.PhoneNumber) (*models.User, error) {
	var u models.User
	var storedPhone string
	err := s.db.QueryRowContext(ctx, `
		SELECT phone, name, password_hash, created_at
		FROM users
		WHERE phone = $1
	`, string(phone)).Scan(&storedPhone, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find user by phone: %w", err)
	}
	u.Phone = domain.PhoneNumber(storedPhone)
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
