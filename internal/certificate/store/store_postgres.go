package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sumbandila/internal/certificate/models"
	"sumbandila/pkg/domain"
	"sumbandila/pkg/platform/sentinel"
)

// PostgresStore reads certificates from certificate_verification_view.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// FindByNumber runs a single-row query. Certificate numbers match exactly.
func (s *PostgresStore) FindByNumber(ctx context.Context, number domain.CertificateNumber) (*models.Certificate, error) {
	var (
		c      models.Certificate
		stored string
		status string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT certificate_number,
		       first_name || ' ' || last_name AS student_name,
		       course_name,
		       institution_name,
		       issue_date,
		       status
		FROM certificate_verification_view
		WHERE certificate_number = $1
	`, string(number)).Scan(&stored, &c.StudentName, &c.Course, &c.Institution, &c.IssueDate, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("certificate not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find certificate: %w", err)
	}
	c.Number = domain.CertificateNumber(stored)
	c.Status = models.Status(status)
	return &c, nil
}
