//go:build integration

package containers

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"sumbandila/internal/platform/database"
)

// PostgresContainer wraps a testcontainers Postgres instance.
type PostgresContainer struct {
	Container testcontainers.Container
	DSN       string
	DB        *sql.DB
}

// NewPostgresContainer starts Postgres and applies the embedded migrations
// through the same path as `server migrate`.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase("sumbandila_test"),
		postgres.WithUsername("sumbandila"),
		postgres.WithPassword("sumbandila_test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to connect to postgres: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := database.Migrate(db, logger); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Shared across suites; Ryuk removes the container when the test binary exits.
	return &PostgresContainer{
		Container: container,
		DSN:       dsn,
		DB:        db,
	}
}

// TruncateTables clears all data from the specified tables.
func (p *PostgresContainer) TruncateTables(ctx context.Context, tables ...string) error {
	for _, table := range tables {
		if _, err := p.DB.ExecContext(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}
	return nil
}

// TruncateAll clears every table owned by the migrations.
func (p *PostgresContainer) TruncateAll(ctx context.Context) error {
	return p.TruncateTables(ctx, "certificates", "students", "courses", "institutions", "users")
}

// SeedCertificate inserts one certificate with its student, course and
// institution rows. Status is stored verbatim.
func (p *PostgresContainer) SeedCertificate(ctx context.Context, t testing.TB, number, first, last, course, institution, status string, issued time.Time) {
	t.Helper()

	var institutionID, studentID, courseID int64
	if err := p.DB.QueryRowContext(ctx,
		`INSERT INTO institutions (institution_name) VALUES ($1) RETURNING id`, institution,
	).Scan(&institutionID); err != nil {
		t.Fatalf("SeedCertificate institution: %v", err)
	}
	if err := p.DB.QueryRowContext(ctx,
		`INSERT INTO students (first_name, last_name) VALUES ($1, $2) RETURNING id`, first, last,
	).Scan(&studentID); err != nil {
		t.Fatalf("SeedCertificate student: %v", err)
	}
	if err := p.DB.QueryRowContext(ctx,
		`INSERT INTO courses (course_name, institution_id) VALUES ($1, $2) RETURNING id`, course, institutionID,
	).Scan(&courseID); err != nil {
		t.Fatalf("SeedCertificate course: %v", err)
	}
	if _, err := p.DB.ExecContext(ctx, `
		INSERT INTO certificates (certificate_number, student_id, course_id, issue_date, status)
		VALUES ($1, $2, $3, $4, $5)
	`, number, studentID, courseID, issued, status); err != nil {
		t.Fatalf("SeedCertificate certificate: %v", err)
	}
}
