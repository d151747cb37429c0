package newsletter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
	pgUniqueCode = "23505"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) Subscribe(ctx context.Context, email string) (Subscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	sub := Subscription{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO newsletter_subscribers (id, email, created_at)
		VALUES ($1, $2, $3)
	`, sub.ID, sub.Email, sub.CreatedAt)

	if err == nil {
		return sub, nil
	}

	// Already subscribed counts as success; fetch the existing row so
	// callers see the original signup.
	if isUniqueViolation(err) {
		var existing Subscription
		qerr := s.db.QueryRowContext(ctx, `
			SELECT id, email, created_at
			FROM newsletter_subscribers
			WHERE email = $1
		`, sub.Email).Scan(&existing.ID, &existing.Email, &existing.CreatedAt)
		if qerr != nil {
			return Subscription{}, fmt.Errorf("%w: %w", ErrUnavailable, qerr)
		}
		return existing, nil
	}

	return Subscription{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueCode
}
