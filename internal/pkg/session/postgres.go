package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anup/resultportal/internal/pkg/apperrors"
)

// PostgresStore persists sessions in the sessions table so they survive
// restarts and are shared across instances.
type PostgresStore struct {
	db  *pgxpool.Pool
	ttl time.Duration
}

// NewPostgresStore creates a Postgres-backed session store.
func NewPostgresStore(db *pgxpool.Pool, ttl time.Duration) *PostgresStore {
	return &PostgresStore{db: db, ttl: ttl}
}

// Create mints a new session for the principal.
func (s *PostgresStore) Create(ctx context.Context, principal Principal) (*Session, error) {
	now := time.Now()
	sess := &Session{
		Token:     uuid.NewString(),
		Principal: principal,
		CreatedAt: now,
	}
	if s.ttl > 0 {
		sess.ExpiresAt = now.Add(s.ttl)
	}

	query := `
		INSERT INTO sessions (token, account_id, login_id, role, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	var expiresAt *time.Time
	if !sess.ExpiresAt.IsZero() {
		expiresAt = &sess.ExpiresAt
	}

	_, err := s.db.Exec(ctx, query,
		sess.Token, principal.AccountID, principal.LoginID, principal.Role,
		sess.CreatedAt, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("error creating session: %w", err)
	}

	return sess, nil
}

// Get resolves a token to its session.
func (s *PostgresStore) Get(ctx context.Context, token string) (*Session, error) {
	query := `
		SELECT token, account_id, login_id, role, created_at, expires_at
		FROM sessions
		WHERE token = $1
	`

	var sess Session
	var expiresAt *time.Time
	err := s.db.QueryRow(ctx, query, token).Scan(
		&sess.Token,
		&sess.Principal.AccountID,
		&sess.Principal.LoginID,
		&sess.Principal.Role,
		&sess.CreatedAt,
		&expiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("error retrieving session: %w", err)
	}

	if expiresAt != nil {
		sess.ExpiresAt = *expiresAt
	}
	if sess.Expired(time.Now()) {
		_, _ = s.db.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
		return nil, apperrors.ErrSessionExpired
	}

	return &sess, nil
}

// Delete removes a session. Deleting an unknown token is not an error.
func (s *PostgresStore) Delete(ctx context.Context, token string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

// DeleteByAccount revokes all sessions held by an account.
func (s *PostgresStore) DeleteByAccount(ctx context.Context, accountID int64) error {
	_, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE account_id = $1`, accountID)
	if err != nil {
		return fmt.Errorf("error revoking account sessions: %w", err)
	}
	return nil
}
