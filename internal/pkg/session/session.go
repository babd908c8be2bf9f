// Package session provides the server-side session store backing the
// authentication gate. Sessions are keyed by an opaque token held by the
// client; each one carries at most one authenticated principal. The store
// is an injected capability with pluggable backends rather than
// process-global state.
package session

import (
	"context"
	"time"
)

// Principal is the authenticated account attached to a session.
type Principal struct {
	AccountID int64  `json:"accountId"`
	LoginID   string `json:"loginId"`
	Role      string `json:"role"`
}

// Session associates an opaque token with a principal.
type Session struct {
	Token     string
	Principal Principal
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Store is the session persistence contract. Get returns
// apperrors.ErrSessionNotFound for unknown tokens and
// apperrors.ErrSessionExpired for known but stale ones.
type Store interface {
	Create(ctx context.Context, principal Principal) (*Session, error)
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	// DeleteByAccount revokes every session belonging to an account,
	// used when the account itself is deleted.
	DeleteByAccount(ctx context.Context, accountID int64) error
}
