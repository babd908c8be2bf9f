package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anup/resultportal/internal/pkg/apperrors"
)

func TestMemoryStoreCreateAndGet(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	principal := Principal{AccountID: 7, LoginID: "a@gmail.com", Role: "admin"}
	sess, err := store.Create(ctx, principal)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.Token == "" {
		t.Fatalf("expected a non-empty token")
	}

	got, err := store.Get(ctx, sess.Token)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Principal != principal {
		t.Fatalf("principal mismatch: %+v", got.Principal)
	}
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	_, err := store.Get(context.Background(), "no-such-token")
	if !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	sess, err := store.Create(ctx, Principal{AccountID: 1})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Advance the clock past the TTL.
	store.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	if _, err := store.Get(ctx, sess.Token); !errors.Is(err, apperrors.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}

	// The expired entry is dropped; a second lookup reports not-found.
	if _, err := store.Get(ctx, sess.Token); !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after expiry cleanup, got %v", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	sess, _ := store.Create(ctx, Principal{AccountID: 1})
	if err := store.Delete(ctx, sess.Token); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, sess.Token); !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}

	// Deleting again is not an error.
	if err := store.Delete(ctx, sess.Token); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
}

func TestMemoryStoreDeleteByAccount(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	s1, _ := store.Create(ctx, Principal{AccountID: 1})
	s2, _ := store.Create(ctx, Principal{AccountID: 1})
	other, _ := store.Create(ctx, Principal{AccountID: 2})

	if err := store.DeleteByAccount(ctx, 1); err != nil {
		t.Fatalf("DeleteByAccount: %v", err)
	}

	for _, token := range []string{s1.Token, s2.Token} {
		if _, err := store.Get(ctx, token); !errors.Is(err, apperrors.ErrSessionNotFound) {
			t.Fatalf("expected account 1 sessions revoked, got %v", err)
		}
	}

	if _, err := store.Get(ctx, other.Token); err != nil {
		t.Fatalf("account 2 session should survive, got %v", err)
	}
}

func TestMemoryStoreZeroTTLNeverExpires(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	sess, _ := store.Create(ctx, Principal{AccountID: 1})
	store.now = func() time.Time { return time.Now().Add(1000 * time.Hour) }

	if _, err := store.Get(ctx, sess.Token); err != nil {
		t.Fatalf("session with zero TTL should not expire, got %v", err)
	}
}
