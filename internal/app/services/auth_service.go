package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anup/resultportal/internal/app/models"
	"github.com/anup/resultportal/internal/app/models/dto"
	"github.com/anup/resultportal/internal/pkg/apperrors"
	"github.com/anup/resultportal/internal/pkg/auth"
	"github.com/anup/resultportal/internal/pkg/session"
)

// accountReader is the slice of the account repository the
// authenticator needs.
type accountReader interface {
	GetByLoginID(ctx context.Context, loginID string) (*models.Account, error)
}

// AuthService validates credentials and manages the session lifecycle
// around login and logout.
type AuthService interface {
	// Authenticate verifies the loginId/password pair and, on success,
	// seeds a new session holding the account as principal.
	Authenticate(ctx context.Context, req *dto.LoginRequest) (*session.Session, *models.Account, error)
	// Logout destroys the session for the given token.
	Logout(ctx context.Context, token string) error
}

type authService struct {
	accounts accountReader
	sessions session.Store
}

// NewAuthService creates a new authentication service.
func NewAuthService(accounts accountReader, sessions session.Store) AuthService {
	return &authService{accounts: accounts, sessions: sessions}
}

func (s *authService) Authenticate(ctx context.Context, req *dto.LoginRequest) (*session.Session, *models.Account, error) {
	loginID := strings.TrimSpace(req.LoginID)
	if loginID == "" || req.Password == "" {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	account, err := s.accounts.GetByLoginID(ctx, loginID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("error looking up account: %w", err)
	}

	if !auth.CheckPassword(account.Password, req.Password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, session.Principal{
		AccountID: account.ID,
		LoginID:   account.LoginID,
		Role:      string(account.Role),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("error creating session: %w", err)
	}

	return sess, account, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return apperrors.ErrUnauthorized
	}
	return s.sessions.Delete(ctx, token)
}
