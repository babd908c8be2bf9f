package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anup/resultportal/internal/app/models"
	"github.com/anup/resultportal/internal/app/models/dto"
	"github.com/anup/resultportal/internal/pkg/apperrors"
	"github.com/anup/resultportal/internal/pkg/auth"
	"github.com/anup/resultportal/internal/pkg/paging"
	"github.com/anup/resultportal/internal/pkg/session"
)

// dobLayout is the wire format for dates of birth.
const dobLayout = "2006-01-02"

// accountStore is the slice of the account repository the service needs.
type accountStore interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter *paging.Filter, params paging.Params) ([]models.Account, int64, error)
}

// AccountService handles account CRUD and filtered search.
type AccountService interface {
	Register(ctx context.Context, req *dto.CreateAccountRequest) (*models.Account, error)
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAccountRequest) (*models.Account, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query dto.AccountSearchQuery, params paging.Params) (*dto.AccountSearchResponse, error)
}

type accountService struct {
	accounts accountStore
	sessions session.Store
}

// NewAccountService creates a new account service. The session store is
// used to revoke an account's sessions when the account is deleted.
func NewAccountService(accounts accountStore, sessions session.Store) AccountService {
	return &accountService{accounts: accounts, sessions: sessions}
}

func (s *accountService) Register(ctx context.Context, req *dto.CreateAccountRequest) (*models.Account, error) {
	dob, err := time.Parse(dobLayout, req.DOB)
	if err != nil {
		return nil, apperrors.NewValidationError("dob must be in YYYY-MM-DD format")
	}

	role := models.Role(strings.ToLower(strings.TrimSpace(req.Role)))
	if role == "" {
		// Self-registration defaults to the student role.
		role = models.RoleStudent
	}
	if !role.Valid() {
		return nil, apperrors.NewValidationError("role must be admin or student")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	account := &models.Account{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		LoginID:   strings.TrimSpace(req.LoginID),
		Password:  hash,
		DOB:       dob,
		Gender:    req.Gender,
		Role:      role,
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

func (s *accountService) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

func (s *accountService) Update(ctx context.Context, id int64, req *dto.UpdateAccountRequest) (*models.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		account.FirstName = req.FirstName
	}
	if req.LastName != "" {
		account.LastName = req.LastName
	}
	if req.LoginID != "" {
		account.LoginID = strings.TrimSpace(req.LoginID)
	}
	if req.Gender != "" {
		account.Gender = req.Gender
	}
	if req.DOB != "" {
		dob, err := time.Parse(dobLayout, req.DOB)
		if err != nil {
			return nil, apperrors.NewValidationError("dob must be in YYYY-MM-DD format")
		}
		account.DOB = dob
	}
	if req.Role != "" {
		role := models.Role(strings.ToLower(req.Role))
		if !role.Valid() {
			return nil, apperrors.NewValidationError("role must be admin or student")
		}
		account.Role = role
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		account.Password = hash
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

func (s *accountService) Delete(ctx context.Context, id int64) error {
	if err := s.accounts.Delete(ctx, id); err != nil {
		return err
	}

	// Revoke any live sessions held by the deleted account so its
	// credentials stop working immediately.
	if err := s.sessions.DeleteByAccount(ctx, id); err != nil {
		return fmt.Errorf("account deleted but session revocation failed: %w", err)
	}

	return nil
}

func (s *accountService) Search(ctx context.Context, query dto.AccountSearchQuery, params paging.Params) (*dto.AccountSearchResponse, error) {
	params = params.Normalize()

	filter := paging.NewFilter().
		Contains("first_name", query.FirstName).
		Contains("last_name", query.LastName).
		Contains("login_id", query.LoginID)

	accounts, total, err := s.accounts.Search(ctx, filter, params)
	if err != nil {
		return nil, err
	}

	return &dto.AccountSearchResponse{
		Users:      accounts,
		TotalCount: total,
		Page:       params.Page,
		TotalPages: paging.TotalPages(total, params.Limit),
	}, nil
}
