package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anup/resultportal/internal/app/models"
	"github.com/anup/resultportal/internal/pkg/apperrors"
	"github.com/anup/resultportal/internal/pkg/dberrors"
	"github.com/anup/resultportal/internal/pkg/logger"
	"github.com/anup/resultportal/internal/pkg/paging"
)

const accountLoginIDConstraint = "accounts_login_id_key"

// AccountRepository handles database operations for accounts
type AccountRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new account. The store assigns the identity.
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (first_name, last_name, login_id, password, dob, gender, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		account.FirstName, account.LastName, account.LoginID,
		account.Password, account.DOB, account.Gender, account.Role,
	).Scan(&account.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err, accountLoginIDConstraint) {
			return apperrors.ErrLoginIDExists
		}
		return fmt.Errorf("error creating account: %w", err)
	}

	return nil
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	query := `
		SELECT id, first_name, last_name, login_id, password, dob, gender, role
		FROM accounts
		WHERE id = $1
	`

	var account models.Account
	err := r.db.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.FirstName,
		&account.LastName,
		&account.LoginID,
		&account.Password,
		&account.DOB,
		&account.Gender,
		&account.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving account: %w", err)
	}

	return &account, nil
}

// GetByLoginID retrieves an account by its login identifier
func (r *AccountRepository) GetByLoginID(ctx context.Context, loginID string) (*models.Account, error) {
	query := `
		SELECT id, first_name, last_name, login_id, password, dob, gender, role
		FROM accounts
		WHERE login_id = $1
	`

	var account models.Account
	err := r.db.QueryRow(ctx, query, loginID).Scan(
		&account.ID,
		&account.FirstName,
		&account.LastName,
		&account.LoginID,
		&account.Password,
		&account.DOB,
		&account.Gender,
		&account.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving account by login id: %w", err)
	}

	return &account, nil
}

// Update applies the full field set of account to the row at account.ID.
func (r *AccountRepository) Update(ctx context.Context, account *models.Account) error {
	query := `
		UPDATE accounts
		SET first_name = $1, last_name = $2, login_id = $3, password = $4,
		    dob = $5, gender = $6, role = $7
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		account.FirstName, account.LastName, account.LoginID, account.Password,
		account.DOB, account.Gender, account.Role, account.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err, accountLoginIDConstraint) {
			return apperrors.ErrLoginIDExists
		}
		return fmt.Errorf("error updating account: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}

	return nil
}

// Delete deletes an account by ID
func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting account: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}

	return nil
}

// Search retrieves accounts matching filter, paginated, together with
// the total match count. Count and fetch share the same condition set
// so the reported total stays consistent with the returned page.
func (r *AccountRepository) Search(ctx context.Context, filter *paging.Filter, params paging.Params) ([]models.Account, int64, error) {
	conds := filter.Conditions()

	countSql, countArgs, err := r.sb.Select("COUNT(*)").
		From("accounts").
		Where(conds).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count accounts query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing count accounts query")
		return nil, 0, fmt.Errorf("failed to count accounts: %w", err)
	}

	if totalItems == 0 {
		return []models.Account{}, 0, nil
	}

	querySql, queryArgs, err := r.sb.Select(
		"id", "first_name", "last_name", "login_id", "password", "dob", "gender", "role").
		From("accounts").
		Where(conds).
		OrderBy("id ASC").
		Limit(uint64(params.Limit)).
		Offset(params.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build search accounts query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing search accounts query")
		return nil, 0, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var account models.Account
		if err := rows.Scan(
			&account.ID,
			&account.FirstName,
			&account.LastName,
			&account.LoginID,
			&account.Password,
			&account.DOB,
			&account.Gender,
			&account.Role,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if accounts == nil {
		accounts = []models.Account{}
	}

	return accounts, totalItems, nil
}
