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
	"github.com/anup/resultportal/internal/pkg/logger"
	"github.com/anup/resultportal/internal/pkg/paging"
)

// MarksheetRepository handles database operations for marksheets
type MarksheetRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMarksheetRepository creates a new marksheet repository
func NewMarksheetRepository(db *pgxpool.Pool) *MarksheetRepository {
	return &MarksheetRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new marksheet. The store assigns the identity.
func (r *MarksheetRepository) Create(ctx context.Context, marksheet *models.Marksheet) error {
	query := `
		INSERT INTO marksheets (name, roll_no, physics, chemistry, maths)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		marksheet.Name, marksheet.RollNo,
		marksheet.Physics, marksheet.Chemistry, marksheet.Maths,
	).Scan(&marksheet.ID)
	if err != nil {
		return fmt.Errorf("error creating marksheet: %w", err)
	}

	return nil
}

// GetByID retrieves a marksheet by ID
func (r *MarksheetRepository) GetByID(ctx context.Context, id int64) (*models.Marksheet, error) {
	query := `
		SELECT id, name, roll_no, physics, chemistry, maths
		FROM marksheets
		WHERE id = $1
	`

	var marksheet models.Marksheet
	err := r.db.QueryRow(ctx, query, id).Scan(
		&marksheet.ID,
		&marksheet.Name,
		&marksheet.RollNo,
		&marksheet.Physics,
		&marksheet.Chemistry,
		&marksheet.Maths,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMarksheetNotFound
		}
		return nil, fmt.Errorf("error retrieving marksheet: %w", err)
	}

	return &marksheet, nil
}

// Update applies the full field set of marksheet to the row at marksheet.ID.
func (r *MarksheetRepository) Update(ctx context.Context, marksheet *models.Marksheet) error {
	query := `
		UPDATE marksheets
		SET name = $1, roll_no = $2, physics = $3, chemistry = $4, maths = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		marksheet.Name, marksheet.RollNo,
		marksheet.Physics, marksheet.Chemistry, marksheet.Maths, marksheet.ID)
	if err != nil {
		return fmt.Errorf("error updating marksheet: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMarksheetNotFound
	}

	return nil
}

// Delete deletes a marksheet by ID
func (r *MarksheetRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM marksheets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting marksheet: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMarksheetNotFound
	}

	return nil
}

// Search retrieves marksheets matching filter, paginated, with the total
// match count. Count and fetch share one condition set.
func (r *MarksheetRepository) Search(ctx context.Context, filter *paging.Filter, params paging.Params) ([]models.Marksheet, int64, error) {
	conds := filter.Conditions()

	countSql, countArgs, err := r.sb.Select("COUNT(*)").
		From("marksheets").
		Where(conds).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count marksheets query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing count marksheets query")
		return nil, 0, fmt.Errorf("failed to count marksheets: %w", err)
	}

	if totalItems == 0 {
		return []models.Marksheet{}, 0, nil
	}

	querySql, queryArgs, err := r.sb.Select(
		"id", "name", "roll_no", "physics", "chemistry", "maths").
		From("marksheets").
		Where(conds).
		OrderBy("id ASC").
		Limit(uint64(params.Limit)).
		Offset(params.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build search marksheets query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing search marksheets query")
		return nil, 0, fmt.Errorf("failed to query marksheets: %w", err)
	}
	defer rows.Close()

	marksheets, err := scanMarksheets(rows)
	if err != nil {
		return nil, 0, err
	}

	return marksheets, totalItems, nil
}

// GetMeritList returns marksheets with all three scores recorded,
// ranked by total score descending.
func (r *MarksheetRepository) GetMeritList(ctx context.Context) ([]models.Marksheet, error) {
	query := `
		SELECT id, name, roll_no, physics, chemistry, maths
		FROM marksheets
		WHERE physics IS NOT NULL AND chemistry IS NOT NULL AND maths IS NOT NULL
		ORDER BY physics + chemistry + maths DESC, id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing merit list query")
		return nil, fmt.Errorf("failed to query merit list: %w", err)
	}
	defer rows.Close()

	return scanMarksheets(rows)
}

func scanMarksheets(rows pgx.Rows) ([]models.Marksheet, error) {
	var marksheets []models.Marksheet
	for rows.Next() {
		var marksheet models.Marksheet
		if err := rows.Scan(
			&marksheet.ID,
			&marksheet.Name,
			&marksheet.RollNo,
			&marksheet.Physics,
			&marksheet.Chemistry,
			&marksheet.Maths,
		); err != nil {
			return nil, fmt.Errorf("failed to scan marksheet row: %w", err)
		}
		marksheets = append(marksheets, marksheet)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if marksheets == nil {
		marksheets = []models.Marksheet{}
	}

	return marksheets, nil
}
