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

// StudentRepository handles database operations for student profiles
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new student profile. The store assigns the identity.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, subject, school, dob, mobile_no, gender)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.Name, student.Subject, student.School,
		student.DOB, student.MobileNo, student.Gender,
	).Scan(&student.ID)
	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student profile by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, name, subject, school, dob, mobile_no, gender
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
		&student.Subject,
		&student.School,
		&student.DOB,
		&student.MobileNo,
		&student.Gender,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// Update applies the full field set of student to the row at student.ID.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, subject = $2, school = $3, dob = $4, mobile_no = $5, gender = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.Name, student.Subject, student.School,
		student.DOB, student.MobileNo, student.Gender, student.ID)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student profile by ID
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Search retrieves student profiles matching filter, paginated, with the
// total match count. Count and fetch share one condition set.
func (r *StudentRepository) Search(ctx context.Context, filter *paging.Filter, params paging.Params) ([]models.Student, int64, error) {
	conds := filter.Conditions()

	countSql, countArgs, err := r.sb.Select("COUNT(*)").
		From("students").
		Where(conds).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing count students query")
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	if totalItems == 0 {
		return []models.Student{}, 0, nil
	}

	querySql, queryArgs, err := r.sb.Select(
		"id", "name", "subject", "school", "dob", "mobile_no", "gender").
		From("students").
		Where(conds).
		OrderBy("id ASC").
		Limit(uint64(params.Limit)).
		Offset(params.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build search students query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing search students query")
		return nil, 0, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Subject,
			&student.School,
			&student.DOB,
			&student.MobileNo,
			&student.Gender,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if students == nil {
		students = []models.Student{}
	}

	return students, totalItems, nil
}
