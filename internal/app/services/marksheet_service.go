package services

import (
	"context"

	"github.com/anup/resultportal/internal/app/models"
	"github.com/anup/resultportal/internal/app/models/dto"
	"github.com/anup/resultportal/internal/pkg/apperrors"
	"github.com/anup/resultportal/internal/pkg/paging"
)

const maxScore = 100

// marksheetStore is the slice of the marksheet repository the service needs.
type marksheetStore interface {
	Create(ctx context.Context, marksheet *models.Marksheet) error
	GetByID(ctx context.Context, id int64) (*models.Marksheet, error)
	Update(ctx context.Context, marksheet *models.Marksheet) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter *paging.Filter, params paging.Params) ([]models.Marksheet, int64, error)
	GetMeritList(ctx context.Context) ([]models.Marksheet, error)
}

// MarksheetService handles marksheet CRUD, filtered search, and the
// merit list projection.
type MarksheetService interface {
	Create(ctx context.Context, req *dto.CreateMarksheetRequest) (*models.Marksheet, error)
	GetByID(ctx context.Context, id int64) (*models.Marksheet, error)
	Update(ctx context.Context, id int64, req *dto.UpdateMarksheetRequest) (*models.Marksheet, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query dto.MarksheetSearchQuery, params paging.Params) (*dto.MarksheetSearchResponse, error)
	GetMeritList(ctx context.Context) ([]models.Marksheet, error)
}

type marksheetService struct {
	marksheets marksheetStore
}

// NewMarksheetService creates a new marksheet service.
func NewMarksheetService(marksheets marksheetStore) MarksheetService {
	return &marksheetService{marksheets: marksheets}
}

func validScore(score *int) bool {
	return score == nil || (*score >= 0 && *score <= maxScore)
}

func (s *marksheetService) Create(ctx context.Context, req *dto.CreateMarksheetRequest) (*models.Marksheet, error) {
	if !validScore(req.Physics) || !validScore(req.Chemistry) || !validScore(req.Maths) {
		return nil, apperrors.NewValidationError("scores must be between 0 and 100")
	}

	marksheet := &models.Marksheet{
		Name:      req.Name,
		RollNo:    req.RollNo,
		Physics:   req.Physics,
		Chemistry: req.Chemistry,
		Maths:     req.Maths,
	}

	if err := s.marksheets.Create(ctx, marksheet); err != nil {
		return nil, err
	}

	return marksheet, nil
}

func (s *marksheetService) GetByID(ctx context.Context, id int64) (*models.Marksheet, error) {
	return s.marksheets.GetByID(ctx, id)
}

func (s *marksheetService) Update(ctx context.Context, id int64, req *dto.UpdateMarksheetRequest) (*models.Marksheet, error) {
	marksheet, err := s.marksheets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !validScore(req.Physics) || !validScore(req.Chemistry) || !validScore(req.Maths) {
		return nil, apperrors.NewValidationError("scores must be between 0 and 100")
	}

	if req.Name != "" {
		marksheet.Name = req.Name
	}
	if req.RollNo != "" {
		marksheet.RollNo = req.RollNo
	}
	if req.Physics != nil {
		marksheet.Physics = req.Physics
	}
	if req.Chemistry != nil {
		marksheet.Chemistry = req.Chemistry
	}
	if req.Maths != nil {
		marksheet.Maths = req.Maths
	}

	if err := s.marksheets.Update(ctx, marksheet); err != nil {
		return nil, err
	}

	return marksheet, nil
}

func (s *marksheetService) Delete(ctx context.Context, id int64) error {
	return s.marksheets.Delete(ctx, id)
}

func (s *marksheetService) Search(ctx context.Context, query dto.MarksheetSearchQuery, params paging.Params) (*dto.MarksheetSearchResponse, error) {
	params = params.Normalize()

	filter := paging.NewFilter().
		Contains("name", query.Name).
		Contains("roll_no", query.RollNo)

	marksheets, total, err := s.marksheets.Search(ctx, filter, params)
	if err != nil {
		return nil, err
	}

	return &dto.MarksheetSearchResponse{
		Marksheets: marksheets,
		TotalCount: total,
		Page:       params.Page,
		TotalPages: paging.TotalPages(total, params.Limit),
	}, nil
}

func (s *marksheetService) GetMeritList(ctx context.Context) ([]models.Marksheet, error) {
	return s.marksheets.GetMeritList(ctx)
}
