package services

import (
	"context"
	"time"

	"github.com/anup/resultportal/internal/app/models"
	"github.com/anup/resultportal/internal/app/models/dto"
	"github.com/anup/resultportal/internal/pkg/apperrors"
	"github.com/anup/resultportal/internal/pkg/paging"
)

// studentStore is the slice of the student repository the service needs.
type studentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter *paging.Filter, params paging.Params) ([]models.Student, int64, error)
}

// StudentService handles student profile CRUD and filtered search.
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query dto.StudentSearchQuery, params paging.Params) (*dto.StudentSearchResponse, error)
}

type studentService struct {
	students studentStore
}

// NewStudentService creates a new student service.
func NewStudentService(students studentStore) StudentService {
	return &studentService{students: students}
}

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	dob, err := time.Parse(dobLayout, req.DOB)
	if err != nil {
		return nil, apperrors.NewValidationError("dob must be in YYYY-MM-DD format")
	}

	student := &models.Student{
		Name:     req.Name,
		Subject:  req.Subject,
		School:   req.School,
		DOB:      dob,
		MobileNo: req.MobileNo,
		Gender:   req.Gender,
	}

	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

func (s *studentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

func (s *studentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		student.Name = req.Name
	}
	if req.Subject != "" {
		student.Subject = req.Subject
	}
	if req.School != "" {
		student.School = req.School
	}
	if req.MobileNo != "" {
		student.MobileNo = req.MobileNo
	}
	if req.Gender != "" {
		student.Gender = req.Gender
	}
	if req.DOB != "" {
		dob, err := time.Parse(dobLayout, req.DOB)
		if err != nil {
			return nil, apperrors.NewValidationError("dob must be in YYYY-MM-DD format")
		}
		student.DOB = dob
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

func (s *studentService) Delete(ctx context.Context, id int64) error {
	return s.students.Delete(ctx, id)
}

func (s *studentService) Search(ctx context.Context, query dto.StudentSearchQuery, params paging.Params) (*dto.StudentSearchResponse, error) {
	params = params.Normalize()

	filter := paging.NewFilter().
		Contains("name", query.Name).
		Contains("subject", query.Subject).
		Contains("mobile_no", query.MobileNo)

	students, total, err := s.students.Search(ctx, filter, params)
	if err != nil {
		return nil, err
	}

	return &dto.StudentSearchResponse{
		Students:   students,
		TotalCount: total,
		Page:       params.Page,
		TotalPages: paging.TotalPages(total, params.Limit),
	}, nil
}
