package services

import (
	"context"
	"errors"
	"testing"

	"github.com/anup/resultportal/internal/app/models"
	"github.com/anup/resultportal/internal/app/models/dto"
	"github.com/anup/resultportal/internal/pkg/apperrors"
	"github.com/anup/resultportal/internal/pkg/paging"
)

type fakeMarksheetStore struct {
	nextID     int64
	marksheets map[int64]*models.Marksheet

	searchResults []models.Marksheet
	searchTotal   int64
	searchFilter  *paging.Filter
	searchParams  paging.Params

	meritList []models.Marksheet
}

func newFakeMarksheetStore() *fakeMarksheetStore {
	return &fakeMarksheetStore{nextID: 1, marksheets: make(map[int64]*models.Marksheet)}
}

func (f *fakeMarksheetStore) Create(_ context.Context, marksheet *models.Marksheet) error {
	marksheet.ID = f.nextID
	f.nextID++
	copied := *marksheet
	f.marksheets[marksheet.ID] = &copied
	return nil
}

func (f *fakeMarksheetStore) GetByID(_ context.Context, id int64) (*models.Marksheet, error) {
	marksheet, ok := f.marksheets[id]
	if !ok {
		return nil, apperrors.ErrMarksheetNotFound
	}
	copied := *marksheet
	return &copied, nil
}

func (f *fakeMarksheetStore) Update(_ context.Context, marksheet *models.Marksheet) error {
	if _, ok := f.marksheets[marksheet.ID]; !ok {
		return apperrors.ErrMarksheetNotFound
	}
	copied := *marksheet
	f.marksheets[marksheet.ID] = &copied
	return nil
}

func (f *fakeMarksheetStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.marksheets[id]; !ok {
		return apperrors.ErrMarksheetNotFound
	}
	delete(f.marksheets, id)
	return nil
}

func (f *fakeMarksheetStore) Search(_ context.Context, filter *paging.Filter, params paging.Params) ([]models.Marksheet, int64, error) {
	f.searchFilter = filter
	f.searchParams = params
	return f.searchResults, f.searchTotal, nil
}

func (f *fakeMarksheetStore) GetMeritList(_ context.Context) ([]models.Marksheet, error) {
	return f.meritList, nil
}

func scorePtr(v int) *int { return &v }

func TestMarksheetCreateValidScores(t *testing.T) {
	store := newFakeMarksheetStore()
	svc := NewMarksheetService(store)

	marksheet, err := svc.Create(context.Background(), &dto.CreateMarksheetRequest{
		Name:      "Ravi",
		RollNo:    "R-101",
		Physics:   scorePtr(80),
		Chemistry: scorePtr(75),
		Maths:     scorePtr(90),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if marksheet.ID == 0 {
		t.Fatalf("expected an assigned id")
	}

	total, ok := marksheet.Total()
	if !ok || total != 245 {
		t.Fatalf("unexpected total: %d, %v", total, ok)
	}
}

func TestMarksheetCreateScoreOutOfRange(t *testing.T) {
	svc := NewMarksheetService(newFakeMarksheetStore())

	for _, score := range []int{-1, 101, 500} {
		_, err := svc.Create(context.Background(), &dto.CreateMarksheetRequest{
			Name:      "Ravi",
			RollNo:    "R-101",
			Physics:   scorePtr(score),
			Chemistry: scorePtr(50),
			Maths:     scorePtr(50),
		})
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("score %d: expected validation error, got %v", score, err)
		}
	}
}

func TestMarksheetUpdateMergesScores(t *testing.T) {
	store := newFakeMarksheetStore()
	svc := NewMarksheetService(store)

	created, err := svc.Create(context.Background(), &dto.CreateMarksheetRequest{
		Name:      "Ravi",
		RollNo:    "R-101",
		Physics:   scorePtr(80),
		Chemistry: scorePtr(75),
		Maths:     scorePtr(90),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, &dto.UpdateMarksheetRequest{
		Physics: scorePtr(85),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if *updated.Physics != 85 {
		t.Fatalf("physics not updated: %d", *updated.Physics)
	}
	if *updated.Chemistry != 75 || *updated.Maths != 90 {
		t.Fatalf("untouched scores changed: %+v", updated)
	}
	if updated.Name != "Ravi" || updated.RollNo != "R-101" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestMarksheetUpdateNotFound(t *testing.T) {
	svc := NewMarksheetService(newFakeMarksheetStore())

	_, err := svc.Update(context.Background(), 99, &dto.UpdateMarksheetRequest{Name: "X"})
	if !errors.Is(err, apperrors.ErrMarksheetNotFound) {
		t.Fatalf("expected ErrMarksheetNotFound, got %v", err)
	}
}

func TestMarksheetSearchFilterColumns(t *testing.T) {
	store := newFakeMarksheetStore()
	store.searchTotal = 7
	svc := NewMarksheetService(store)

	resp, err := svc.Search(context.Background(), dto.MarksheetSearchQuery{RollNo: "R-1"}, paging.Params{Page: 2, Limit: 5})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if store.searchFilter.Empty() {
		t.Fatalf("expected a non-empty filter for rollNo query")
	}
	if resp.Page != 2 || resp.TotalPages != 2 {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestMarksheetTotalIncomplete(t *testing.T) {
	marksheet := models.Marksheet{Physics: scorePtr(80), Chemistry: scorePtr(75)}
	if _, ok := marksheet.Total(); ok {
		t.Fatalf("total should be unavailable with a missing score")
	}
}
