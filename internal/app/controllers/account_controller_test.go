package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/anup/resultportal/internal/app/models"
	"github.com/anup/resultportal/internal/app/models/dto"
	"github.com/anup/resultportal/internal/pkg/apperrors"
	"github.com/anup/resultportal/internal/pkg/paging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAccountService struct {
	registerAccount *models.Account
	registerErr     error

	getAccount *models.Account
	getErr     error

	updateAccount *models.Account
	updateErr     error

	deleteErr error

	searchResponse *dto.AccountSearchResponse
	searchQuery    dto.AccountSearchQuery
	searchParams   paging.Params
}

func (s *stubAccountService) Register(_ context.Context, _ *dto.CreateAccountRequest) (*models.Account, error) {
	return s.registerAccount, s.registerErr
}

func (s *stubAccountService) GetByID(_ context.Context, _ int64) (*models.Account, error) {
	return s.getAccount, s.getErr
}

func (s *stubAccountService) Update(_ context.Context, _ int64, _ *dto.UpdateAccountRequest) (*models.Account, error) {
	return s.updateAccount, s.updateErr
}

func (s *stubAccountService) Delete(_ context.Context, _ int64) error {
	return s.deleteErr
}

func (s *stubAccountService) Search(_ context.Context, query dto.AccountSearchQuery, params paging.Params) (*dto.AccountSearchResponse, error) {
	s.searchQuery = query
	s.searchParams = params
	return s.searchResponse, nil
}

func newAccountRouter(svc *stubAccountService) *gin.Engine {
	router := gin.New()
	controller := NewAccountController(svc)
	router.POST("/api/user/signup", controller.Signup)
	router.POST("/api/user/adduser", controller.Add)
	router.GET("/api/user/searchuser", controller.Search)
	router.GET("/api/user/getuser/:id", controller.GetByID)
	router.POST("/api/user/updateuser/:id", controller.Update)
	router.POST("/api/user/deleteuser/:id", controller.Delete)
	return router
}

func TestSignupCreated(t *testing.T) {
	svc := &stubAccountService{
		registerAccount: &models.Account{ID: 1, FirstName: "Ravi", LoginID: "ravi@gmail.com", Role: models.RoleStudent},
	}
	router := newAccountRouter(svc)

	body, _ := json.Marshal(map[string]string{
		"firstName": "Ravi",
		"lastName":  "Kumar",
		"loginId":   "ravi@gmail.com",
		"password":  "secret",
		"dob":       "2001-04-15",
		"gender":    "male",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.AccountCreatedResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Message != "Data added successfully" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.User == nil || resp.User.ID != 1 {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
}

func TestSignupMissingFields(t *testing.T) {
	router := newAccountRouter(&stubAccountService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user/signup", bytes.NewReader([]byte(`{"firstName":"Ravi"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAddDuplicateLoginID(t *testing.T) {
	svc := &stubAccountService{registerErr: apperrors.ErrLoginIDExists}
	router := newAccountRouter(svc)

	body, _ := json.Marshal(map[string]string{
		"firstName": "Ravi",
		"lastName":  "Kumar",
		"loginId":   "ravi@gmail.com",
		"password":  "secret",
		"dob":       "2001-04-15",
		"gender":    "male",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user/adduser", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error response: %v", err)
	}
	if resp.Error.Code != dto.ErrorCodeResourceAlreadyExists {
		t.Fatalf("expected code %s, got %s", dto.ErrorCodeResourceAlreadyExists, resp.Error.Code)
	}
}

func TestSearchUserEnvelope(t *testing.T) {
	svc := &stubAccountService{
		searchResponse: &dto.AccountSearchResponse{
			Users:      []models.Account{{ID: 1, FirstName: "Ravi"}},
			TotalCount: 12,
			Page:       2,
			TotalPages: 3,
		},
	}
	router := newAccountRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/user/searchuser?firstName=ra&page=2&limit=5", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if svc.searchQuery.FirstName != "ra" {
		t.Fatalf("filter not forwarded: %+v", svc.searchQuery)
	}
	if svc.searchParams.Page != 2 || svc.searchParams.Limit != 5 {
		t.Fatalf("paging not forwarded: %+v", svc.searchParams)
	}

	var resp dto.AccountSearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.TotalCount != 12 || resp.Page != 2 || resp.TotalPages != 3 {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	if len(resp.Users) != 1 || resp.Users[0].FirstName != "Ravi" {
		t.Fatalf("unexpected users: %+v", resp.Users)
	}
}

func TestGetUserNotFound(t *testing.T) {
	svc := &stubAccountService{getErr: apperrors.ErrAccountNotFound}
	router := newAccountRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/user/getuser/42", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetUserInvalidID(t *testing.T) {
	router := newAccountRouter(&stubAccountService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/user/getuser/abc", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUpdateUserReturnsAccount(t *testing.T) {
	svc := &stubAccountService{
		updateAccount: &models.Account{ID: 7, FirstName: "Ravindra"},
	}
	router := newAccountRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user/updateuser/7", bytes.NewReader([]byte(`{"firstName":"Ravindra"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var account models.Account
	if err := json.Unmarshal(w.Body.Bytes(), &account); err != nil {
		t.Fatalf("unmarshal account: %v", err)
	}
	if account.ID != 7 || account.FirstName != "Ravindra" {
		t.Fatalf("unexpected account: %+v", account)
	}
}

func TestDeleteUserMessage(t *testing.T) {
	router := newAccountRouter(&stubAccountService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user/deleteuser/7", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp dto.SuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Message != "User deleted successfully" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestDeleteUserNotFound(t *testing.T) {
	svc := &stubAccountService{deleteErr: apperrors.ErrAccountNotFound}
	router := newAccountRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user/deleteuser/99", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
