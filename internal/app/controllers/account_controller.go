package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anup/resultportal/internal/app/models/dto"
	"github.com/anup/resultportal/internal/app/services"
	"github.com/anup/resultportal/internal/middleware"
	"github.com/anup/resultportal/internal/pkg/paging"
)

// AccountController handles account CRUD and search operations
type AccountController struct {
	accountService services.AccountService
}

// NewAccountController creates a new AccountController
func NewAccountController(accountService services.AccountService) *AccountController {
	return &AccountController{accountService: accountService}
}

// parseIDParam reads the :id path parameter as an int64, writing a 400
// envelope when it is not a number.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid id")
		errorDetail = errorDetail.WithDetails("id must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// Signup handles public self-registration
// @Summary Register a new account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account fields"
// @Success 201 {object} dto.AccountCreatedResponse "Account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid account data"
// @Failure 409 {object} dto.ErrorResponse "Login id already exists"
// @Router /user/signup [post]
func (c *AccountController) Signup(ctx *gin.Context) {
	c.create(ctx)
}

// Add handles operator-driven account creation
// @Summary Add an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account fields"
// @Success 201 {object} dto.AccountCreatedResponse "Account created"
// @Failure 401 {object} dto.ErrorResponse "No valid session"
// @Failure 409 {object} dto.ErrorResponse "Login id already exists"
// @Router /user/adduser [post]
func (c *AccountController) Add(ctx *gin.Context) {
	c.create(ctx)
}

func (c *AccountController) create(ctx *gin.Context) {
	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid account data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	account, err := c.accountService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AccountCreatedResponse{
		User:    account,
		Message: "Data added successfully",
	})
}

// Search returns accounts matching the optional filters, paginated
// @Summary Search accounts
// @Tags accounts
// @Produce json
// @Param firstName query string false "First name contains"
// @Param lastName query string false "Last name contains"
// @Param loginId query string false "Login id contains"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.AccountSearchResponse "Matching accounts"
// @Failure 401 {object} dto.ErrorResponse "No valid session"
// @Router /user/searchuser [get]
func (c *AccountController) Search(ctx *gin.Context) {
	query := dto.AccountSearchQuery{
		FirstName: ctx.Query("firstName"),
		LastName:  ctx.Query("lastName"),
		LoginID:   ctx.Query("loginId"),
	}
	params := paging.ParseParams(ctx)

	result, err := c.accountService.Search(ctx.Request.Context(), query, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GetByID retrieves an account by ID
// @Summary Get account by ID
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} models.Account "Account"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /user/getuser/{id} [get]
func (c *AccountController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	account, err := c.accountService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, account)
}

// Update applies partial field changes to an account
// @Summary Update an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body dto.UpdateAccountRequest true "Changed fields"
// @Success 200 {object} models.Account "Updated account"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /user/updateuser/{id} [post]
func (c *AccountController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid account data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	account, err := c.accountService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, account)
}

// Delete removes an account and revokes its sessions
// @Summary Delete an account
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} dto.SuccessResponse "Account deleted"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /user/deleteuser/{id} [post]
func (c *AccountController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.accountService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "User deleted successfully"})
}
