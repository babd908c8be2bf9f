package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anup/resultportal/internal/app/models/dto"
	"github.com/anup/resultportal/internal/app/services"
	"github.com/anup/resultportal/internal/middleware"
	"github.com/anup/resultportal/internal/pkg/paging"
)

// MarksheetController handles marksheet CRUD, search, and the merit list
type MarksheetController struct {
	marksheetService services.MarksheetService
}

// NewMarksheetController creates a new MarksheetController
func NewMarksheetController(marksheetService services.MarksheetService) *MarksheetController {
	return &MarksheetController{marksheetService: marksheetService}
}

// Add creates a new marksheet
// @Summary Add a marksheet
// @Tags marksheets
// @Accept json
// @Produce json
// @Param request body dto.CreateMarksheetRequest true "Marksheet fields"
// @Success 201 {object} dto.MarksheetCreatedResponse "Marksheet created"
// @Failure 400 {object} dto.ErrorResponse "Invalid marksheet data"
// @Router /marksheet/addMarksheet [post]
func (c *MarksheetController) Add(ctx *gin.Context) {
	var req dto.CreateMarksheetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid marksheet data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	marksheet, err := c.marksheetService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MarksheetCreatedResponse{
		Marksheet: marksheet,
		Message:   "Data added successfully",
	})
}

// Search returns marksheets matching the optional filters, paginated
// @Summary Search marksheets
// @Tags marksheets
// @Produce json
// @Param name query string false "Name contains"
// @Param rollNo query string false "Roll number contains"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.MarksheetSearchResponse "Matching marksheets"
// @Router /marksheet/searchMarksheet [get]
func (c *MarksheetController) Search(ctx *gin.Context) {
	query := dto.MarksheetSearchQuery{
		Name:   ctx.Query("name"),
		RollNo: ctx.Query("rollNo"),
	}
	params := paging.ParseParams(ctx)

	result, err := c.marksheetService.Search(ctx.Request.Context(), query, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GetByID retrieves a marksheet by ID
// @Summary Get marksheet by ID
// @Tags marksheets
// @Produce json
// @Param id path int true "Marksheet ID"
// @Success 200 {object} models.Marksheet "Marksheet"
// @Failure 404 {object} dto.ErrorResponse "Marksheet not found"
// @Router /marksheet/getMarksheet/{id} [get]
func (c *MarksheetController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	marksheet, err := c.marksheetService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, marksheet)
}

// Update applies partial field changes to a marksheet
// @Summary Update a marksheet
// @Tags marksheets
// @Accept json
// @Produce json
// @Param id path int true "Marksheet ID"
// @Param request body dto.UpdateMarksheetRequest true "Changed fields"
// @Success 200 {object} models.Marksheet "Updated marksheet"
// @Failure 404 {object} dto.ErrorResponse "Marksheet not found"
// @Router /marksheet/updateMarksheet/{id} [post]
func (c *MarksheetController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateMarksheetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid marksheet data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	marksheet, err := c.marksheetService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, marksheet)
}

// Delete removes a marksheet
// @Summary Delete a marksheet
// @Tags marksheets
// @Produce json
// @Param id path int true "Marksheet ID"
// @Success 200 {object} dto.SuccessResponse "Marksheet deleted"
// @Failure 404 {object} dto.ErrorResponse "Marksheet not found"
// @Router /marksheet/deleteMarksheet/{id} [post]
func (c *MarksheetController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.marksheetService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Marksheet deleted successfully"})
}

// GetMeritList returns the ranked projection over complete marksheets
// @Summary Get the merit list
// @Tags marksheets
// @Produce json
// @Success 200 {array} models.Marksheet "Ranked marksheets"
// @Router /marksheet/getMeritList [get]
func (c *MarksheetController) GetMeritList(ctx *gin.Context) {
	marksheets, err := c.marksheetService.GetMeritList(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, marksheets)
}
