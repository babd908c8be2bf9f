package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anup/resultportal/internal/app/models/dto"
	"github.com/anup/resultportal/internal/app/services"
	"github.com/anup/resultportal/internal/middleware"
	"github.com/anup/resultportal/internal/pkg/paging"
)

// StudentController handles student profile CRUD and search operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// Add creates a new student profile
// @Summary Add a student profile
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student fields"
// @Success 201 {object} dto.StudentCreatedResponse "Student created"
// @Failure 401 {object} dto.ErrorResponse "No valid session"
// @Router /student/addstudent [post]
func (c *StudentController) Add(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.StudentCreatedResponse{
		Student: student,
		Message: "Data added successfully",
	})
}

// Search returns student profiles matching the optional filters, paginated
// @Summary Search student profiles
// @Tags students
// @Produce json
// @Param name query string false "Name contains"
// @Param subject query string false "Subject contains"
// @Param mobileNo query string false "Mobile number contains"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.StudentSearchResponse "Matching students"
// @Router /student/searchstudent [get]
func (c *StudentController) Search(ctx *gin.Context) {
	query := dto.StudentSearchQuery{
		Name:     ctx.Query("name"),
		Subject:  ctx.Query("subject"),
		MobileNo: ctx.Query("mobileNo"),
	}
	params := paging.ParseParams(ctx)

	result, err := c.studentService.Search(ctx.Request.Context(), query, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GetByID retrieves a student profile by ID
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.Student "Student"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /student/getstudent/{id} [get]
func (c *StudentController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// Update applies partial field changes to a student profile
// @Summary Update a student profile
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Changed fields"
// @Success 200 {object} models.Student "Updated student"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /student/updatestudent/{id} [post]
func (c *StudentController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// Delete removes a student profile
// @Summary Delete a student profile
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.SuccessResponse "Student deleted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /student/deletestudent/{id} [post]
func (c *StudentController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.studentService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student deleted successfully"})
}
