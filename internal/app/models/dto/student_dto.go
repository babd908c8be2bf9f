package dto

import "github.com/anup/resultportal/internal/app/models"

// CreateStudentRequest represents the payload for addstudent.
type CreateStudentRequest struct {
	Name     string `json:"name" binding:"required"`
	Subject  string `json:"subject" binding:"required"`
	School   string `json:"school" binding:"required"`
	DOB      string `json:"dob" binding:"required"`
	MobileNo string `json:"mobileNo" binding:"required"`
	Gender   string `json:"gender" binding:"required"`
}

// UpdateStudentRequest represents partial student profile changes.
type UpdateStudentRequest struct {
	Name     string `json:"name"`
	Subject  string `json:"subject"`
	School   string `json:"school"`
	DOB      string `json:"dob"`
	MobileNo string `json:"mobileNo"`
	Gender   string `json:"gender"`
}

// StudentCreatedResponse mirrors the portal's addstudent reply shape.
type StudentCreatedResponse struct {
	Student *models.Student `json:"student"`
	Message string          `json:"message"`
}

// StudentSearchQuery holds the optional contains-filters for searchstudent.
type StudentSearchQuery struct {
	Name     string `form:"name"`
	Subject  string `form:"subject"`
	MobileNo string `form:"mobileNo"`
}

// StudentSearchResponse is the paginated search envelope.
type StudentSearchResponse struct {
	Students   []models.Student `json:"students"`
	TotalCount int64            `json:"totalCount"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}
