package dto

import "github.com/anup/resultportal/internal/app/models"

// CreateMarksheetRequest represents the payload for addMarksheet.
// Scores are pointers so a missing mark is distinguishable from zero.
type CreateMarksheetRequest struct {
	Name      string `json:"name" binding:"required"`
	RollNo    string `json:"rollNo" binding:"required"`
	Physics   *int   `json:"physics" binding:"required"`
	Chemistry *int   `json:"chemistry" binding:"required"`
	Maths     *int   `json:"maths" binding:"required"`
}

// UpdateMarksheetRequest represents partial marksheet changes.
type UpdateMarksheetRequest struct {
	Name      string `json:"name"`
	RollNo    string `json:"rollNo"`
	Physics   *int   `json:"physics"`
	Chemistry *int   `json:"chemistry"`
	Maths     *int   `json:"maths"`
}

// MarksheetCreatedResponse mirrors the portal's addMarksheet reply shape.
type MarksheetCreatedResponse struct {
	Marksheet *models.Marksheet `json:"marksheet"`
	Message   string            `json:"message"`
}

// MarksheetSearchQuery holds the optional contains-filters for searchMarksheet.
type MarksheetSearchQuery struct {
	Name   string `form:"name"`
	RollNo string `form:"rollNo"`
}

// MarksheetSearchResponse is the paginated search envelope.
type MarksheetSearchResponse struct {
	Marksheets []models.Marksheet `json:"marksheets"`
	TotalCount int64              `json:"totalCount"`
	Page       int                `json:"page"`
	TotalPages int                `json:"totalPages"`
}
