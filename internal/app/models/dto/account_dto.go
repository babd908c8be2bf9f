package dto

import "github.com/anup/resultportal/internal/app/models"

// CreateAccountRequest represents the payload for signup and adduser.
// DOB travels as a YYYY-MM-DD string; services parse and validate it.
type CreateAccountRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	LoginID   string `json:"loginId" binding:"required"`
	Password  string `json:"password" binding:"required"`
	DOB       string `json:"dob" binding:"required"`
	Gender    string `json:"gender" binding:"required"`
	Role      string `json:"role"`
}

// UpdateAccountRequest represents partial account changes. Empty fields
// leave the stored value untouched.
type UpdateAccountRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	LoginID   string `json:"loginId"`
	Password  string `json:"password"`
	DOB       string `json:"dob"`
	Gender    string `json:"gender"`
	Role      string `json:"role"`
}

// AccountCreatedResponse mirrors the portal's add/signup reply shape.
type AccountCreatedResponse struct {
	User    *models.Account `json:"user"`
	Message string          `json:"message"`
}

// AccountSearchQuery holds the optional contains-filters for searchuser.
type AccountSearchQuery struct {
	FirstName string `form:"firstName"`
	LastName  string `form:"lastName"`
	LoginID   string `form:"loginId"`
}

// AccountSearchResponse is the paginated search envelope.
type AccountSearchResponse struct {
	Users      []models.Account `json:"users"`
	TotalCount int64            `json:"totalCount"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}
