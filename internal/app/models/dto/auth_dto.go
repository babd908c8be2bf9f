package dto

import "github.com/anup/resultportal/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	LoginID  string `json:"loginId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents successful authentication response
type LoginResponse struct {
	Message string          `json:"message"`
	User    *models.Account `json:"user"`
}
