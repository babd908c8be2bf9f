package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anup/resultportal/internal/app/models/dto"
	"github.com/anup/resultportal/internal/app/services"
	"github.com/anup/resultportal/internal/middleware"
)

// AuthController handles login and logout
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Authenticate handles credential login
// @Summary Authenticate with loginId and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse "Authentication successful"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /user/authenticate [post]
func (c *AuthController) Authenticate(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	sess, account, err := c.authService.Authenticate(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	maxAge := 0
	if !sess.ExpiresAt.IsZero() {
		maxAge = int(time.Until(sess.ExpiresAt).Seconds())
	}
	ctx.SetCookie(middleware.SessionCookieName, sess.Token, maxAge, "/", "", false, true)

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Authentication successful",
		User:    account,
	})
}

// Logout destroys the current session
// @Summary Log out of the current session
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SuccessResponse "Logout successful"
// @Failure 401 {object} dto.ErrorResponse "No valid session"
// @Router /user/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	token, ok := middleware.SessionTokenFromContext(ctx)
	if !ok {
		token = middleware.TokenFromRequest(ctx)
	}

	if err := c.authService.Logout(ctx.Request.Context(), token); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Logout successful"})
}
