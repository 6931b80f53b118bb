package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arjun/hostelmate/internal/app/models"
	"github.com/arjun/hostelmate/internal/app/models/dto"
	"github.com/arjun/hostelmate/internal/app/services"
	"github.com/arjun/hostelmate/internal/middleware"
)

// AuthController handles registration, login and account lifecycle
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// RegisterStudent handles student self-registration
// @Summary Register a student account
// @Description Creates an inactive student account and emails a verification code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentRequest true "Registration data"
// @Success 201 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email or enroll number already in use"
// @Router /auth/register [post]
func (c *AuthController) RegisterStudent(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.authService.RegisterStudent(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(
		dto.SuccessResponse{Message: "Registration successful, check your email for the verification code"},
		"Registration successful"))
}

// VerifyEmail activates an account with the emailed 6-digit code
// @Summary Verify email address
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyEmailRequest true "Email and verification code"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid or expired code"
// @Router /auth/verify-email [post]
func (c *AuthController) VerifyEmail(ctx *gin.Context) {
	var req dto.VerifyEmailRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.authService.VerifyEmail(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(
		dto.SuccessResponse{Message: "Email verified, you can now log in"},
		"Email verified"))
}

// ResendVerification sends a fresh verification code
// @Summary Resend the verification code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResendVerificationRequest true "Account email"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /auth/resend-verification [post]
func (c *AuthController) ResendVerification(ctx *gin.Context) {
	var req dto.ResendVerificationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.authService.ResendVerification(ctx, req.Email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(
		dto.SuccessResponse{Message: "Verification code sent"},
		"Verification code sent"))
}

// LoginStudent authenticates a student account
// @Summary Student login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 403 {object} dto.ErrorResponse "Account not activated"
// @Router /auth/login/student [post]
func (c *AuthController) LoginStudent(ctx *gin.Context) {
	c.login(ctx, models.RoleStudent)
}

// LoginAdmin authenticates staff accounts (manager, director, admin)
// @Summary Staff login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login/admin [post]
func (c *AuthController) LoginAdmin(ctx *gin.Context) {
	c.login(ctx, models.RoleManager, models.RoleDirector, models.RoleAdmin)
}

func (c *AuthController) login(ctx *gin.Context, allowedRoles ...models.RoleType) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.Login(ctx, &req, allowedRoles...)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Login successful"))
}

// RefreshToken rotates a refresh token into a new token pair
// @Summary Refresh the access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 401 {object} dto.ErrorResponse "Token invalid, expired or revoked"
// @Router /auth/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if !bindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Token refreshed"))
}

// Logout revokes the presented refresh token
// @Summary Log out
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.LogoutRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.LogoutRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.authService.Logout(ctx, req.RefreshToken); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(
		dto.SuccessResponse{Message: "Logged out"},
		"Logged out"))
}

// ChangePassword updates the caller's password and revokes their sessions
// @Summary Change password
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 401 {object} dto.ErrorResponse "Current password is wrong"
// @Router /auth/change-password [post]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.authService.ChangePassword(ctx, actor.UserID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(
		dto.SuccessResponse{Message: "Password changed"},
		"Password changed"))
}

// ForgotPassword sends a reset link. The response is the same whether or not
// the email exists.
// @Summary Request a password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /auth/forgot-password [post]
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.authService.ForgotPassword(ctx, req.Email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(
		dto.SuccessResponse{Message: "If the account exists, a reset link has been sent"},
		"Reset link sent"))
}

// ResetPassword sets a new password using a single-use reset token
// @Summary Reset password
// @Tags auth
// @Accept json
// @Produce json
// @Param uid path int true "User ID"
// @Param token path string true "Reset token"
// @Param request body dto.ResetPasswordRequest true "New password"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 401 {object} dto.ErrorResponse "Token invalid, expired or used"
// @Router /auth/reset-password/{uid}/{token} [post]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	uid, ok := parseIDParam(ctx, "uid")
	if !ok {
		return
	}
	token := ctx.Param("token")

	var req dto.ResetPasswordRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.authService.ResetPassword(ctx, uid, token, req.NewPassword); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(
		dto.SuccessResponse{Message: "Password reset, log in with your new password"},
		"Password reset"))
}

// GetProfile returns the caller's account and role profile
// @Summary Get own profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse}
// @Router /auth/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	profile, err := c.authService.GetProfile(ctx, actor.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(profile, "Profile retrieved"))
}
