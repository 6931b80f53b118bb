package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/arjun/hostelmate/internal/app/models"
	"github.com/arjun/hostelmate/internal/app/models/dto"
	"github.com/arjun/hostelmate/internal/app/repositories"
	"github.com/arjun/hostelmate/internal/config"
	"github.com/arjun/hostelmate/internal/db"
	"github.com/arjun/hostelmate/internal/pkg/apperrors"
	"github.com/arjun/hostelmate/internal/pkg/auth"
	"github.com/arjun/hostelmate/internal/pkg/email"
	"github.com/arjun/hostelmate/internal/pkg/validation"
)

// AuthService handles registration, activation and authentication
type AuthService struct {
	userRepo      *repositories.UserRepository
	tokenRepo     *repositories.TokenRepository
	resetRepo     *repositories.PasswordResetTokenRepository
	instituteRepo *repositories.InstituteRepository
	courseRepo    *repositories.CourseRepository
	branchRepo    *repositories.BranchRepository
	database      *db.PostgresDB
	jwtService    *auth.JWTService
	emailService  email.EmailService
	cfg           *config.Config
	logger        zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	resetRepo *repositories.PasswordResetTokenRepository,
	instituteRepo *repositories.InstituteRepository,
	courseRepo *repositories.CourseRepository,
	branchRepo *repositories.BranchRepository,
	database *db.PostgresDB,
	jwtService *auth.JWTService,
	emailService email.EmailService,
	cfg *config.Config,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		tokenRepo:     tokenRepo,
		resetRepo:     resetRepo,
		instituteRepo: instituteRepo,
		courseRepo:    courseRepo,
		branchRepo:    branchRepo,
		database:      database,
		jwtService:    jwtService,
		emailService:  emailService,
		cfg:           cfg,
		logger:        logger,
	}
}

func (s *AuthService) validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return apperrors.NewBadRequestError("email cannot be empty")
	}
	if !validation.IsValidEmail(email) {
		return apperrors.ErrInvalidEmail
	}
	return nil
}

func (s *AuthService) validatePassword(password string) error {
	if !validation.CheckPasswordStrength(password) {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword,
			"password must be at least 8 characters and contain a letter and a digit")
	}
	return nil
}

// RegisterStudent registers a new student account. The user row starts
// inactive and a 6-digit verification code is mailed out. User and student
// profile are created in one transaction.
func (s *AuthService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) error {
	if err := s.validateEmail(req.Email); err != nil {
		return err
	}
	if err := s.validatePassword(req.Password); err != nil {
		return err
	}
	enrollNumber := strings.ToUpper(strings.TrimSpace(req.EnrollNumber))
	if !validation.IsValidEnrollNumber(enrollNumber) {
		return apperrors.NewBadRequestError("enroll number format is invalid")
	}
	if req.Pincode != nil && !validation.IsValidPincode(*req.Pincode) {
		return apperrors.NewBadRequestError("pincode must be 6 digits")
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return apperrors.ErrEmailAlreadyExists
	}

	exists, err = s.userRepo.EnrollNumberExists(ctx, enrollNumber)
	if err != nil {
		return fmt.Errorf("error checking if enroll number exists: %w", err)
	}
	if exists {
		return apperrors.ErrEnrollNumberAlreadyExists
	}

	if _, err := s.instituteRepo.GetByID(ctx, req.InstituteID); err != nil {
		return err
	}
	if req.CourseID != nil {
		course, err := s.courseRepo.GetByID(ctx, *req.CourseID)
		if err != nil {
			return err
		}
		if course.InstituteID != req.InstituteID {
			return apperrors.NewBadRequestError("course does not belong to the institute")
		}
		if req.BranchID != nil {
			branch, err := s.branchRepo.GetByID(ctx, *req.BranchID)
			if err != nil {
				return err
			}
			if branch.CourseID != course.ID {
				return apperrors.NewBadRequestError("branch does not belong to the course")
			}
		}
	} else if req.BranchID != nil {
		return apperrors.NewBadRequestError("branch requires a course")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	code, err := auth.GenerateNumericCode(s.cfg.Verification.CodeLength)
	if err != nil {
		return fmt.Errorf("error generating verification code: %w", err)
	}
	codeExpiry := time.Now().Add(s.cfg.VerificationCodeTTL())

	dateOfBirth, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return apperrors.NewBadRequestError("dateOfBirth must be YYYY-MM-DD")
	}

	user := &models.User{
		Email:                     strings.ToLower(strings.TrimSpace(req.Email)),
		Password:                  hashedPassword,
		FirstName:                 req.FirstName,
		LastName:                  req.LastName,
		RoleType:                  models.RoleStudent,
		IsActive:                  false,
		VerificationCode:          &code,
		VerificationCodeExpiresAt: &codeExpiry,
	}

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		userID, err := s.userRepo.CreateUserTx(ctx, tx, user)
		if err != nil {
			return err
		}
		user.ID = userID

		student := &models.Student{
			UserID:             userID,
			InstituteID:        req.InstituteID,
			CourseID:           req.CourseID,
			BranchID:           req.BranchID,
			EnrollNumber:       enrollNumber,
			RegistrationNumber: req.RegistrationNumber,
			DateOfBirth:        dateOfBirth,
			Gender:             req.Gender,
			PhoneNumber:        req.PhoneNumber,
			YearOfStudy:        req.YearOfStudy,
			AdmissionYear:      req.AdmissionYear,
			AddressLine1:       req.AddressLine1,
			AddressLine2:       req.AddressLine2,
			City:               req.City,
			State:              req.State,
			Pincode:            req.Pincode,
			IsActiveStudent:    true,
		}
		return s.userRepo.CreateStudentTx(ctx, tx, student)
	})
	if err != nil {
		return err
	}

	// Registration is committed at this point. A failed send surfaces as a
	// dependency failure and resend-verification recovers.
	if err := s.emailService.SendVerificationEmail(user.Email, user.FullName(), code); err != nil {
		s.logger.Error().Err(err).Str("email", user.Email).Msg("Verification email failed after registration")
		return err
	}

	return nil
}

// VerifyEmail activates an account with the emailed 6-digit code
func (s *AuthService) VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	if user.IsActive {
		return apperrors.ErrAlreadyActivated
	}

	if user.VerificationCode == nil || *user.VerificationCode != strings.TrimSpace(req.Code) {
		return apperrors.ErrInvalidVerificationCode
	}

	if user.VerificationCodeExpiresAt == nil || user.VerificationCodeExpiresAt.Before(time.Now()) {
		return apperrors.ErrVerificationCodeExpired
	}

	if err := s.userRepo.ActivateUser(ctx, user.ID); err != nil {
		return err
	}

	// Best effort, activation already succeeded
	if err := s.emailService.SendWelcomeEmail(user.Email, user.FullName()); err != nil {
		s.logger.Warn().Err(err).Str("email", user.Email).Msg("Welcome email failed")
	}

	s.logger.Info().Int64("userID", user.ID).Msg("Account activated")
	return nil
}

// ResendVerification issues a fresh verification code for an inactive account
func (s *AuthService) ResendVerification(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, emailAddr)
	if err != nil {
		return err
	}

	if user.IsActive {
		return apperrors.ErrAlreadyActivated
	}

	code, err := auth.GenerateNumericCode(s.cfg.Verification.CodeLength)
	if err != nil {
		return fmt.Errorf("error generating verification code: %w", err)
	}

	expiry := time.Now().Add(s.cfg.VerificationCodeTTL())
	if err := s.userRepo.SetVerificationCode(ctx, user.ID, code, expiry); err != nil {
		return err
	}

	return s.emailService.SendVerificationEmail(user.Email, user.FullName(), code)
}

// Login authenticates a user whose role is in allowedRoles. The student and
// staff login endpoints pass different role sets.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest, allowedRoles ...models.RoleType) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountNotActive
	}

	if len(allowedRoles) > 0 {
		permitted := false
		for _, role := range allowedRoles {
			if user.RoleType == role {
				permitted = true
				break
			}
		}
		if !permitted {
			return nil, apperrors.ErrPermissionDenied
		}
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login time")
	}

	token, err := s.generateTokenResponse(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: *token,
		User:  dto.FromUser(user),
	}, nil
}

// RefreshToken rotates a refresh token: the old one is revoked and a fresh
// pair is issued.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	userID, _, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountNotActive
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	return s.generateTokenResponse(ctx, user)
}

// Logout revokes a single refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.RevokeToken(ctx, refreshToken)
}

// ChangePassword replaces the password of an authenticated user and revokes
// every outstanding refresh token.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, req.CurrentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	if err := s.validatePassword(req.NewPassword); err != nil {
		return err
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return err
	}

	if err := s.tokenRepo.RevokeAllUserTokens(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to revoke tokens after password change")
	}

	return nil
}

// ForgotPassword starts the reset flow. The outcome is success-shaped whether
// or not the address is registered, so account existence never leaks.
func (s *AuthService) ForgotPassword(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Info().Str("email", emailAddr).Msg("Password reset requested for unknown email")
			return nil
		}
		return err
	}

	token := uuid.New().String()
	expiry := time.Now().Add(s.cfg.PasswordResetTokenTTL())

	if err := s.resetRepo.CreateToken(ctx, user.ID, token, expiry); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/api/v1/auth/reset-password/%d/%s",
		strings.TrimRight(s.cfg.Server.BaseURL, "/"), user.ID, token)

	if err := s.emailService.SendPasswordResetEmail(user.Email, user.FullName(), resetURL); err != nil {
		// Still success-shaped towards the caller
		s.logger.Error().Err(err).Str("email", user.Email).Msg("Password reset email failed")
	}

	return nil
}

// ResetPassword completes the reset flow. The token is single use and must
// belong to the user named in the URL.
func (s *AuthService) ResetPassword(ctx context.Context, uid int64, token, newPassword string) error {
	userID, expiry, used, err := s.resetRepo.GetTokenInfo(ctx, token)
	if err != nil {
		return err
	}

	if used || userID != uid {
		return apperrors.ErrTokenInvalid
	}

	if expiry.Before(time.Now()) {
		return apperrors.ErrTokenExpired
	}

	if err := s.validatePassword(newPassword); err != nil {
		return err
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return err
	}

	if err := s.resetRepo.MarkTokenAsUsed(ctx, token); err != nil {
		return err
	}

	if err := s.tokenRepo.RevokeAllUserTokens(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to revoke tokens after password reset")
	}

	s.logger.Info().Int64("userID", userID).Msg("Password reset completed")
	return nil
}

// GetProfile retrieves the user together with the role-specific profile row
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &dto.ProfileResponse{
		User: dto.FromUser(user),
	}

	switch user.RoleType {
	case models.RoleStudent:
		student, err := s.userRepo.GetStudentByUserID(ctx, userID)
		if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, err
		}
		if student != nil {
			resp := dto.FromStudent(student)
			profile.Student = resp
		}
	case models.RoleDirector:
		director, err := s.userRepo.GetDirectorByUserID(ctx, userID)
		if err != nil && !errors.Is(err, apperrors.ErrDirectorNotFound) {
			return nil, err
		}
		if director != nil {
			resp := dto.FromDirector(director)
			profile.Director = resp
		}
	case models.RoleManager:
		manager, err := s.userRepo.GetManagerByUserID(ctx, userID)
		if err != nil && !errors.Is(err, apperrors.ErrManagerNotFound) {
			return nil, err
		}
		if manager != nil {
			resp := dto.FromManager(manager)
			profile.Manager = resp
		}
	}

	return profile, nil
}

// generateTokenResponse issues an access token and persists a fresh refresh
// token for the user
func (s *AuthService) generateTokenResponse(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	expiry := s.jwtService.GetRefreshTokenExpiry()
	if err := s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, expiry); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:           accessToken,
		TokenType:             "Bearer",
		ExpiresIn:             int64(expiresIn),
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: int64(refreshExpiresIn),
	}, nil
}

// parseOptionalDate parses a YYYY-MM-DD string when present
func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
