package dto

import "time"

// RegisterStudentRequest represents a student self-registration request.
// The account starts inactive until the emailed code is verified.
type RegisterStudentRequest struct {
	Email              string  `json:"email" binding:"required,email"`
	Password           string  `json:"password" binding:"required,min=8"`
	FirstName          string  `json:"firstName" binding:"required"`
	LastName           string  `json:"lastName" binding:"required"`
	InstituteID        int64   `json:"instituteId" binding:"required,min=1"`
	CourseID           *int64  `json:"courseId,omitempty"`
	BranchID           *int64  `json:"branchId,omitempty"`
	EnrollNumber       string  `json:"enrollNumber" binding:"required,enrollnumber"`
	RegistrationNumber *string `json:"registrationNumber,omitempty"`
	DateOfBirth        *string `json:"dateOfBirth,omitempty"` // YYYY-MM-DD
	Gender             *string `json:"gender,omitempty"`
	PhoneNumber        *string `json:"phoneNumber,omitempty"`
	YearOfStudy        *int    `json:"yearOfStudy,omitempty"`
	AdmissionYear      *int    `json:"admissionYear,omitempty"`
	AddressLine1       *string `json:"addressLine1,omitempty"`
	AddressLine2       *string `json:"addressLine2,omitempty"`
	City               *string `json:"city,omitempty"`
	State              *string `json:"state,omitempty"`
	Pincode            *string `json:"pincode,omitempty" binding:"omitempty,pincode"`
}

// VerifyEmailRequest represents an email verification attempt
type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// ResendVerificationRequest asks for a fresh verification code
type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int64  `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int64  `json:"refreshTokenExpiresIn,omitempty"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest revokes a single refresh token
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ChangePasswordRequest represents an authenticated password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// ForgotPasswordRequest starts the password reset flow. The response is
// success-shaped whether or not the email is registered.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest completes the password reset flow
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// UserResponse represents basic user information
type UserResponse struct {
	ID          int64      `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	RoleType    string     `json:"roleType" example:"STUDENT" enums:"STUDENT,MANAGER,DIRECTOR,ADMIN"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// ProfileResponse represents the authenticated user's profile together with
// the role-specific record attached to it
type ProfileResponse struct {
	User     UserResponse `json:"user"`
	Student  interface{}  `json:"student,omitempty"`
	Director interface{}  `json:"director,omitempty"`
	Manager  interface{}  `json:"manager,omitempty"`
}
