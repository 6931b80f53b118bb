package models

import (
	"time"
)

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent  RoleType = "STUDENT"
	RoleManager  RoleType = "MANAGER"
	RoleDirector RoleType = "DIRECTOR"
	RoleAdmin    RoleType = "ADMIN"
)

// Valid reports whether the role is one of the known role types.
func (r RoleType) Valid() bool {
	switch r {
	case RoleStudent, RoleManager, RoleDirector, RoleAdmin:
		return true
	}
	return false
}

// IsStaff reports whether the role may review applications and manage inventory.
func (r RoleType) IsStaff() bool {
	return r == RoleManager || r == RoleDirector || r == RoleAdmin
}

// User defines the user model based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`                        // Unique identifier for the user
	Email       string     `json:"email" db:"email" example:"user@institute.edu"` // User's email address
	Password    string     `json:"-" db:"password"`                               // User's hashed password (excluded from JSON)
	FirstName   string     `json:"firstName" db:"first_name" example:"John"`
	LastName    string     `json:"lastName" db:"last_name" example:"Doe"`
	RoleType    RoleType   `json:"roleType" db:"role_type" example:"STUDENT"`
	IsActive    bool       `json:"isActive" db:"is_active" example:"true"` // False until the email verification code is confirmed
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`

	// 6-digit verification code, cleared on activation
	VerificationCode          *string    `json:"-" db:"verification_code"`
	VerificationCodeExpiresAt *time.Time `json:"-" db:"verification_code_expires_at"`
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
