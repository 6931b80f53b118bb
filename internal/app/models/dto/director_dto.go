package dto

import (
	"time"

	"github.com/arjun/hostelmate/internal/app/models"
)

// RegisterDirectorRequest creates an institute together with its founding
// director account in a single transaction
type RegisterDirectorRequest struct {
	// Director account
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`

	// Director profile
	Designation            string  `json:"designation" binding:"required"`
	ContactNumber          *string `json:"contactNumber,omitempty"`
	AlternateContactNumber *string `json:"alternateContactNumber,omitempty"`
	Address                string  `json:"address" binding:"required"`
	City                   string  `json:"city" binding:"required"`
	State                  string  `json:"state" binding:"required"`
	Pincode                string  `json:"pincode" binding:"required,pincode"`

	// The institute the director founds
	Institute CreateInstituteRequest `json:"institute" binding:"required"`
}

// DirectorResponse represents director profile information
type DirectorResponse struct {
	ID                     int64      `json:"id"`
	UserID                 int64      `json:"userId"`
	InstituteID            int64      `json:"instituteId"`
	Designation            string     `json:"designation"`
	ContactNumber          *string    `json:"contactNumber,omitempty"`
	AlternateContactNumber *string    `json:"alternateContactNumber,omitempty"`
	Address                string     `json:"address"`
	City                   string     `json:"city"`
	State                  string     `json:"state"`
	Pincode                string     `json:"pincode"`
	StartDate              time.Time  `json:"startDate"`
	EndDate                *time.Time `json:"endDate,omitempty"`
	IsActive               bool       `json:"isActive"`
	User                   *UserResponse      `json:"user,omitempty"`
	Institute              *InstituteResponse `json:"institute,omitempty"`
}

// FromDirector converts a models.Director to a DirectorResponse
func FromDirector(director *models.Director) DirectorResponse {
	if director == nil {
		return DirectorResponse{}
	}
	resp := DirectorResponse{
		ID:                     director.ID,
		UserID:                 director.UserID,
		InstituteID:            director.InstituteID,
		Designation:            director.Designation,
		ContactNumber:          director.ContactNumber,
		AlternateContactNumber: director.AlternateContactNumber,
		Address:                director.Address,
		City:                   director.City,
		State:                  director.State,
		Pincode:                director.Pincode,
		StartDate:              director.StartDate,
		EndDate:                director.EndDate,
		IsActive:               director.IsActive(),
	}
	if director.User != nil {
		user := FromUser(director.User)
		resp.User = &user
	}
	if director.Institute != nil {
		institute := FromInstitute(director.Institute)
		resp.Institute = &institute
	}
	return resp
}

// RegisterDirectorResponse bundles the created institute and director profile
type RegisterDirectorResponse struct {
	Institute InstituteResponse `json:"institute"`
	Director  DirectorResponse  `json:"director"`
	User      UserResponse      `json:"user"`
}

// FromUser converts a models.User to a UserResponse
func FromUser(user *models.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		RoleType:    string(user.RoleType),
		IsActive:    user.IsActive,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}
