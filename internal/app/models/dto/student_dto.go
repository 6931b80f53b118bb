package dto

import (
	"time"

	"github.com/arjun/hostelmate/internal/app/models"
)

// StudentResponse represents student profile information
type StudentResponse struct {
	ID                 int64      `json:"id"`
	UserID             int64      `json:"userId"`
	InstituteID        int64      `json:"instituteId"`
	CourseID           *int64     `json:"courseId,omitempty"`
	BranchID           *int64     `json:"branchId,omitempty"`
	EnrollNumber       string     `json:"enrollNumber"`
	RegistrationNumber *string    `json:"registrationNumber,omitempty"`
	DateOfBirth        *time.Time `json:"dateOfBirth,omitempty"`
	Gender             *string    `json:"gender,omitempty"`
	PhoneNumber        *string    `json:"phoneNumber,omitempty"`
	YearOfStudy        *int       `json:"yearOfStudy,omitempty"`
	AdmissionYear      *int       `json:"admissionYear,omitempty"`
	AddressLine1       *string    `json:"addressLine1,omitempty"`
	AddressLine2       *string    `json:"addressLine2,omitempty"`
	City               *string    `json:"city,omitempty"`
	State              *string    `json:"state,omitempty"`
	Pincode            *string    `json:"pincode,omitempty" binding:"omitempty,pincode"`
	IsActiveStudent    bool       `json:"isActiveStudent"`

	User      *UserResponse      `json:"user,omitempty"`
	Institute *InstituteResponse `json:"institute,omitempty"`
	Course    *CourseResponse    `json:"course,omitempty"`
	Branch    *BranchResponse    `json:"branch,omitempty"`
}

// FromStudent converts a models.Student to a StudentResponse
func FromStudent(student *models.Student) StudentResponse {
	if student == nil {
		return StudentResponse{}
	}
	resp := StudentResponse{
		ID:                 student.ID,
		UserID:             student.UserID,
		InstituteID:        student.InstituteID,
		CourseID:           student.CourseID,
		BranchID:           student.BranchID,
		EnrollNumber:       student.EnrollNumber,
		RegistrationNumber: student.RegistrationNumber,
		DateOfBirth:        student.DateOfBirth,
		Gender:             student.Gender,
		PhoneNumber:        student.PhoneNumber,
		YearOfStudy:        student.YearOfStudy,
		AdmissionYear:      student.AdmissionYear,
		AddressLine1:       student.AddressLine1,
		AddressLine2:       student.AddressLine2,
		City:               student.City,
		State:              student.State,
		Pincode:            student.Pincode,
		IsActiveStudent:    student.IsActiveStudent,
	}
	if student.User != nil {
		user := FromUser(student.User)
		resp.User = &user
	}
	if student.Institute != nil {
		institute := FromInstitute(student.Institute)
		resp.Institute = &institute
	}
	if student.Course != nil {
		course := FromCourse(student.Course)
		resp.Course = &course
	}
	if student.Branch != nil {
		branch := FromBranch(student.Branch)
		resp.Branch = &branch
	}
	return resp
}

// UpdateStudentProfileRequest represents a student profile update. Identity
// fields like enroll number and institute are fixed after registration.
type UpdateStudentProfileRequest struct {
	CourseID      *int64  `json:"courseId,omitempty"`
	BranchID      *int64  `json:"branchId,omitempty"`
	DateOfBirth   *string `json:"dateOfBirth,omitempty"` // YYYY-MM-DD
	Gender        *string `json:"gender,omitempty"`
	PhoneNumber   *string `json:"phoneNumber,omitempty"`
	YearOfStudy   *int    `json:"yearOfStudy,omitempty"`
	AdmissionYear *int    `json:"admissionYear,omitempty"`
	AddressLine1  *string `json:"addressLine1,omitempty"`
	AddressLine2  *string `json:"addressLine2,omitempty"`
	City          *string `json:"city,omitempty"`
	State         *string `json:"state,omitempty"`
	Pincode       *string `json:"pincode,omitempty" binding:"omitempty,pincode"`
}

// StudentListResponse represents a paginated list of students
type StudentListResponse struct {
	Students   []StudentResponse `json:"students"`
	Pagination PaginationInfo    `json:"pagination"`
}
