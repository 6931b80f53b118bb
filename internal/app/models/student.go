package models

import "time"

// Student defines the student profile based on the 'students' table
type Student struct {
	ID                 int64      `json:"id" db:"id"`
	UserID             int64      `json:"userId" db:"user_id"`
	InstituteID        int64      `json:"instituteId" db:"institute_id"`
	CourseID           *int64     `json:"courseId,omitempty" db:"course_id"`
	BranchID           *int64     `json:"branchId,omitempty" db:"branch_id"`
	EnrollNumber       string     `json:"enrollNumber" db:"enroll_number"` // Unique across all institutes
	RegistrationNumber *string    `json:"registrationNumber,omitempty" db:"registration_number"`
	DateOfBirth        *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Gender             *string    `json:"gender,omitempty" db:"gender"`
	PhoneNumber        *string    `json:"phoneNumber,omitempty" db:"phone_number"`
	YearOfStudy        *int       `json:"yearOfStudy,omitempty" db:"year_of_study"`
	AdmissionYear      *int       `json:"admissionYear,omitempty" db:"admission_year"`
	AddressLine1       *string    `json:"addressLine1,omitempty" db:"address_line1"`
	AddressLine2       *string    `json:"addressLine2,omitempty" db:"address_line2"`
	City               *string    `json:"city,omitempty" db:"city"`
	State              *string    `json:"state,omitempty" db:"state"`
	Pincode            *string    `json:"pincode,omitempty" db:"pincode"`
	IsActiveStudent    bool       `json:"isActiveStudent" db:"is_active_student"`
	User               *User      `json:"user,omitempty"`
	Institute          *Institute `json:"institute,omitempty"`
	Course             *Course    `json:"course,omitempty"`
	Branch             *Branch    `json:"branch,omitempty"`
}
