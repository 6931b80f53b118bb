package dto

import "github.com/arjun/hostelmate/internal/app/models"

// CreateInstituteRequest represents institute creation data
type CreateInstituteRequest struct {
	Name          string  `json:"name" binding:"required"`
	Address       string  `json:"address" binding:"required"`
	City          string  `json:"city" binding:"required"`
	State         string  `json:"state" binding:"required"`
	Pincode       string  `json:"pincode" binding:"required,pincode"`
	ContactEmail  *string `json:"contactEmail,omitempty" binding:"omitempty,email"`
	ContactNumber *string `json:"contactNumber,omitempty"`
	Website       *string `json:"website,omitempty"`
}

// UpdateInstituteRequest represents institute update data
type UpdateInstituteRequest struct {
	Name          string  `json:"name" binding:"required"`
	Address       string  `json:"address" binding:"required"`
	City          string  `json:"city" binding:"required"`
	State         string  `json:"state" binding:"required"`
	Pincode       string  `json:"pincode" binding:"required,pincode"`
	ContactEmail  *string `json:"contactEmail,omitempty" binding:"omitempty,email"`
	ContactNumber *string `json:"contactNumber,omitempty"`
	Website       *string `json:"website,omitempty"`
}

// InstituteResponse represents institute information
type InstituteResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	Pincode       string  `json:"pincode"`
	ContactEmail  *string `json:"contactEmail,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`
	Website       *string `json:"website,omitempty"`
}

// FromInstitute converts a models.Institute to an InstituteResponse
func FromInstitute(institute *models.Institute) InstituteResponse {
	if institute == nil {
		return InstituteResponse{}
	}
	return InstituteResponse{
		ID:            institute.ID,
		Name:          institute.Name,
		Address:       institute.Address,
		City:          institute.City,
		State:         institute.State,
		Pincode:       institute.Pincode,
		ContactEmail:  institute.ContactEmail,
		ContactNumber: institute.ContactNumber,
		Website:       institute.Website,
	}
}

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
}

// CourseResponse represents course information
type CourseResponse struct {
	ID          int64  `json:"id"`
	InstituteID int64  `json:"instituteId"`
	Name        string `json:"name"`
	Code        string `json:"code"`
}

// FromCourse converts a models.Course to a CourseResponse
func FromCourse(course *models.Course) CourseResponse {
	if course == nil {
		return CourseResponse{}
	}
	return CourseResponse{
		ID:          course.ID,
		InstituteID: course.InstituteID,
		Name:        course.Name,
		Code:        course.Code,
	}
}

// CreateBranchRequest represents branch creation data
type CreateBranchRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
}

// UpdateBranchRequest represents branch update data
type UpdateBranchRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
}

// BranchResponse represents branch information
type BranchResponse struct {
	ID       int64  `json:"id"`
	CourseID int64  `json:"courseId"`
	Name     string `json:"name"`
	Code     string `json:"code"`
}

// FromBranch converts a models.Branch to a BranchResponse
func FromBranch(branch *models.Branch) BranchResponse {
	if branch == nil {
		return BranchResponse{}
	}
	return BranchResponse{
		ID:       branch.ID,
		CourseID: branch.CourseID,
		Name:     branch.Name,
		Code:     branch.Code,
	}
}
