package dto

import (
	"time"

	"github.com/arjun/hostelmate/internal/app/models"
)

// CreateApplicationRequest represents a student's hostel application. A
// student may hold at most one open application at a time.
type CreateApplicationRequest struct {
	PreferredHostelID *int64  `json:"preferredHostelId,omitempty"`
	PreferredRoomType string  `json:"preferredRoomType" binding:"required,oneof=single double triple any"`
	ReasonForHostel   *string `json:"reasonForHostel,omitempty"`
}

// UpdateApplicationStatusRequest represents a staff review decision
type UpdateApplicationStatusRequest struct {
	Status  string  `json:"status" binding:"required,oneof=approved rejected waitlisted"`
	Remarks *string `json:"remarks,omitempty"`
}

// ApplicationResponse represents application information
type ApplicationResponse struct {
	ID                int64      `json:"id"`
	StudentID         int64      `json:"studentId"`
	InstituteID       int64      `json:"instituteId"`
	CourseID          *int64     `json:"courseId,omitempty"`
	BranchID          *int64     `json:"branchId,omitempty"`
	PreferredHostelID *int64     `json:"preferredHostelId,omitempty"`
	PreferredRoomType string     `json:"preferredRoomType"`
	ReasonForHostel   *string    `json:"reasonForHostel,omitempty"`
	Status            string     `json:"status"`
	ReviewedByID      *int64     `json:"reviewedById,omitempty"`
	RemarksByReviewer *string    `json:"remarksByReviewer,omitempty"`
	SubmittedAt       time.Time  `json:"submittedAt"`
	ReviewedAt        *time.Time `json:"reviewedAt,omitempty"`

	Student         *StudentResponse `json:"student,omitempty"`
	PreferredHostel *HostelResponse  `json:"preferredHostel,omitempty"`
}

// FromApplication converts a models.HostelApplication to an ApplicationResponse
func FromApplication(application *models.HostelApplication) ApplicationResponse {
	if application == nil {
		return ApplicationResponse{}
	}
	resp := ApplicationResponse{
		ID:                application.ID,
		StudentID:         application.StudentID,
		InstituteID:       application.InstituteID,
		CourseID:          application.CourseID,
		BranchID:          application.BranchID,
		PreferredHostelID: application.PreferredHostelID,
		PreferredRoomType: string(application.PreferredRoomType),
		ReasonForHostel:   application.ReasonForHostel,
		Status:            string(application.Status),
		ReviewedByID:      application.ReviewedByID,
		RemarksByReviewer: application.RemarksByReviewer,
		SubmittedAt:       application.SubmittedAt,
		ReviewedAt:        application.ReviewedAt,
	}
	if application.Student != nil {
		student := FromStudent(application.Student)
		resp.Student = &student
	}
	if application.PreferredHostel != nil {
		hostel := FromHostel(application.PreferredHostel)
		resp.PreferredHostel = &hostel
	}
	return resp
}

// ApplicationListResponse represents a paginated list of applications
type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Pagination   PaginationInfo        `json:"pagination"`
}

// ApplicationFilterRequest represents query filters on application lists
type ApplicationFilterRequest struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending approved rejected cancelled waitlisted"`
	HostelID int64  `form:"hostelId" binding:"omitempty,min=1"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize,default=10" binding:"omitempty,min=1,max=100"`
}
