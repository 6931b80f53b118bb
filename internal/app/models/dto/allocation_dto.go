package dto

import (
	"time"

	"github.com/arjun/hostelmate/internal/app/models"
)

// CreateAllocationRequest assigns a student to a room. When applicationId is
// given, the application must be approved, belong to the same student and not
// already be linked to another allocation.
type CreateAllocationRequest struct {
	StudentID     int64   `json:"studentId" binding:"required,min=1"`
	RoomID        int64   `json:"roomId" binding:"required,min=1"`
	ApplicationID *int64  `json:"applicationId,omitempty"`
	StartDate     *string `json:"startDate,omitempty"` // YYYY-MM-DD, defaults to today
	Notes         *string `json:"notes,omitempty"`
}

// DeallocateRequest closes an allocation by setting its end date
type DeallocateRequest struct {
	EndDate *string `json:"endDate,omitempty"` // YYYY-MM-DD, defaults to today
	Notes   *string `json:"notes,omitempty"`
}

// AllocationResponse represents allocation information
type AllocationResponse struct {
	ID            int64      `json:"id"`
	StudentID     int64      `json:"studentId"`
	RoomID        int64      `json:"roomId"`
	HostelID      int64      `json:"hostelId"`
	ApplicationID *int64     `json:"applicationId,omitempty"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	IsActive      bool       `json:"isActive"`
	CreatedAt     time.Time  `json:"createdAt"`

	Student *StudentResponse `json:"student,omitempty"`
	Room    *RoomResponse    `json:"room,omitempty"`
	Hostel  *HostelResponse  `json:"hostel,omitempty"`
}

// FromAllocation converts a models.RoomAllocation to an AllocationResponse
func FromAllocation(allocation *models.RoomAllocation) AllocationResponse {
	if allocation == nil {
		return AllocationResponse{}
	}
	resp := AllocationResponse{
		ID:            allocation.ID,
		StudentID:     allocation.StudentID,
		RoomID:        allocation.RoomID,
		HostelID:      allocation.HostelID,
		ApplicationID: allocation.ApplicationID,
		StartDate:     allocation.StartDate,
		EndDate:       allocation.EndDate,
		Notes:         allocation.Notes,
		IsActive:      allocation.ActiveOn(time.Now()),
		CreatedAt:     allocation.CreatedAt,
	}
	if allocation.Student != nil {
		student := FromStudent(allocation.Student)
		resp.Student = &student
	}
	if allocation.Room != nil {
		room := FromRoom(allocation.Room)
		resp.Room = &room
	}
	if allocation.Hostel != nil {
		hostel := FromHostel(allocation.Hostel)
		resp.Hostel = &hostel
	}
	return resp
}

// AllocationListResponse represents a paginated list of allocations
type AllocationListResponse struct {
	Allocations []AllocationResponse `json:"allocations"`
	Pagination  PaginationInfo       `json:"pagination"`
}

// AllocationFilterRequest represents query filters on allocation lists
type AllocationFilterRequest struct {
	HostelID   int64 `form:"hostelId" binding:"omitempty,min=1"`
	RoomID     int64 `form:"roomId" binding:"omitempty,min=1"`
	StudentID  int64 `form:"studentId" binding:"omitempty,min=1"`
	ActiveOnly bool  `form:"activeOnly"`
	Page       int   `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize   int   `form:"pageSize,default=10" binding:"omitempty,min=1,max=100"`
}
