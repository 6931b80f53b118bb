package dto

import "time"

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// APIResponse provides a base structured API response with optional payload
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message" example:"Operation completed successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2026-02-10T12:01:05.123Z"`
}

// NewAPIResponse creates a standard success response with a payload
func NewAPIResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// PaginationInfo represents pagination metadata
type PaginationInfo struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
	TotalItems  int `json:"totalItems"`
}

// NewPaginationInfo computes pagination metadata from a total item count
func NewPaginationInfo(page, pageSize, totalItems int) PaginationInfo {
	if pageSize <= 0 {
		pageSize = 10
	}
	totalPages := totalItems / pageSize
	if totalItems%pageSize > 0 {
		totalPages++
	}
	return PaginationInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    pageSize,
		TotalItems:  totalItems,
	}
}

// PaginatedResponse represents a paginated list with metadata
type PaginatedResponse struct {
	Items      interface{}    `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}
