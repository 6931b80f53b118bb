package dto

import (
	"time"

	"github.com/arjun/hostelmate/internal/app/models"
)

// CreatePaymentRequest records a ledger entry for a student. When
// roomAllocationId is given, the allocation must belong to the same student.
type CreatePaymentRequest struct {
	StudentID        int64   `json:"studentId" binding:"required,min=1"`
	RoomAllocationID *int64  `json:"roomAllocationId,omitempty"`
	PaymentType      string  `json:"paymentType" binding:"required,oneof=security_deposit rent maintenance_fee other"`
	Amount           float64 `json:"amount" binding:"required,gt=0"`
	Status           string  `json:"status" binding:"omitempty,oneof=pending paid failed refunded waived"`
	DueDate          *string `json:"dueDate,omitempty"`     // YYYY-MM-DD
	PaymentDate      *string `json:"paymentDate,omitempty"` // YYYY-MM-DD
	TransactionID    *string `json:"transactionId,omitempty"`
	PaymentMethod    *string `json:"paymentMethod,omitempty"`
	Notes            *string `json:"notes,omitempty"`
}

// UpdatePaymentStatusRequest changes the settlement state of a payment
type UpdatePaymentStatusRequest struct {
	Status        string  `json:"status" binding:"required,oneof=pending paid failed refunded waived"`
	PaymentDate   *string `json:"paymentDate,omitempty"` // YYYY-MM-DD
	TransactionID *string `json:"transactionId,omitempty"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// PaymentResponse represents payment information
type PaymentResponse struct {
	ID               int64      `json:"id"`
	StudentID        int64      `json:"studentId"`
	RoomAllocationID *int64     `json:"roomAllocationId,omitempty"`
	PaymentType      string     `json:"paymentType"`
	Amount           float64    `json:"amount"`
	Status           string     `json:"status"`
	DueDate          *time.Time `json:"dueDate,omitempty"`
	PaymentDate      *time.Time `json:"paymentDate,omitempty"`
	TransactionID    *string    `json:"transactionId,omitempty"`
	PaymentMethod    *string    `json:"paymentMethod,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`

	Student *StudentResponse `json:"student,omitempty"`
}

// FromPayment converts a models.Payment to a PaymentResponse
func FromPayment(payment *models.Payment) PaymentResponse {
	if payment == nil {
		return PaymentResponse{}
	}
	resp := PaymentResponse{
		ID:               payment.ID,
		StudentID:        payment.StudentID,
		RoomAllocationID: payment.RoomAllocationID,
		PaymentType:      string(payment.PaymentType),
		Amount:           payment.Amount,
		Status:           string(payment.Status),
		DueDate:          payment.DueDate,
		PaymentDate:      payment.PaymentDate,
		TransactionID:    payment.TransactionID,
		PaymentMethod:    payment.PaymentMethod,
		Notes:            payment.Notes,
		CreatedAt:        payment.CreatedAt,
	}
	if payment.Student != nil {
		student := FromStudent(payment.Student)
		resp.Student = &student
	}
	return resp
}

// PaymentListResponse represents a paginated list of payments
type PaymentListResponse struct {
	Payments   []PaymentResponse `json:"payments"`
	Pagination PaginationInfo    `json:"pagination"`
}

// PaymentFilterRequest represents query filters on payment lists
type PaymentFilterRequest struct {
	StudentID   int64  `form:"studentId" binding:"omitempty,min=1"`
	Status      string `form:"status" binding:"omitempty,oneof=pending paid failed refunded waived"`
	PaymentType string `form:"paymentType" binding:"omitempty,oneof=security_deposit rent maintenance_fee other"`
	Page        int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize    int    `form:"pageSize,default=10" binding:"omitempty,min=1,max=100"`
}
