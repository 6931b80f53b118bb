package models

import "time"

// PaymentType defines what a payment is for
type PaymentType string

const (
	PaymentSecurityDeposit PaymentType = "security_deposit"
	PaymentRent            PaymentType = "rent"
	PaymentMaintenanceFee  PaymentType = "maintenance_fee"
	PaymentOther           PaymentType = "other"
)

// Valid reports whether the payment type is known.
func (t PaymentType) Valid() bool {
	switch t {
	case PaymentSecurityDeposit, PaymentRent, PaymentMaintenanceFee, PaymentOther:
		return true
	}
	return false
}

// PaymentStatus defines the settlement state of a payment
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentWaived   PaymentStatus = "waived"
)

// Valid reports whether the payment status is known.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded, PaymentWaived:
		return true
	}
	return false
}

// Payment defines a ledger entry based on the 'payments' table
type Payment struct {
	ID               int64         `json:"id" db:"id"`
	StudentID        int64         `json:"studentId" db:"student_id"`
	RoomAllocationID *int64        `json:"roomAllocationId,omitempty" db:"room_allocation_id"`
	PaymentType      PaymentType   `json:"paymentType" db:"payment_type"`
	Amount           float64       `json:"amount" db:"amount"`
	Status           PaymentStatus `json:"status" db:"status"`
	DueDate          *time.Time    `json:"dueDate,omitempty" db:"due_date"`
	PaymentDate      *time.Time    `json:"paymentDate,omitempty" db:"payment_date"`
	TransactionID    *string       `json:"transactionId,omitempty" db:"transaction_id"` // Globally unique when present
	PaymentMethod    *string       `json:"paymentMethod,omitempty" db:"payment_method"`
	Notes            *string       `json:"notes,omitempty" db:"notes"`
	CreatedAt        time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time     `json:"updatedAt" db:"updated_at"`

	Student        *Student        `json:"student,omitempty"`
	RoomAllocation *RoomAllocation `json:"roomAllocation,omitempty"`
}
