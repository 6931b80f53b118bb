package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/arjun/hostelmate/internal/app/models"
	"github.com/arjun/hostelmate/internal/app/models/dto"
	"github.com/arjun/hostelmate/internal/app/repositories"
	"github.com/arjun/hostelmate/internal/pkg/apperrors"
)

// PaymentService handles the payment ledger
type PaymentService struct {
	paymentRepo    *repositories.PaymentRepository
	allocationRepo *repositories.AllocationRepository
	userRepo       *repositories.UserRepository
	logger         zerolog.Logger
}

// NewPaymentService creates a new PaymentService instance
func NewPaymentService(
	paymentRepo *repositories.PaymentRepository,
	allocationRepo *repositories.AllocationRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo:    paymentRepo,
		allocationRepo: allocationRepo,
		userRepo:       userRepo,
		logger:         logger.With().Str("service", "payment").Logger(),
	}
}

// CreatePayment records a ledger entry for a student.
func (s *PaymentService) CreatePayment(ctx context.Context, actor Actor, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if actor.Role == models.RoleStudent {
		return nil, apperrors.ErrPermissionDenied
	}

	student, err := s.userRepo.GetStudentByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if err := checkInstituteScope(ctx, s.userRepo, actor, student.InstituteID); err != nil {
		return nil, err
	}

	if req.RoomAllocationID != nil {
		allocation, err := s.allocationRepo.GetByID(ctx, *req.RoomAllocationID)
		if err != nil {
			return nil, err
		}
		if allocation.StudentID != req.StudentID {
			return nil, apperrors.ErrAllocationStudentMismatch
		}
	}

	status := models.PaymentPending
	if req.Status != "" {
		status = models.PaymentStatus(req.Status)
	}

	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid due date, expected YYYY-MM-DD")
	}
	paymentDate, err := parseOptionalDate(req.PaymentDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid payment date, expected YYYY-MM-DD")
	}
	if status == models.PaymentPaid && paymentDate == nil {
		now := time.Now()
		paymentDate = &now
	}

	payment := &models.Payment{
		StudentID:        req.StudentID,
		RoomAllocationID: req.RoomAllocationID,
		PaymentType:      models.PaymentType(req.PaymentType),
		Amount:           req.Amount,
		Status:           status,
		DueDate:          dueDate,
		PaymentDate:      paymentDate,
		TransactionID:    req.TransactionID,
		PaymentMethod:    req.PaymentMethod,
		Notes:            req.Notes,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("payment_id", payment.ID).
		Int64("student_id", payment.StudentID).
		Str("type", string(payment.PaymentType)).
		Float64("amount", payment.Amount).
		Msg("Payment recorded")

	resp := dto.FromPayment(payment)
	return &resp, nil
}

// GetPaymentByID returns one payment. Students see only their own.
func (s *PaymentService) GetPaymentByID(ctx context.Context, actor Actor, id int64) (*dto.PaymentResponse, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkRead(ctx, actor, payment); err != nil {
		return nil, err
	}
	resp := dto.FromPayment(payment)
	return &resp, nil
}

// ListPayments returns payments matching the filter, paginated. Students get
// their own ledger regardless of the requested filter.
func (s *PaymentService) ListPayments(ctx context.Context, actor Actor, filter repositories.PaymentFilter) (*dto.PaymentListResponse, error) {
	if actor.Role == models.RoleStudent {
		student, err := s.userRepo.GetStudentByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		filter.StudentID = student.ID
	}

	payments, total, err := s.paymentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.PaymentListResponse{
		Payments:   make([]dto.PaymentResponse, 0, len(payments)),
		Pagination: dto.NewPaginationInfo(filter.Page, filter.PageSize, total),
	}
	for _, payment := range payments {
		resp.Payments = append(resp.Payments, dto.FromPayment(payment))
	}
	return resp, nil
}

// UpdatePaymentStatus changes the settlement state of a payment. Moving to
// paid stamps the payment date when the caller did not supply one.
func (s *PaymentService) UpdatePaymentStatus(ctx context.Context, actor Actor, id int64, req *dto.UpdatePaymentStatusRequest) (*dto.PaymentResponse, error) {
	if actor.Role == models.RoleStudent {
		return nil, apperrors.ErrPermissionDenied
	}

	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	student, err := s.userRepo.GetStudentByID(ctx, payment.StudentID)
	if err != nil {
		return nil, err
	}
	if err := checkInstituteScope(ctx, s.userRepo, actor, student.InstituteID); err != nil {
		return nil, err
	}

	paymentDate, err := parseOptionalDate(req.PaymentDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid payment date, expected YYYY-MM-DD")
	}

	payment.Status = models.PaymentStatus(req.Status)
	if paymentDate != nil {
		payment.PaymentDate = paymentDate
	} else if payment.Status == models.PaymentPaid && payment.PaymentDate == nil {
		now := time.Now()
		payment.PaymentDate = &now
	}
	if req.TransactionID != nil {
		payment.TransactionID = req.TransactionID
	}
	if req.PaymentMethod != nil {
		payment.PaymentMethod = req.PaymentMethod
	}
	if req.Notes != nil {
		payment.Notes = req.Notes
	}

	if err := s.paymentRepo.UpdateStatus(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("payment_id", payment.ID).
		Str("status", string(payment.Status)).
		Msg("Payment status updated")

	resp := dto.FromPayment(payment)
	return &resp, nil
}

// checkRead verifies the actor may view the payment.
func (s *PaymentService) checkRead(ctx context.Context, actor Actor, payment *models.Payment) error {
	if actor.Role == models.RoleStudent {
		student, err := s.userRepo.GetStudentByUserID(ctx, actor.UserID)
		if err != nil {
			return err
		}
		if payment.StudentID != student.ID {
			return apperrors.ErrPaymentNotFound
		}
		return nil
	}
	student, err := s.userRepo.GetStudentByID(ctx, payment.StudentID)
	if err != nil {
		return err
	}
	return checkInstituteScope(ctx, s.userRepo, actor, student.InstituteID)
}
