package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjun/hostelmate/internal/app/models"
	"github.com/arjun/hostelmate/internal/pkg/apperrors"
	"github.com/arjun/hostelmate/internal/pkg/dberrors"
)

// PaymentFilter narrows payment list queries
type PaymentFilter struct {
	StudentID   int64
	Status      string
	PaymentType string
	Page        int
	PageSize    int
}

// PaymentRepository handles database operations for the payment ledger
type PaymentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var paymentColumns = []string{
	"id", "student_id", "room_allocation_id", "payment_type", "amount",
	"status", "due_date", "payment_date", "transaction_id", "payment_method",
	"notes", "created_at", "updated_at",
}

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var payment models.Payment
	err := row.Scan(
		&payment.ID, &payment.StudentID, &payment.RoomAllocationID,
		&payment.PaymentType, &payment.Amount, &payment.Status,
		&payment.DueDate, &payment.PaymentDate, &payment.TransactionID,
		&payment.PaymentMethod, &payment.Notes, &payment.CreatedAt,
		&payment.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("error retrieving payment: %w", err)
	}
	return &payment, nil
}

// Create records a ledger entry. Transaction IDs are globally unique when
// present via the payments_transaction_id_key constraint.
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO payments (student_id, room_allocation_id, payment_type,
			amount, status, due_date, payment_date, transaction_id,
			payment_method, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`,
		payment.StudentID, payment.RoomAllocationID, payment.PaymentType,
		payment.Amount, payment.Status, payment.DueDate, payment.PaymentDate,
		payment.TransactionID, payment.PaymentMethod, payment.Notes).
		Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "payments_transaction_id_key") {
			return apperrors.ErrTransactionIDExists
		}
		return fmt.Errorf("error creating payment: %w", err)
	}

	return nil
}

// GetByID retrieves a payment by ID
func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*models.Payment, error) {
	sql, args, err := r.sb.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get payment query: %w", err)
	}

	return scanPayment(r.db.QueryRow(ctx, sql, args...))
}

// List retrieves a page of payments matching the filter, newest first
func (r *PaymentRepository) List(ctx context.Context, filter PaymentFilter) ([]*models.Payment, int, error) {
	conditions := squirrel.And{}
	if filter.StudentID > 0 {
		conditions = append(conditions, squirrel.Eq{"student_id": filter.StudentID})
	}
	if filter.Status != "" {
		conditions = append(conditions, squirrel.Eq{"status": filter.Status})
	}
	if filter.PaymentType != "" {
		conditions = append(conditions, squirrel.Eq{"payment_type": filter.PaymentType})
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").
		From("payments").
		Where(conditions).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count payments query: %w", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting payments: %w", err)
	}

	query := r.sb.Select(paymentColumns...).
		From("payments").
		Where(conditions).
		OrderBy("created_at DESC")
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Limit(uint64(filter.PageSize)).Offset(uint64((page - 1) * filter.PageSize))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list payments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, 0, err
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

// UpdateStatus changes the settlement state of a payment
func (r *PaymentRepository) UpdateStatus(ctx context.Context, payment *models.Payment) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE payments
		SET status = $1, payment_date = $2, transaction_id = $3,
			payment_method = $4, notes = $5, updated_at = NOW()
		WHERE id = $6`,
		payment.Status, payment.PaymentDate, payment.TransactionID,
		payment.PaymentMethod, payment.Notes, payment.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "payments_transaction_id_key") {
			return apperrors.ErrTransactionIDExists
		}
		return fmt.Errorf("error updating payment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPaymentNotFound
	}

	return nil
}
