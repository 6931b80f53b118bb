package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjun/hostelmate/internal/app/models"
	"github.com/arjun/hostelmate/internal/pkg/apperrors"
	"github.com/arjun/hostelmate/internal/pkg/dberrors"
)

// AllocationFilter narrows allocation list queries
type AllocationFilter struct {
	HostelID   int64
	RoomID     int64
	StudentID  int64
	ActiveOnly bool
	Page       int
	PageSize   int
}

// AllocationRepository handles database operations for room allocations
type AllocationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAllocationRepository creates a new allocation repository
func NewAllocationRepository(db *pgxpool.Pool) *AllocationRepository {
	return &AllocationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var allocationColumns = []string{
	"id", "student_id", "room_id", "hostel_id", "application_id",
	"start_date", "end_date", "notes", "created_at", "updated_at",
}

func scanAllocation(row pgx.Row) (*models.RoomAllocation, error) {
	var alloc models.RoomAllocation
	err := row.Scan(
		&alloc.ID, &alloc.StudentID, &alloc.RoomID, &alloc.HostelID,
		&alloc.ApplicationID, &alloc.StartDate, &alloc.EndDate, &alloc.Notes,
		&alloc.CreatedAt, &alloc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAllocationNotFound
		}
		return nil, fmt.Errorf("error retrieving allocation: %w", err)
	}
	return &alloc, nil
}

// CreateTx inserts an allocation inside an existing transaction. The
// room_allocations_active_student_key partial index backs the
// one-active-allocation-per-student rule, and
// room_allocations_application_key keeps an application linked to at most one
// allocation.
func (r *AllocationRepository) CreateTx(ctx context.Context, tx pgx.Tx, alloc *models.RoomAllocation) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO room_allocations (student_id, room_id, hostel_id,
			application_id, start_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		alloc.StudentID, alloc.RoomID, alloc.HostelID, alloc.ApplicationID,
		alloc.StartDate, alloc.Notes).Scan(&alloc.ID, &alloc.CreatedAt, &alloc.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "room_allocations_active_student_key") {
			return apperrors.ErrStudentAlreadyAllocated
		}
		if dberrors.IsDuplicateConstraintError(err, "room_allocations_application_key") {
			return apperrors.ErrApplicationLinked
		}
		return fmt.Errorf("error creating allocation: %w", err)
	}

	return nil
}

// GetByID retrieves an allocation by ID
func (r *AllocationRepository) GetByID(ctx context.Context, id int64) (*models.RoomAllocation, error) {
	sql, args, err := r.sb.Select(allocationColumns...).
		From("room_allocations").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get allocation query: %w", err)
	}

	return scanAllocation(r.db.QueryRow(ctx, sql, args...))
}

// GetByIDForUpdate locks the allocation row inside a transaction
func (r *AllocationRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*models.RoomAllocation, error) {
	sql, args, err := r.sb.Select(allocationColumns...).
		From("room_allocations").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get allocation query: %w", err)
	}

	return scanAllocation(tx.QueryRow(ctx, sql, args...))
}

// GetActiveByStudentID retrieves the student's active allocation if one
// exists. Active means open-ended or ending today or later.
func (r *AllocationRepository) GetActiveByStudentID(ctx context.Context, studentID int64) (*models.RoomAllocation, error) {
	sql, args, err := r.sb.Select(allocationColumns...).
		From("room_allocations").
		Where(squirrel.Eq{"student_id": studentID}).
		Where("(end_date IS NULL OR end_date >= CURRENT_DATE)").
		OrderBy("start_date DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build active allocation query: %w", err)
	}

	return scanAllocation(r.db.QueryRow(ctx, sql, args...))
}

// StudentHasActiveAllocationTx checks inside a transaction whether the
// student already holds an active allocation
func (r *AllocationRepository) StudentHasActiveAllocationTx(ctx context.Context, tx pgx.Tx, studentID int64) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM room_allocations
			WHERE student_id = $1 AND (end_date IS NULL OR end_date >= CURRENT_DATE))`,
		studentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking active allocation: %w", err)
	}

	return exists, nil
}

// ApplicationIsLinkedTx checks inside a transaction whether an application is
// already linked to any allocation
func (r *AllocationRepository) ApplicationIsLinkedTx(ctx context.Context, tx pgx.Tx, applicationID int64) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM room_allocations WHERE application_id = $1)`,
		applicationID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking application link: %w", err)
	}

	return exists, nil
}

// CountActiveByRoomTx counts active occupants of a room inside a transaction.
// The caller locks the room row first so the count cannot move under it.
func (r *AllocationRepository) CountActiveByRoomTx(ctx context.Context, tx pgx.Tx, roomID int64) (int, error) {
	var count int
	err := tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM room_allocations
		WHERE room_id = $1 AND (end_date IS NULL OR end_date >= CURRENT_DATE)`,
		roomID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting room occupants: %w", err)
	}

	return count, nil
}

// CloseTx sets the allocation's end date inside a transaction. Rows are never
// deleted.
func (r *AllocationRepository) CloseTx(ctx context.Context, tx pgx.Tx, id int64, endDate time.Time, notes *string) error {
	var cmdTag pgconn.CommandTag
	var err error
	if notes != nil {
		cmdTag, err = tx.Exec(ctx, `
			UPDATE room_allocations
			SET end_date = $1, notes = $2, updated_at = NOW()
			WHERE id = $3 AND end_date IS NULL`,
			endDate, notes, id)
	} else {
		cmdTag, err = tx.Exec(ctx, `
			UPDATE room_allocations
			SET end_date = $1, updated_at = NOW()
			WHERE id = $2 AND end_date IS NULL`,
			endDate, id)
	}
	if err != nil {
		return fmt.Errorf("error closing allocation: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAllocationClosed
	}

	return nil
}

// List retrieves a page of allocations matching the filter, newest first
func (r *AllocationRepository) List(ctx context.Context, filter AllocationFilter) ([]*models.RoomAllocation, int, error) {
	conditions := squirrel.And{}
	if filter.HostelID > 0 {
		conditions = append(conditions, squirrel.Eq{"hostel_id": filter.HostelID})
	}
	if filter.RoomID > 0 {
		conditions = append(conditions, squirrel.Eq{"room_id": filter.RoomID})
	}
	if filter.StudentID > 0 {
		conditions = append(conditions, squirrel.Eq{"student_id": filter.StudentID})
	}
	if filter.ActiveOnly {
		conditions = append(conditions, squirrel.Expr("(end_date IS NULL OR end_date >= CURRENT_DATE)"))
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").
		From("room_allocations").
		Where(conditions).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count allocations query: %w", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting allocations: %w", err)
	}

	query := r.sb.Select(allocationColumns...).
		From("room_allocations").
		Where(conditions).
		OrderBy("start_date DESC")
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Limit(uint64(filter.PageSize)).Offset(uint64((page - 1) * filter.PageSize))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list allocations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing allocations: %w", err)
	}
	defer rows.Close()

	var allocations []*models.RoomAllocation
	for rows.Next() {
		alloc, err := scanAllocation(rows)
		if err != nil {
			return nil, 0, err
		}
		allocations = append(allocations, alloc)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return allocations, total, nil
}
