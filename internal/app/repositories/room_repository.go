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

// RoomFilter narrows room list queries
type RoomFilter struct {
	HostelID      int64
	RoomType      string
	AvailableOnly bool
	Page          int
	PageSize      int
}

// RoomRepository handles database operations for rooms
type RoomRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const roomColumns = `id, hostel_id, room_number, room_type, capacity,
		current_occupancy, rent_per_bed, floor, is_available`

func scanRoom(row pgx.Row) (*models.Room, error) {
	var room models.Room
	err := row.Scan(
		&room.ID, &room.HostelID, &room.RoomNumber, &room.RoomType,
		&room.Capacity, &room.CurrentOccupancy, &room.RentPerBed, &room.Floor,
		&room.IsAvailable)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}
	return &room, nil
}

// Create creates a new room. Room numbers are unique per hostel
// case-insensitively via the rooms_hostel_number_key index.
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO rooms (hostel_id, room_number, room_type, capacity,
			current_occupancy, rent_per_bed, floor, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		room.HostelID, room.RoomNumber, room.RoomType, room.Capacity,
		room.CurrentOccupancy, room.RentPerBed, room.Floor,
		room.IsAvailable).Scan(&room.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "rooms_hostel_number_key") {
			return apperrors.ErrRoomNumberExists
		}
		return fmt.Errorf("error creating room: %w", err)
	}

	return nil
}

// GetByID retrieves a room by ID
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	return scanRoom(r.db.QueryRow(ctx, `
		SELECT `+roomColumns+`
		FROM rooms
		WHERE id = $1`,
		id))
}

// GetByIDForUpdate locks the room row inside a transaction. The allocation
// engine holds this lock while it checks capacity and bumps occupancy.
func (r *RoomRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*models.Room, error) {
	return scanRoom(tx.QueryRow(ctx, `
		SELECT `+roomColumns+`
		FROM rooms
		WHERE id = $1
		FOR UPDATE`,
		id))
}

// List retrieves a page of rooms matching the filter
func (r *RoomRepository) List(ctx context.Context, filter RoomFilter) ([]*models.Room, int, error) {
	conditions := squirrel.And{}
	if filter.HostelID > 0 {
		conditions = append(conditions, squirrel.Eq{"hostel_id": filter.HostelID})
	}
	if filter.RoomType != "" {
		conditions = append(conditions, squirrel.Eq{"room_type": filter.RoomType})
	}
	if filter.AvailableOnly {
		conditions = append(conditions, squirrel.Eq{"is_available": true})
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").
		From("rooms").
		Where(conditions).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count rooms query: %w", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting rooms: %w", err)
	}

	query := r.sb.Select("id", "hostel_id", "room_number", "room_type", "capacity",
		"current_occupancy", "rent_per_bed", "floor", "is_available").
		From("rooms").
		Where(conditions).
		OrderBy("room_number")
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Limit(uint64(filter.PageSize)).Offset(uint64((page - 1) * filter.PageSize))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list rooms query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, 0, err
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return rooms, total, nil
}

// Update updates a room's descriptive fields. Occupancy is only moved by the
// allocation engine.
func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE rooms
		SET room_number = $1, room_type = $2, capacity = $3, rent_per_bed = $4,
			floor = $5, is_available = (current_occupancy < $3)
		WHERE id = $6`,
		room.RoomNumber, room.RoomType, room.Capacity, room.RentPerBed,
		room.Floor, room.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "rooms_hostel_number_key") {
			return apperrors.ErrRoomNumberExists
		}
		return fmt.Errorf("error updating room: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}

	return nil
}

// SetOccupancyTx writes the room's occupancy and availability inside a
// transaction, part of an allocation engine move.
func (r *RoomRepository) SetOccupancyTx(ctx context.Context, tx pgx.Tx, roomID int64, occupancy int) error {
	cmdTag, err := tx.Exec(ctx, `
		UPDATE rooms
		SET current_occupancy = $1, is_available = ($1 < capacity)
		WHERE id = $2`,
		occupancy, roomID)
	if err != nil {
		return fmt.Errorf("error updating room occupancy: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}

	return nil
}

// AdjustHostelAvailableRoomsTx moves the hostel's available room counter by
// delta inside a transaction, clamped at zero.
func (r *RoomRepository) AdjustHostelAvailableRoomsTx(ctx context.Context, tx pgx.Tx, hostelID int64, delta int) error {
	cmdTag, err := tx.Exec(ctx, `
		UPDATE hostels
		SET available_rooms = GREATEST(available_rooms + $1, 0), updated_at = NOW()
		WHERE id = $2`,
		delta, hostelID)
	if err != nil {
		return fmt.Errorf("error adjusting hostel available rooms: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrHostelNotFound
	}

	return nil
}

// Delete deletes a room. Rooms referenced by allocations are protected by
// foreign keys and surface as a conflict.
func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolationError(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error deleting room: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}

	return nil
}
