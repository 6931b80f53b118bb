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

// HostelFilter narrows hostel list queries
type HostelFilter struct {
	InstituteID int64
	HostelType  string
	City        string
	ActiveOnly  bool
	Page        int
	PageSize    int
}

// HostelRepository handles database operations for hostels and their images
type HostelRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewHostelRepository creates a new hostel repository
func NewHostelRepository(db *pgxpool.Pool) *HostelRepository {
	return &HostelRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var hostelColumns = []string{
	"id", "institute_id", "director_id", "name", "hostel_type",
	"address_line1", "address_line2", "city", "state", "pincode",
	"contact_email", "contact_number", "total_rooms", "available_rooms",
	"rent_per_month", "security_deposit", "wifi", "laundry", "mess", "gym",
	"parking", "ac_rooms_available", "is_active", "created_at", "updated_at",
}

func scanHostel(row pgx.Row) (*models.Hostel, error) {
	var hostel models.Hostel
	err := row.Scan(
		&hostel.ID, &hostel.InstituteID, &hostel.DirectorID, &hostel.Name,
		&hostel.HostelType, &hostel.AddressLine1, &hostel.AddressLine2,
		&hostel.City, &hostel.State, &hostel.Pincode, &hostel.ContactEmail,
		&hostel.ContactNumber, &hostel.TotalRooms, &hostel.AvailableRooms,
		&hostel.RentPerMonth, &hostel.SecurityDeposit, &hostel.Wifi,
		&hostel.Laundry, &hostel.Mess, &hostel.Gym, &hostel.Parking,
		&hostel.ACRoomsAvailable, &hostel.IsActive, &hostel.CreatedAt,
		&hostel.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHostelNotFound
		}
		return nil, fmt.Errorf("error retrieving hostel: %w", err)
	}
	return &hostel, nil
}

// Create creates a new hostel. Names are unique per institute via the
// hostels_institute_name_key constraint. A new hostel has every room free, so
// available_rooms starts at total_rooms.
func (r *HostelRepository) Create(ctx context.Context, hostel *models.Hostel) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO hostels (institute_id, director_id, name, hostel_type,
			address_line1, address_line2, city, state, pincode,
			contact_email, contact_number, total_rooms, available_rooms,
			rent_per_month, security_deposit, wifi, laundry, mess, gym,
			parking, ac_rooms_available, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING id, created_at, updated_at`,
		hostel.InstituteID, hostel.DirectorID, hostel.Name, hostel.HostelType,
		hostel.AddressLine1, hostel.AddressLine2, hostel.City, hostel.State,
		hostel.Pincode, hostel.ContactEmail, hostel.ContactNumber,
		hostel.TotalRooms, hostel.AvailableRooms, hostel.RentPerMonth,
		hostel.SecurityDeposit, hostel.Wifi, hostel.Laundry, hostel.Mess,
		hostel.Gym, hostel.Parking, hostel.ACRoomsAvailable, hostel.IsActive).
		Scan(&hostel.ID, &hostel.CreatedAt, &hostel.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "hostels_institute_name_key") {
			return apperrors.ErrHostelAlreadyExists
		}
		return fmt.Errorf("error creating hostel: %w", err)
	}

	return nil
}

// GetByID retrieves a hostel by ID
func (r *HostelRepository) GetByID(ctx context.Context, id int64) (*models.Hostel, error) {
	sql, args, err := r.sb.Select(hostelColumns...).
		From("hostels").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get hostel query: %w", err)
	}

	return scanHostel(r.db.QueryRow(ctx, sql, args...))
}

// List retrieves a page of hostels matching the filter
func (r *HostelRepository) List(ctx context.Context, filter HostelFilter) ([]*models.Hostel, int, error) {
	conditions := squirrel.And{}
	if filter.InstituteID > 0 {
		conditions = append(conditions, squirrel.Eq{"institute_id": filter.InstituteID})
	}
	if filter.HostelType != "" {
		conditions = append(conditions, squirrel.Eq{"hostel_type": filter.HostelType})
	}
	if filter.City != "" {
		conditions = append(conditions, squirrel.ILike{"city": filter.City})
	}
	if filter.ActiveOnly {
		conditions = append(conditions, squirrel.Eq{"is_active": true})
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").
		From("hostels").
		Where(conditions).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count hostels query: %w", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting hostels: %w", err)
	}

	query := r.sb.Select(hostelColumns...).
		From("hostels").
		Where(conditions).
		OrderBy("name")
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Limit(uint64(filter.PageSize)).Offset(uint64((page - 1) * filter.PageSize))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list hostels query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing hostels: %w", err)
	}
	defer rows.Close()

	var hostels []*models.Hostel
	for rows.Next() {
		hostel, err := scanHostel(rows)
		if err != nil {
			return nil, 0, err
		}
		hostels = append(hostels, hostel)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return hostels, total, nil
}

// Update updates an existing hostel. Available room count is not touched
// here, only the allocation engine moves it.
func (r *HostelRepository) Update(ctx context.Context, hostel *models.Hostel) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE hostels
		SET name = $1, hostel_type = $2, address_line1 = $3, address_line2 = $4,
			city = $5, state = $6, pincode = $7, contact_email = $8,
			contact_number = $9, total_rooms = $10, rent_per_month = $11,
			security_deposit = $12, wifi = $13, laundry = $14, mess = $15,
			gym = $16, parking = $17, ac_rooms_available = $18, is_active = $19,
			updated_at = NOW()
		WHERE id = $20`,
		hostel.Name, hostel.HostelType, hostel.AddressLine1, hostel.AddressLine2,
		hostel.City, hostel.State, hostel.Pincode, hostel.ContactEmail,
		hostel.ContactNumber, hostel.TotalRooms, hostel.RentPerMonth,
		hostel.SecurityDeposit, hostel.Wifi, hostel.Laundry, hostel.Mess,
		hostel.Gym, hostel.Parking, hostel.ACRoomsAvailable, hostel.IsActive,
		hostel.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "hostels_institute_name_key") {
			return apperrors.ErrHostelAlreadyExists
		}
		return fmt.Errorf("error updating hostel: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrHostelNotFound
	}

	return nil
}

// AddImage stores an uploaded hostel image record
func (r *HostelRepository) AddImage(ctx context.Context, image *models.HostelImage) error {
	// A new primary image demotes the existing one
	if image.IsPrimary {
		_, err := r.db.Exec(ctx, `
			UPDATE hostel_images SET is_primary = false WHERE hostel_id = $1`,
			image.HostelID)
		if err != nil {
			return fmt.Errorf("error demoting primary image: %w", err)
		}
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO hostel_images (hostel_id, file_path, file_url, caption, is_primary)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		image.HostelID, image.FilePath, image.FileURL, image.Caption,
		image.IsPrimary).Scan(&image.ID, &image.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating hostel image: %w", err)
	}

	return nil
}

// GetImages retrieves all images of a hostel, primary first
func (r *HostelRepository) GetImages(ctx context.Context, hostelID int64) ([]*models.HostelImage, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, hostel_id, file_path, file_url, caption, is_primary, created_at
		FROM hostel_images
		WHERE hostel_id = $1
		ORDER BY is_primary DESC, created_at`,
		hostelID)
	if err != nil {
		return nil, fmt.Errorf("error listing hostel images: %w", err)
	}
	defer rows.Close()

	var images []*models.HostelImage
	for rows.Next() {
		var image models.HostelImage
		if err := rows.Scan(
			&image.ID, &image.HostelID, &image.FilePath, &image.FileURL,
			&image.Caption, &image.IsPrimary, &image.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, &image)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return images, nil
}

// GetImageByID retrieves a single hostel image
func (r *HostelRepository) GetImageByID(ctx context.Context, imageID int64) (*models.HostelImage, error) {
	var image models.HostelImage
	err := r.db.QueryRow(ctx, `
		SELECT id, hostel_id, file_path, file_url, caption, is_primary, created_at
		FROM hostel_images
		WHERE id = $1`,
		imageID).Scan(
		&image.ID, &image.HostelID, &image.FilePath, &image.FileURL,
		&image.Caption, &image.IsPrimary, &image.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving hostel image: %w", err)
	}

	return &image, nil
}

// DeleteImage removes a hostel image record
func (r *HostelRepository) DeleteImage(ctx context.Context, imageID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM hostel_images WHERE id = $1`, imageID)
	if err != nil {
		return fmt.Errorf("error deleting hostel image: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}
