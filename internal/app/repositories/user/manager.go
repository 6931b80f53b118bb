package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjun/hostelmate/internal/app/models"
	"github.com/arjun/hostelmate/internal/pkg/apperrors"
	"github.com/arjun/hostelmate/internal/pkg/dberrors"
)

// ManagerRepository handles hostel manager database operations
type ManagerRepository struct {
	db *pgxpool.Pool
}

// NewManagerRepository creates a new ManagerRepository
func NewManagerRepository(db *pgxpool.Pool) *ManagerRepository {
	return &ManagerRepository{
		db: db,
	}
}

const managerColumns = `id, user_id, institute_id, hostel_id, designation, contact_number,
		alternate_contact_number, address, city, state, pincode, start_date, end_date`

func scanManager(row pgx.Row) (*models.HostelManager, error) {
	var manager models.HostelManager
	err := row.Scan(
		&manager.ID, &manager.UserID, &manager.InstituteID, &manager.HostelID,
		&manager.Designation, &manager.ContactNumber, &manager.AlternateContactNumber,
		&manager.Address, &manager.City, &manager.State, &manager.Pincode,
		&manager.StartDate, &manager.EndDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrManagerNotFound
		}
		return nil, fmt.Errorf("error retrieving manager: %w", err)
	}
	return &manager, nil
}

// CreateManagerTx creates a manager profile inside an existing transaction.
// The hostel_managers_hostel_active_key index keeps one active manager per hostel.
func (r *ManagerRepository) CreateManagerTx(ctx context.Context, tx pgx.Tx, manager *models.HostelManager) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO hostel_managers (user_id, institute_id, hostel_id, designation,
			contact_number, alternate_contact_number, address, city, state, pincode, start_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		manager.UserID, manager.InstituteID, manager.HostelID, manager.Designation,
		manager.ContactNumber, manager.AlternateContactNumber, manager.Address,
		manager.City, manager.State, manager.Pincode, manager.StartDate).Scan(&manager.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "hostel_managers_hostel_active_key") {
			return apperrors.ErrHostelAlreadyManaged
		}
		return fmt.Errorf("error creating manager: %w", err)
	}

	return nil
}

// GetManagerByID retrieves a manager by primary key
func (r *ManagerRepository) GetManagerByID(ctx context.Context, id int64) (*models.HostelManager, error) {
	return scanManager(r.db.QueryRow(ctx, `
		SELECT `+managerColumns+`
		FROM hostel_managers
		WHERE id = $1`,
		id))
}

// GetManagerByUserID retrieves a manager by user ID
func (r *ManagerRepository) GetManagerByUserID(ctx context.Context, userID int64) (*models.HostelManager, error) {
	return scanManager(r.db.QueryRow(ctx, `
		SELECT `+managerColumns+`
		FROM hostel_managers
		WHERE user_id = $1`,
		userID))
}

// ListManagersByInstitute retrieves all managers of an institute
func (r *ManagerRepository) ListManagersByInstitute(ctx context.Context, instituteID int64) ([]*models.HostelManager, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+managerColumns+`
		FROM hostel_managers
		WHERE institute_id = $1
		ORDER BY start_date DESC`,
		instituteID)
	if err != nil {
		return nil, fmt.Errorf("error listing managers: %w", err)
	}
	defer rows.Close()

	var managers []*models.HostelManager
	for rows.Next() {
		manager, err := scanManager(rows)
		if err != nil {
			return nil, err
		}
		managers = append(managers, manager)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return managers, nil
}

// AssignHostel moves a manager to a hostel, or unassigns with a nil hostel ID
func (r *ManagerRepository) AssignHostel(ctx context.Context, managerID int64, hostelID *int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE hostel_managers
		SET hostel_id = $1
		WHERE id = $2 AND end_date IS NULL`,
		hostelID, managerID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "hostel_managers_hostel_active_key") {
			return apperrors.ErrHostelAlreadyManaged
		}
		return fmt.Errorf("error assigning manager: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrManagerNotFound
	}

	return nil
}

// EndAssignment closes a manager's tenure by setting end_date
func (r *ManagerRepository) EndAssignment(ctx context.Context, managerID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE hostel_managers
		SET end_date = CURRENT_DATE, hostel_id = NULL
		WHERE id = $1 AND end_date IS NULL`,
		managerID)

	if err != nil {
		return fmt.Errorf("error ending manager assignment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrManagerNotFound
	}

	return nil
}
