package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjun/hostelmate/internal/app/models"
	"github.com/arjun/hostelmate/internal/pkg/apperrors"
)

// DirectorRepository handles director database operations
type DirectorRepository struct {
	db *pgxpool.Pool
}

// NewDirectorRepository creates a new DirectorRepository
func NewDirectorRepository(db *pgxpool.Pool) *DirectorRepository {
	return &DirectorRepository{
		db: db,
	}
}

const directorColumns = `id, user_id, institute_id, designation, contact_number,
		alternate_contact_number, address, city, state, pincode, start_date, end_date`

func scanDirector(row pgx.Row) (*models.Director, error) {
	var director models.Director
	err := row.Scan(
		&director.ID, &director.UserID, &director.InstituteID, &director.Designation,
		&director.ContactNumber, &director.AlternateContactNumber, &director.Address,
		&director.City, &director.State, &director.Pincode, &director.StartDate,
		&director.EndDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDirectorNotFound
		}
		return nil, fmt.Errorf("error retrieving director: %w", err)
	}
	return &director, nil
}

// CreateDirectorTx creates a director profile inside an existing transaction
func (r *DirectorRepository) CreateDirectorTx(ctx context.Context, tx pgx.Tx, director *models.Director) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO directors (user_id, institute_id, designation, contact_number,
			alternate_contact_number, address, city, state, pincode, start_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		director.UserID, director.InstituteID, director.Designation,
		director.ContactNumber, director.AlternateContactNumber, director.Address,
		director.City, director.State, director.Pincode, director.StartDate).Scan(&director.ID)

	if err != nil {
		return fmt.Errorf("error creating director: %w", err)
	}

	return nil
}

// GetDirectorByUserID retrieves a director by user ID
func (r *DirectorRepository) GetDirectorByUserID(ctx context.Context, userID int64) (*models.Director, error) {
	return scanDirector(r.db.QueryRow(ctx, `
		SELECT `+directorColumns+`
		FROM directors
		WHERE user_id = $1`,
		userID))
}

// GetDirectorByID retrieves a director by primary key
func (r *DirectorRepository) GetDirectorByID(ctx context.Context, id int64) (*models.Director, error) {
	return scanDirector(r.db.QueryRow(ctx, `
		SELECT `+directorColumns+`
		FROM directors
		WHERE id = $1`,
		id))
}

// GetActiveDirectorByInstituteID retrieves the current director of an institute
func (r *DirectorRepository) GetActiveDirectorByInstituteID(ctx context.Context, instituteID int64) (*models.Director, error) {
	return scanDirector(r.db.QueryRow(ctx, `
		SELECT `+directorColumns+`
		FROM directors
		WHERE institute_id = $1 AND end_date IS NULL
		ORDER BY start_date DESC
		LIMIT 1`,
		instituteID))
}
