package repositories

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

// InstituteRepository handles database operations for institutes
type InstituteRepository struct {
	db *pgxpool.Pool
}

// NewInstituteRepository creates a new institute repository
func NewInstituteRepository(db *pgxpool.Pool) *InstituteRepository {
	return &InstituteRepository{
		db: db,
	}
}

const instituteColumns = `id, name, address, city, state, pincode, contact_email, contact_number, website`

func scanInstitute(row pgx.Row) (*models.Institute, error) {
	var institute models.Institute
	err := row.Scan(
		&institute.ID, &institute.Name, &institute.Address, &institute.City,
		&institute.State, &institute.Pincode, &institute.ContactEmail,
		&institute.ContactNumber, &institute.Website)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInstituteNotFound
		}
		return nil, fmt.Errorf("error retrieving institute: %w", err)
	}
	return &institute, nil
}

// Create creates a new institute. Names are unique case-insensitively via the
// institutes_name_lower_key index.
func (r *InstituteRepository) Create(ctx context.Context, institute *models.Institute) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO institutes (name, address, city, state, pincode, contact_email, contact_number, website)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		institute.Name, institute.Address, institute.City, institute.State,
		institute.Pincode, institute.ContactEmail, institute.ContactNumber,
		institute.Website).Scan(&institute.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "institutes_name_lower_key") {
			return apperrors.ErrInstituteAlreadyExists
		}
		return fmt.Errorf("error creating institute: %w", err)
	}

	return nil
}

// CreateTx creates an institute inside an existing transaction
func (r *InstituteRepository) CreateTx(ctx context.Context, tx pgx.Tx, institute *models.Institute) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO institutes (name, address, city, state, pincode, contact_email, contact_number, website)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		institute.Name, institute.Address, institute.City, institute.State,
		institute.Pincode, institute.ContactEmail, institute.ContactNumber,
		institute.Website).Scan(&institute.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "institutes_name_lower_key") {
			return apperrors.ErrInstituteAlreadyExists
		}
		return fmt.Errorf("error creating institute: %w", err)
	}

	return nil
}

// GetByID retrieves an institute by ID
func (r *InstituteRepository) GetByID(ctx context.Context, id int64) (*models.Institute, error) {
	return scanInstitute(r.db.QueryRow(ctx, `
		SELECT `+instituteColumns+`
		FROM institutes
		WHERE id = $1`,
		id))
}

// GetAll retrieves all institutes ordered by name
func (r *InstituteRepository) GetAll(ctx context.Context) ([]*models.Institute, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+instituteColumns+`
		FROM institutes
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error listing institutes: %w", err)
	}
	defer rows.Close()

	var institutes []*models.Institute
	for rows.Next() {
		institute, err := scanInstitute(rows)
		if err != nil {
			return nil, err
		}
		institutes = append(institutes, institute)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return institutes, nil
}

// NameExists checks case-insensitively whether an institute name is taken,
// excluding the given ID (0 for new institutes)
func (r *InstituteRepository) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM institutes WHERE LOWER(name) = LOWER($1) AND id != $2)`,
		name, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking institute name: %w", err)
	}

	return exists, nil
}

// Update updates an existing institute
func (r *InstituteRepository) Update(ctx context.Context, institute *models.Institute) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE institutes
		SET name = $1, address = $2, city = $3, state = $4, pincode = $5,
			contact_email = $6, contact_number = $7, website = $8
		WHERE id = $9`,
		institute.Name, institute.Address, institute.City, institute.State,
		institute.Pincode, institute.ContactEmail, institute.ContactNumber,
		institute.Website, institute.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "institutes_name_lower_key") {
			return apperrors.ErrInstituteAlreadyExists
		}
		return fmt.Errorf("error updating institute: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstituteNotFound
	}

	return nil
}
