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

// BranchRepository handles database operations for branches
type BranchRepository struct {
	db *pgxpool.Pool
}

// NewBranchRepository creates a new branch repository
func NewBranchRepository(db *pgxpool.Pool) *BranchRepository {
	return &BranchRepository{
		db: db,
	}
}

func scanBranch(row pgx.Row) (*models.Branch, error) {
	var branch models.Branch
	err := row.Scan(&branch.ID, &branch.CourseID, &branch.Name, &branch.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBranchNotFound
		}
		return nil, fmt.Errorf("error retrieving branch: %w", err)
	}
	return &branch, nil
}

// Create creates a new branch. Codes are unique per course via the
// branches_course_code_key constraint.
func (r *BranchRepository) Create(ctx context.Context, branch *models.Branch) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO branches (course_id, name, code)
		VALUES ($1, $2, $3)
		RETURNING id`,
		branch.CourseID, branch.Name, branch.Code).Scan(&branch.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "branches_course_code_key") {
			return apperrors.ErrBranchCodeExists
		}
		return fmt.Errorf("error creating branch: %w", err)
	}

	return nil
}

// GetByID retrieves a branch by ID
func (r *BranchRepository) GetByID(ctx context.Context, id int64) (*models.Branch, error) {
	return scanBranch(r.db.QueryRow(ctx, `
		SELECT id, course_id, name, code
		FROM branches
		WHERE id = $1`,
		id))
}

// GetByCourseID retrieves all branches of a course
func (r *BranchRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Branch, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, course_id, name, code
		FROM branches
		WHERE course_id = $1
		ORDER BY code`,
		courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing branches: %w", err)
	}
	defer rows.Close()

	var branches []*models.Branch
	for rows.Next() {
		branch, err := scanBranch(rows)
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return branches, nil
}

// Update updates an existing branch
func (r *BranchRepository) Update(ctx context.Context, branch *models.Branch) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE branches
		SET name = $1, code = $2
		WHERE id = $3`,
		branch.Name, branch.Code, branch.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "branches_course_code_key") {
			return apperrors.ErrBranchCodeExists
		}
		return fmt.Errorf("error updating branch: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBranchNotFound
	}

	return nil
}

// Delete deletes a branch
func (r *BranchRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolationError(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error deleting branch: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBranchNotFound
	}

	return nil
}
