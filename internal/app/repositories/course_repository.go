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

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(&course.ID, &course.InstituteID, &course.Name, &course.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return &course, nil
}

// Create creates a new course. Codes are unique per institute via the
// courses_institute_code_key constraint.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO courses (institute_id, name, code)
		VALUES ($1, $2, $3)
		RETURNING id`,
		course.InstituteID, course.Name, course.Code).Scan(&course.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_institute_code_key") {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return scanCourse(r.db.QueryRow(ctx, `
		SELECT id, institute_id, name, code
		FROM courses
		WHERE id = $1`,
		id))
}

// GetByInstituteID retrieves all courses of an institute
func (r *CourseRepository) GetByInstituteID(ctx context.Context, instituteID int64) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, institute_id, name, code
		FROM courses
		WHERE institute_id = $1
		ORDER BY code`,
		instituteID)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE courses
		SET name = $1, code = $2
		WHERE id = $3`,
		course.Name, course.Code, course.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_institute_code_key") {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course. Courses referenced by students or applications are
// protected by foreign keys and surface as a conflict.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolationError(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
