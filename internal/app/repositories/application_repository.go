package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjun/hostelmate/internal/app/models"
	"github.com/arjun/hostelmate/internal/pkg/apperrors"
	"github.com/arjun/hostelmate/internal/pkg/dberrors"
)

// ApplicationFilter narrows application list queries
type ApplicationFilter struct {
	InstituteID int64
	StudentID   int64
	HostelID    int64
	Status      string
	Page        int
	PageSize    int
}

// ApplicationRepository handles database operations for hostel applications
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var applicationColumns = []string{
	"id", "student_id", "institute_id", "course_id", "branch_id",
	"preferred_hostel_id", "preferred_room_type", "reason_for_hostel",
	"status", "reviewed_by_id", "remarks_by_reviewer", "submitted_at",
	"reviewed_at", "created_at", "updated_at",
}

func scanApplication(row pgx.Row) (*models.HostelApplication, error) {
	var app models.HostelApplication
	err := row.Scan(
		&app.ID, &app.StudentID, &app.InstituteID, &app.CourseID, &app.BranchID,
		&app.PreferredHostelID, &app.PreferredRoomType, &app.ReasonForHostel,
		&app.Status, &app.ReviewedByID, &app.RemarksByReviewer, &app.SubmittedAt,
		&app.ReviewedAt, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}
	return &app, nil
}

// Create submits a new application. The hostel_applications_open_student_key
// partial index backs the one-open-application-per-student rule.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.HostelApplication) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO hostel_applications (student_id, institute_id, course_id,
			branch_id, preferred_hostel_id, preferred_room_type,
			reason_for_hostel, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		app.StudentID, app.InstituteID, app.CourseID, app.BranchID,
		app.PreferredHostelID, app.PreferredRoomType, app.ReasonForHostel,
		app.Status, app.SubmittedAt).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "hostel_applications_open_student_key") {
			return apperrors.ErrActiveApplicationExists
		}
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.HostelApplication, error) {
	sql, args, err := r.sb.Select(applicationColumns...).
		From("hostel_applications").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get application query: %w", err)
	}

	return scanApplication(r.db.QueryRow(ctx, sql, args...))
}

// GetByIDForUpdate locks the application row inside a transaction so a review
// decision and an allocation link cannot race.
func (r *ApplicationRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*models.HostelApplication, error) {
	sql, args, err := r.sb.Select(applicationColumns...).
		From("hostel_applications").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get application query: %w", err)
	}

	return scanApplication(tx.QueryRow(ctx, sql, args...))
}

// GetOpenByStudentID retrieves the student's open application if one exists
func (r *ApplicationRepository) GetOpenByStudentID(ctx context.Context, studentID int64) (*models.HostelApplication, error) {
	sql, args, err := r.sb.Select(applicationColumns...).
		From("hostel_applications").
		Where(squirrel.Eq{
			"student_id": studentID,
			"status":     []string{"pending", "approved", "waitlisted"},
		}).
		OrderBy("submitted_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build open application query: %w", err)
	}

	return scanApplication(r.db.QueryRow(ctx, sql, args...))
}

// ListByStudentID retrieves all applications of a student, newest first
func (r *ApplicationRepository) ListByStudentID(ctx context.Context, studentID int64) ([]*models.HostelApplication, error) {
	sql, args, err := r.sb.Select(applicationColumns...).
		From("hostel_applications").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("submitted_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var apps []*models.HostelApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return apps, nil
}

// List retrieves a page of applications matching the filter, newest first
func (r *ApplicationRepository) List(ctx context.Context, filter ApplicationFilter) ([]*models.HostelApplication, int, error) {
	conditions := squirrel.And{}
	if filter.InstituteID > 0 {
		conditions = append(conditions, squirrel.Eq{"institute_id": filter.InstituteID})
	}
	if filter.StudentID > 0 {
		conditions = append(conditions, squirrel.Eq{"student_id": filter.StudentID})
	}
	if filter.HostelID > 0 {
		conditions = append(conditions, squirrel.Eq{"preferred_hostel_id": filter.HostelID})
	}
	if filter.Status != "" {
		conditions = append(conditions, squirrel.Eq{"status": filter.Status})
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").
		From("hostel_applications").
		Where(conditions).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count applications query: %w", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting applications: %w", err)
	}

	query := r.sb.Select(applicationColumns...).
		From("hostel_applications").
		Where(conditions).
		OrderBy("submitted_at DESC")
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Limit(uint64(filter.PageSize)).Offset(uint64((page - 1) * filter.PageSize))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var apps []*models.HostelApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, 0, err
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

// UpdateStatus records a review decision. The caller has already validated
// the transition; the WHERE clause on the old status is a concurrency guard.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, from, to models.ApplicationStatus, reviewedByID *int64, remarks *string) error {
	var reviewedAt *time.Time
	now := time.Now()
	if reviewedByID != nil {
		reviewedAt = &now
	}

	cmdTag, err := r.db.Exec(ctx, `
		UPDATE hostel_applications
		SET status = $1, reviewed_by_id = $2, remarks_by_reviewer = $3,
			reviewed_at = $4, updated_at = NOW()
		WHERE id = $5 AND status = $6`,
		to, reviewedByID, remarks, reviewedAt, id, from)
	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInvalidTransition
	}

	return nil
}
