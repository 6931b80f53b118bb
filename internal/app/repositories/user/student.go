package user

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
	"github.com/arjun/hostelmate/internal/pkg/logger"
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var studentColumns = []string{
	"id", "user_id", "institute_id", "course_id", "branch_id", "enroll_number",
	"registration_number", "date_of_birth", "gender", "phone_number",
	"year_of_study", "admission_year", "address_line1", "address_line2",
	"city", "state", "pincode", "is_active_student",
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID, &student.UserID, &student.InstituteID, &student.CourseID,
		&student.BranchID, &student.EnrollNumber, &student.RegistrationNumber,
		&student.DateOfBirth, &student.Gender, &student.PhoneNumber,
		&student.YearOfStudy, &student.AdmissionYear, &student.AddressLine1,
		&student.AddressLine2, &student.City, &student.State, &student.Pincode,
		&student.IsActiveStudent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return &student, nil
}

// CreateStudentTx creates a student profile inside an existing transaction.
// Enroll numbers are unique across all institutes.
func (r *StudentRepository) CreateStudentTx(ctx context.Context, tx pgx.Tx, student *models.Student) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO students (user_id, institute_id, course_id, branch_id, enroll_number,
			registration_number, date_of_birth, gender, phone_number, year_of_study,
			admission_year, address_line1, address_line2, city, state, pincode, is_active_student)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`,
		student.UserID, student.InstituteID, student.CourseID, student.BranchID,
		student.EnrollNumber, student.RegistrationNumber, student.DateOfBirth,
		student.Gender, student.PhoneNumber, student.YearOfStudy, student.AdmissionYear,
		student.AddressLine1, student.AddressLine2, student.City, student.State,
		student.Pincode, student.IsActiveStudent).Scan(&student.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_enroll_number_key") {
			logger.Warn().Str("enrollNumber", student.EnrollNumber).Msg("Duplicate enroll number on student create")
			return apperrors.ErrEnrollNumberAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "students_registration_number_key") {
			return apperrors.ErrRegistrationNumberExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetStudentByID retrieves a student by primary key
func (r *StudentRepository) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	return scanStudent(r.db.QueryRow(ctx, sql, args...))
}

// GetStudentByUserID retrieves a student by user ID
func (r *StudentRepository) GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	return scanStudent(r.db.QueryRow(ctx, sql, args...))
}

// EnrollNumberExists checks if an enroll number already exists
func (r *StudentRepository) EnrollNumberExists(ctx context.Context, enrollNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE enroll_number = $1)`,
		enrollNumber).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking enroll number: %w", err)
	}

	return exists, nil
}

// ListStudentsByInstitute retrieves a page of students for an institute
func (r *StudentRepository) ListStudentsByInstitute(ctx context.Context, instituteID int64, page, pageSize int) ([]*models.Student, int, error) {
	var total int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM students WHERE institute_id = $1`,
		instituteID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"institute_id": instituteID}).
		OrderBy("enroll_number").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// UpdateStudentProfile updates the mutable profile fields of a student
func (r *StudentRepository) UpdateStudentProfile(ctx context.Context, student *models.Student) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE students
		SET course_id = $1, branch_id = $2, date_of_birth = $3, gender = $4,
			phone_number = $5, year_of_study = $6, admission_year = $7,
			address_line1 = $8, address_line2 = $9, city = $10, state = $11, pincode = $12
		WHERE id = $13`,
		student.CourseID, student.BranchID, student.DateOfBirth, student.Gender,
		student.PhoneNumber, student.YearOfStudy, student.AdmissionYear,
		student.AddressLine1, student.AddressLine2, student.City, student.State,
		student.Pincode, student.ID)

	if err != nil {
		return fmt.Errorf("error updating student profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
