package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjun/hostelmate/internal/app/models"
	"github.com/arjun/hostelmate/internal/pkg/apperrors"
	"github.com/arjun/hostelmate/internal/pkg/dberrors"
)

// Repository handles common user database operations
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		db: db,
	}
}

const userColumns = `id, email, password, first_name, last_name, role_type, is_active,
		created_at, updated_at, last_login_at, verification_code, verification_code_expires_at`

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.RoleType, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
		&user.LastLoginAt, &user.VerificationCode, &user.VerificationCodeExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// CreateUser creates a new user and returns the generated ID. Uniqueness of
// the email is enforced by the users_email_key constraint.
func (r *Repository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (email, password, first_name, last_name, role_type, is_active,
			verification_code, verification_code_expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		user.Email, user.Password, user.FirstName, user.LastName, user.RoleType,
		user.IsActive, user.VerificationCode, user.VerificationCodeExpiresAt).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// CreateUserTx creates a user inside an existing transaction
func (r *Repository) CreateUserTx(ctx context.Context, tx pgx.Tx, user *models.User) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, `
		INSERT INTO users (email, password, first_name, last_name, role_type, is_active,
			verification_code, verification_code_expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		user.Email, user.Password, user.FirstName, user.LastName, user.RoleType,
		user.IsActive, user.VerificationCode, user.VerificationCodeExpiresAt).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetUserByEmail retrieves a user by email
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return scanUser(r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE LOWER(email) = LOWER($1)`,
		email))
}

// GetUserByID retrieves a user by ID
func (r *Repository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return scanUser(r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1`,
		id))
}

// EmailExists checks if an email already exists
func (r *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// SetVerificationCode stores a fresh verification code and its expiry
func (r *Repository) SetVerificationCode(ctx context.Context, userID int64, code string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET verification_code = $1, verification_code_expires_at = $2, updated_at = NOW()
		WHERE id = $3`,
		code, expiresAt, userID)

	if err != nil {
		return fmt.Errorf("error setting verification code: %w", err)
	}

	return nil
}

// ActivateUser marks the account active and clears the verification code
func (r *Repository) ActivateUser(ctx context.Context, userID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users
		SET is_active = true, verification_code = NULL,
			verification_code_expires_at = NULL, updated_at = NOW()
		WHERE id = $1`,
		userID)

	if err != nil {
		return fmt.Errorf("error activating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdatePassword replaces the stored password hash
func (r *Repository) UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users
		SET password = $1, updated_at = NOW()
		WHERE id = $2`,
		hashedPassword, userID)

	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdateLastLogin updates the last login time
func (r *Repository) UpdateLastLogin(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET last_login_at = $1
		WHERE id = $2`,
		time.Now(), userID)

	if err != nil {
		return fmt.Errorf("failed to update last login time: %w", err)
	}

	return nil
}

// UpdateUserProfile updates a user's basic profile information
func (r *Repository) UpdateUserProfile(ctx context.Context, userID int64, firstName, lastName string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users
		SET first_name = $1, last_name = $2, updated_at = NOW()
		WHERE id = $3`,
		firstName, lastName, userID)

	if err != nil {
		return fmt.Errorf("error updating user profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// DeleteUser deletes a user by ID
func (r *Repository) DeleteUser(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
