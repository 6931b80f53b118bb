package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjun/hostelmate/internal/pkg/apperrors"
)

// PasswordResetTokenRepository manages single-use password reset tokens
type PasswordResetTokenRepository struct {
	db *pgxpool.Pool
}

// NewPasswordResetTokenRepository creates a new PasswordResetTokenRepository
func NewPasswordResetTokenRepository(db *pgxpool.Pool) *PasswordResetTokenRepository {
	return &PasswordResetTokenRepository{
		db: db,
	}
}

// CreateToken stores a new password reset token. Any earlier unused tokens of
// the user are invalidated first so only the latest emailed link works.
func (r *PasswordResetTokenRepository) CreateToken(ctx context.Context, userID int64, token string, expiryDate time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE password_reset_tokens
		SET used = true
		WHERE user_id = $1 AND used = false`,
		userID)
	if err != nil {
		return fmt.Errorf("error invalidating earlier reset tokens: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO password_reset_tokens (user_id, token, expiry_date)
		VALUES ($1, $2, $3)`,
		userID, token, expiryDate)
	if err != nil {
		return fmt.Errorf("error creating password reset token: %w", err)
	}

	return nil
}

// GetTokenInfo retrieves user ID, expiry date and used flag for a token
func (r *PasswordResetTokenRepository) GetTokenInfo(ctx context.Context, token string) (int64, time.Time, bool, error) {
	var userID int64
	var expiryDate time.Time
	var used bool

	err := r.db.QueryRow(ctx, `
		SELECT user_id, expiry_date, used
		FROM password_reset_tokens
		WHERE token = $1`,
		token).Scan(&userID, &expiryDate, &used)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, time.Time{}, false, apperrors.ErrTokenNotFound
		}
		return 0, time.Time{}, false, fmt.Errorf("error retrieving password reset token: %w", err)
	}

	return userID, expiryDate, used, nil
}

// MarkTokenAsUsed marks a token as used to prevent reuse
func (r *PasswordResetTokenRepository) MarkTokenAsUsed(ctx context.Context, token string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE password_reset_tokens
		SET used = true
		WHERE token = $1`,
		token)
	if err != nil {
		return fmt.Errorf("error marking token as used: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTokenNotFound
	}

	return nil
}

// DeleteExpiredTokens removes all expired tokens
func (r *PasswordResetTokenRepository) DeleteExpiredTokens(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM password_reset_tokens
		WHERE expiry_date < $1`,
		time.Now())
	if err != nil {
		return fmt.Errorf("error deleting expired password reset tokens: %w", err)
	}

	return nil
}
