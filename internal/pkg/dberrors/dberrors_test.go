package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	assert.True(t, IsDuplicateConstraintError(pgErr, "users_email_key"))
	assert.False(t, IsDuplicateConstraintError(pgErr, "students_enroll_number_key"))

	// Wrapped errors are still recognized
	wrapped := fmt.Errorf("error creating user: %w", pgErr)
	assert.True(t, IsDuplicateConstraintError(wrapped, "users_email_key"))

	assert.False(t, IsDuplicateConstraintError(errors.New("plain error"), "users_email_key"))
	assert.False(t, IsDuplicateConstraintError(nil, "users_email_key"))
}

func TestIsUniqueViolationError(t *testing.T) {
	assert.True(t, IsUniqueViolationError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolationError(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolationError(errors.New("plain error")))
}

func TestIsForeignKeyViolationError(t *testing.T) {
	assert.True(t, IsForeignKeyViolationError(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsForeignKeyViolationError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsForeignKeyViolationError(nil))
}
