package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorUnwrap(t *testing.T) {
	err := NewResourceNotFoundError("hostel not found")

	assert.ErrorIs(t, err, ErrResourceNotFound)
	assert.Equal(t, "hostel not found", err.Error())
}

func TestCustomErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", NewResourceNotFoundError("missing"), ErrResourceNotFound},
		{"conflict", NewConflictError("duplicate"), ErrConflict},
		{"invalid state", NewInvalidStateError("cannot"), ErrInvalidState},
		{"forbidden", NewForbiddenError("denied"), ErrPermissionDenied},
		{"bad request", NewBadRequestError("malformed"), ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestCustomErrorThroughWrapping(t *testing.T) {
	inner := NewInvalidStateError("room has active allocations")
	outer := fmt.Errorf("delete room: %w", inner)

	assert.ErrorIs(t, outer, ErrInvalidState)

	var ce *CustomError
	assert.True(t, errors.As(outer, &ce))
	assert.Equal(t, "room has active allocations", ce.Message)
}
