package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjun/hostelmate/internal/app/models/dto"
	"github.com/arjun/hostelmate/internal/pkg/apperrors"
)

func recordError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	HandleAPIError(c, err)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	return recorder, resp
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"hostel not found", apperrors.ErrHostelNotFound, http.StatusNotFound},
		{"wrapped not found", apperrors.NewResourceNotFoundError("image not found"), http.StatusNotFound},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"revoked refresh token", apperrors.ErrTokenRevoked, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"account not active", apperrors.ErrAccountNotActive, http.StatusForbidden},
		{"email taken", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"room full", apperrors.ErrRoomFull, http.StatusConflict},
		{"bad transition", apperrors.ErrInvalidTransition, http.StatusConflict},
		{"allocation closed", apperrors.ErrAllocationClosed, http.StatusConflict},
		{"bad request", apperrors.NewBadRequestError("instituteId is required"), http.StatusBadRequest},
		{"verification code expired", apperrors.ErrVerificationCodeExpired, http.StatusBadRequest},
		{"email send failure", apperrors.ErrEmailSendFailed, http.StatusBadGateway},
		{"unmapped error", errors.New("driver exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, resp := recordError(t, tt.err)
			assert.Equal(t, tt.status, recorder.Code)
			require.NotNil(t, resp.Error)
		})
	}
}

func TestHandleAPIErrorHidesInternals(t *testing.T) {
	_, resp := recordError(t, errors.New("pq: connection refused on 10.0.0.5"))

	require.NotNil(t, resp.Error)
	assert.Equal(t, "Internal server error", resp.Error.Message)
	assert.NotContains(t, resp.Error.Message, "10.0.0.5")
}

func TestHandleAPIErrorKeepsClientMessages(t *testing.T) {
	_, resp := recordError(t, apperrors.NewInvalidStateError("capacity cannot be lower than the current occupancy"))

	require.NotNil(t, resp.Error)
	assert.Equal(t, "capacity cannot be lower than the current occupancy", resp.Error.Message)
}

func TestHandleAPIErrorCodes(t *testing.T) {
	_, resp := recordError(t, apperrors.ErrRoomFull)
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(dto.ErrorCodeInvalidState), string(resp.Error.Code))

	_, resp = recordError(t, apperrors.ErrEmailAlreadyExists)
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(dto.ErrorCodeResourceAlreadyExists), string(resp.Error.Code))

	_, resp = recordError(t, fmt.Errorf("lookup: %w", apperrors.ErrStudentNotFound))
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(dto.ErrorCodeResourceNotFound), string(resp.Error.Code))
}
