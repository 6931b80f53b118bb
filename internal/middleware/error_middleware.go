package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arjun/hostelmate/internal/app/models/dto"
	"github.com/arjun/hostelmate/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto HTTP responses. Controllers call
// this for every error coming back from the service layer so the response
// envelope stays uniform.
func HandleAPIError(c *gin.Context, err error) {
	respondError(c, statusFor(err), codeFor(err), messageFor(err))
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.APIResponse{
		Error: dto.NewErrorDetail(code, message),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrInstituteNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrBranchNotFound),
		errors.Is(err, apperrors.ErrDirectorNotFound),
		errors.Is(err, apperrors.ErrHostelNotFound),
		errors.Is(err, apperrors.ErrRoomNotFound),
		errors.Is(err, apperrors.ErrManagerNotFound),
		errors.Is(err, apperrors.ErrApplicationNotFound),
		errors.Is(err, apperrors.ErrAllocationNotFound),
		errors.Is(err, apperrors.ErrPaymentNotFound):
		return http.StatusNotFound

	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenNotFound),
		errors.Is(err, apperrors.ErrTokenRevoked):
		return http.StatusUnauthorized

	case errors.Is(err, apperrors.ErrPermissionDenied),
		errors.Is(err, apperrors.ErrAccountNotActive):
		return http.StatusForbidden

	case errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrEnrollNumberAlreadyExists),
		errors.Is(err, apperrors.ErrRegistrationNumberExists),
		errors.Is(err, apperrors.ErrInstituteAlreadyExists),
		errors.Is(err, apperrors.ErrCourseCodeExists),
		errors.Is(err, apperrors.ErrBranchCodeExists),
		errors.Is(err, apperrors.ErrHostelAlreadyExists),
		errors.Is(err, apperrors.ErrRoomNumberExists),
		errors.Is(err, apperrors.ErrManagerAlreadyActive),
		errors.Is(err, apperrors.ErrHostelAlreadyManaged),
		errors.Is(err, apperrors.ErrActiveApplicationExists),
		errors.Is(err, apperrors.ErrStudentAlreadyAllocated),
		errors.Is(err, apperrors.ErrApplicationLinked),
		errors.Is(err, apperrors.ErrTransactionIDExists),
		errors.Is(err, apperrors.ErrInvalidState),
		errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, apperrors.ErrRoomFull),
		errors.Is(err, apperrors.ErrApplicationNotApproved),
		errors.Is(err, apperrors.ErrAllocationClosed),
		errors.Is(err, apperrors.ErrAlreadyActivated),
		errors.Is(err, apperrors.ErrAllocationStudentMismatch):
		return http.StatusConflict

	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidEmail),
		errors.Is(err, apperrors.ErrInvalidPassword),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrInvalidVerificationCode),
		errors.Is(err, apperrors.ErrVerificationCodeExpired):
		return http.StatusBadRequest

	case errors.Is(err, apperrors.ErrEmailSendFailed):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func codeFor(err error) dto.ErrorCode {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return dto.ErrorCodeInvalidCredentials
	case errors.Is(err, apperrors.ErrInvalidEmail):
		return dto.ErrorCodeInvalidEmail
	case errors.Is(err, apperrors.ErrInvalidPassword):
		return dto.ErrorCodeInvalidPassword
	case errors.Is(err, apperrors.ErrTokenExpired):
		return dto.ErrorCodeExpiredToken
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrTokenRevoked):
		return dto.ErrorCodeInvalidToken
	case errors.Is(err, apperrors.ErrTokenNotFound):
		return dto.ErrorCodeTokenNotFound
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return dto.ErrorCodeForbidden
	case errors.Is(err, apperrors.ErrAccountNotActive):
		return dto.ErrorCodeAccountNotActive
	case errors.Is(err, apperrors.ErrInvalidVerificationCode),
		errors.Is(err, apperrors.ErrVerificationCodeExpired):
		return dto.ErrorCodeInvalidVerificationCode
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		return dto.ErrorCodeValidationFailed
	case errors.Is(err, apperrors.ErrEmailSendFailed):
		return dto.ErrorCodeExternalServiceError
	}

	switch statusFor(err) {
	case http.StatusNotFound:
		return dto.ErrorCodeResourceNotFound
	case http.StatusConflict:
		if errors.Is(err, apperrors.ErrInvalidState) ||
			errors.Is(err, apperrors.ErrInvalidTransition) ||
			errors.Is(err, apperrors.ErrRoomFull) ||
			errors.Is(err, apperrors.ErrApplicationNotApproved) ||
			errors.Is(err, apperrors.ErrAllocationClosed) ||
			errors.Is(err, apperrors.ErrAlreadyActivated) ||
			errors.Is(err, apperrors.ErrAllocationStudentMismatch) {
			return dto.ErrorCodeInvalidState
		}
		return dto.ErrorCodeResourceAlreadyExists
	}
	return dto.ErrorCodeInternalServer
}

func messageFor(err error) string {
	if statusFor(err) == http.StatusInternalServerError {
		// Never leak internals through the envelope.
		return "Internal server error"
	}
	return err.Error()
}
