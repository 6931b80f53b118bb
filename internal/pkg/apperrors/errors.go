package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")
	ErrInvalidState          = errors.New("invalid state")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountNotActive   = errors.New("account is not activated")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrBadRequest       = errors.New("bad request")

	// External collaborator errors
	ErrEmailSendFailed = errors.New("email could not be sent")
)

// User errors
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailAlreadyExists     = errors.New("email already exists")
	ErrInvalidVerificationCode = errors.New("invalid verification code")
	ErrVerificationCodeExpired = errors.New("verification code has expired")
	ErrAlreadyActivated        = errors.New("account already activated")
)

// Student errors
var (
	ErrStudentNotFound            = errors.New("student not found")
	ErrEnrollNumberAlreadyExists  = errors.New("enroll number already in use")
	ErrRegistrationNumberExists   = errors.New("registration number already in use")
)

// Institute hierarchy errors
var (
	ErrInstituteNotFound      = errors.New("institute not found")
	ErrInstituteAlreadyExists = errors.New("institute with this name already exists")
	ErrCourseNotFound         = errors.New("course not found")
	ErrCourseCodeExists       = errors.New("course with this code already exists in the institute")
	ErrBranchNotFound         = errors.New("branch not found")
	ErrBranchCodeExists       = errors.New("branch with this code already exists in the course")
	ErrDirectorNotFound       = errors.New("director not found")
)

// Hostel inventory errors
var (
	ErrHostelNotFound        = errors.New("hostel not found")
	ErrHostelAlreadyExists   = errors.New("hostel with this name already exists in the institute")
	ErrRoomNotFound          = errors.New("room not found")
	ErrRoomNumberExists      = errors.New("room number already exists in the hostel")
	ErrManagerNotFound       = errors.New("hostel manager not found")
	ErrManagerAlreadyActive  = errors.New("user is already an active hostel manager")
	ErrHostelAlreadyManaged  = errors.New("hostel already has a manager assigned")
)

// Application and allocation errors
var (
	ErrApplicationNotFound    = errors.New("hostel application not found")
	ErrActiveApplicationExists = errors.New("active application exists")
	ErrInvalidTransition       = errors.New("status transition not permitted")
	ErrAllocationNotFound      = errors.New("room allocation not found")
	ErrStudentAlreadyAllocated = errors.New("student already has an active allocation")
	ErrRoomFull                = errors.New("room is already at full capacity")
	ErrApplicationNotApproved  = errors.New("hostel application is not approved")
	ErrApplicationLinked       = errors.New("application is already linked to another allocation")
	ErrAllocationClosed        = errors.New("allocation is already closed")
)

// Payment errors
var (
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrTransactionIDExists   = errors.New("transaction ID already recorded")
	ErrAllocationStudentMismatch = errors.New("room allocation does not belong to the student")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewInvalidStateError creates a new custom error for invalid state transitions
func NewInvalidStateError(message string) error {
	return &CustomError{
		Err:     ErrInvalidState,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
