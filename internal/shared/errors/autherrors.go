package errors

import "net/http"

// Authentication-specific error types
const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeUserNotFound       ErrorType = "user_not_found"
	ErrorTypeEmailTaken         ErrorType = "email_taken"
)

// NewInvalidCredentialsError creates an error for a failed password check.
// The message never reveals whether the email or the password was wrong.
func NewInvalidCredentialsError() *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidCredentials,
		Message: "invalid credentials",
		Code:    http.StatusUnauthorized,
	}
}

// NewUserNotFoundError creates an error for a login attempt against an
// unknown email. The wire code is 400, matching the public API contract.
func NewUserNotFoundError() *AppError {
	return &AppError{
		Type:    ErrorTypeUserNotFound,
		Message: "user not found",
		Code:    http.StatusBadRequest,
	}
}

// NewEmailTakenError creates an error for signup with an already registered
// email. The wire code is 400, matching the public API contract.
func NewEmailTakenError() *AppError {
	return &AppError{
		Type:    ErrorTypeEmailTaken,
		Message: "user already exists",
		Code:    http.StatusBadRequest,
	}
}
