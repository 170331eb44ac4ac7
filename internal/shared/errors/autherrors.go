package errors

import (
	stderrors "errors"
	"net/http"
)

// ErrorTypeTooManyAttempts marks a login refused by the rate limiter.
const ErrorTypeTooManyAttempts ErrorType = "too_many_attempts"

// AuthError is an authentication failure with security context.
type AuthError struct {
	*AppError
	// ShouldLog is false for expected failures such as a mistyped password.
	ShouldLog bool
	// SecurityEvent marks failures that feed brute force tracking.
	SecurityEvent bool
}

func (e *AuthError) Error() string {
	return e.AppError.Error()
}

func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError never reveals whether the email or the password
// was wrong.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeUnauthorized,
			Message: "Invalid email or password",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: true,
	}
}

func NewTooManyAttemptsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTooManyAttempts,
			Message: "Too many login attempts. Please wait a few minutes and try again.",
			Code:    http.StatusTooManyRequests,
		},
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// ShouldLogAuthError defaults to true for errors that are not AuthErrors.
func ShouldLogAuthError(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.ShouldLog
	}
	return true
}

func IsSecurityEvent(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.SecurityEvent
	}
	return false
}
