package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_TypesAndCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
		check    func(error) bool
	}{
		{"validation", NewValidationError("title is required"), ErrorTypeValidation, http.StatusBadRequest, IsValidationError},
		{"not found", NewNotFoundError("ticket not found"), ErrorTypeNotFound, http.StatusNotFound, IsNotFoundError},
		{"conflict", NewConflictError("username or email already exists"), ErrorTypeConflict, http.StatusConflict, IsConflictError},
		{"unauthorized", NewUnauthorizedError("invalid email or password"), ErrorTypeUnauthorized, http.StatusUnauthorized, IsUnauthorizedError},
		{"forbidden", NewForbiddenError("access denied"), ErrorTypeForbidden, http.StatusForbidden, IsForbiddenError},
		{"upstream", NewUpstreamError("classifier unavailable"), ErrorTypeUpstream, http.StatusBadGateway, IsUpstreamError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.True(t, tt.check(tt.err))
			assert.True(t, tt.check(fmt.Errorf("wrapped: %w", tt.err)))
		})
	}
}

func TestAppError_ErrorString(t *testing.T) {
	assert.Equal(t, "validation_error: bad input", NewValidationError("bad input").Error())
	assert.Equal(t, "not_found: missing (ticket 7)", NewNotFoundError("missing", "ticket 7").Error())
}

func TestAppError_WithCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewUpstreamError("database unavailable").WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.NotContains(t, err.Error(), "connection refused")
}

func TestGetAppError_PlainError(t *testing.T) {
	assert.Nil(t, GetAppError(stderrors.New("boom")))
	assert.False(t, IsAppError(stderrors.New("boom")))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(stderrors.New("UNIQUE constraint failed: users.email")))
	assert.True(t, IsDuplicateError(stderrors.New(`ERROR: duplicate key value violates unique constraint "users_email_key" (SQLSTATE 23505)`)))
	assert.False(t, IsDuplicateError(stderrors.New("timeout")))
	assert.False(t, IsDuplicateError(nil))
}
