package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation(FieldError{Field: "name", Message: "name is required"}), http.StatusBadRequest},
		{"auth", Unauthorized("Unauthorized"), http.StatusUnauthorized},
		{"forbidden", Forbidden("Forbidden"), http.StatusForbidden},
		{"not found", NotFound("Note not found"), http.StatusNotFound},
		{"conflict", Conflict("exists"), http.StatusConflict},
		{"external", External("upload failed", errors.New("timeout")), http.StatusInternalServerError},
		{"unexpected", Unexpected(errors.New("boom")), http.StatusInternalServerError},
		{"plain error", errors.New("plain"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("ctx: %w", NotFound("gone")), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestValidation_MessageFromFirstField(t *testing.T) {
	err := Validation(
		FieldError{Field: "password", Message: "password must be at least 8 characters"},
		FieldError{Field: "name", Message: "name is required"},
	)
	assert.Equal(t, "password must be at least 8 characters", err.Message)
	assert.Len(t, err.Fields, 2)
	assert.True(t, Is(err, KindValidation))
}

func TestUnexpected_HidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := Unexpected(cause)

	assert.Equal(t, "Internal server error", err.Message)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "unexpected", KindOf(err).String())
}
