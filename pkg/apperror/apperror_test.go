package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errCause = errors.New("card not found")

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewNotFound("account", "42"), http.StatusNotFound},
		{"referenced not found", NewReferencedNotFound(errCause), http.StatusNotFound},
		{"invalid input", NewInvalidInput("bad body", nil), http.StatusBadRequest},
		{"unauthorized", NewUnauthorized("bad password", nil), http.StatusUnauthorized},
		{"permission", NewPermissionDenied("other account"), http.StatusForbidden},
		{"already exists", NewAlreadyExists(errCause), http.StatusConflict},
		{"version conflict", NewVersionConflict("account", "42", nil), http.StatusConflict},
		{"internal", NewInternal("db down", errCause), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("handler: %w", NewNotFound("card", "1")), http.StatusNotFound},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToHTTPStatus(tt.err))
		})
	}
}

func TestUnwrapKeepsCause(t *testing.T) {
	err := NewReferencedNotFound(fmt.Errorf("%w: card 7", errCause))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, errCause)
}

func TestToJSON(t *testing.T) {
	body := NewNotFound("profile", "p1").ToJSON()
	assert.Equal(t, "not found", body["error"])
	assert.Contains(t, body["details"], "p1")

	internal := NewInternal("connection refused on 10.0.0.3", errCause).ToJSON()
	assert.NotContains(t, internal, "details")
}

func TestFrom(t *testing.T) {
	appErr := NewConflict("profile", "id", "p1")
	assert.Same(t, appErr, From(fmt.Errorf("wrapped: %w", appErr)))
	assert.ErrorIs(t, From(errors.New("boom")), ErrInternal)
}
