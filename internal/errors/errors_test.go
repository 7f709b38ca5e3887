package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_HTTPStatus(t *testing.T) {
	tests := []struct {
		err  *AppError
		want int
	}{
		{NewValidationError("bad"), http.StatusBadRequest},
		{NewTooLargeError("big"), http.StatusBadRequest},
		{NewUnprocessableError("missing"), http.StatusUnprocessableEntity},
		{NewNotFoundError("gone"), http.StatusNotFound},
		{NewExternalError("upstream", fmt.Errorf("boom")), http.StatusBadGateway},
		{NewInternalError("oops", nil), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.err.Type), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestAppError_WrapAndUnwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := fmt.Errorf("saving: %w", NewInternalError("write failed", cause))

	appErr, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, ErrorTypeInternal, appErr.Type)
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsType(err, ErrorTypeInternal))
	assert.False(t, IsType(err, ErrorTypeValidation))
	assert.Equal(t, "INTERNAL: write failed: disk full", appErr.Error())
}
