package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryStatuses(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidation("bad").HTTPStatus)
	assert.Equal(t, http.StatusNotFound, NewNotFound("contract", "42").HTTPStatus)
	assert.Equal(t, http.StatusUnprocessableEntity, NewInvalidTransition("contract", "pending", "terminated").HTTPStatus)
	assert.Equal(t, http.StatusConflict, NewConflict("busy").HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, NewInternal(errors.New("boom")).HTTPStatus)
}

func TestAsAppErrorThroughWrapping(t *testing.T) {
	inner := NewNotFound("inventory unit", "abc")
	wrapped := fmt.Errorf("load unit: %w", inner)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, appErr.Code)

	assert.True(t, IsNotFound(wrapped))
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus(wrapped))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(errors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := NewValidation("priority out of range").
		WithDetail("field", "priority").
		WithDetail("value", 1000)

	assert.Equal(t, "priority", err.Details["field"])
	assert.Equal(t, 1000, err.Details["value"])
}

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewInternal(cause)

	assert.Contains(t, err.Error(), "connection reset")
	assert.ErrorIs(t, err, cause)
}
