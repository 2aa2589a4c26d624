package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON_HidesInternals(t *testing.T) {
	appErr := Wrap(errors.New("pq: connection refused"), CodeDatabaseError, "database", "Database operation failed", http.StatusInternalServerError)

	data, err := json.Marshal(appErr)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "connection refused")
	assert.NotContains(t, string(data), "500")
	assert.Contains(t, string(data), "Database operation failed")
}

func TestAsAppError(t *testing.T) {
	appErr := NewBadRequestError("bad input")

	got, ok := AsAppError(appErr)
	require.True(t, ok)
	assert.Equal(t, appErr, got)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestHandleError_AppError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleError(c, ErrInvalidCredentials)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid username or password", resp.Error.Message)
	assert.Equal(t, CodeInvalidCredentials, resp.Error.Code)
}

func TestHandleError_WrapsUnknownErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleError(c, errors.New("something leaked"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "something leaked")
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	appErr := DatabaseError(cause)

	assert.True(t, Is(appErr, cause))
}
