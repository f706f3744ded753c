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

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMarshalJSON_HidesInternals(t *testing.T) {
	cause := errors.New("pq: connection refused")
	appErr := Wrap(cause, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	data, err := json.Marshal(appErr)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "INTERNAL_ERROR", out["code"])
	assert.NotContains(t, string(data), "connection refused")
	assert.NotContains(t, string(data), "500")
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("row not found")
	appErr := ErrNotFound(cause)

	assert.ErrorIs(t, appErr, cause)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}

func TestHandleError_AppError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/settings", nil)

	HandleError(c, NewBadRequestError("Missing UID"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing UID")
}

func TestHandleError_UnknownErrorBecomesGeneric500(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/settings", nil)

	HandleError(c, errors.New("dial tcp: lookup db: no such host"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	assert.NotContains(t, w.Body.String(), "no such host")
}

func TestValidationError_CarriesDetails(t *testing.T) {
	appErr := ValidationError(map[string]string{"email": "Must be a valid email address"})

	data, err := json.Marshal(appErr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Must be a valid email address")
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}
