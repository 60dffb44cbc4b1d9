package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCarriesDetailsAndRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(RequestIDKey, "req-1")

	Error(c, http.StatusUnprocessableEntity, "Validation failed", map[string]string{"email": "Invalid email address"})

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, false, got["success"])
	assert.Equal(t, "req-1", got["request_id"])
	assert.Equal(t, map[string]interface{}{"email": "Invalid email address"}, got["error"])
}

func TestSuccessOmitsEmptyFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, http.StatusOK, "ok", nil)

	assert.JSONEq(t, `{"success":true,"message":"ok"}`, w.Body.String())
}
