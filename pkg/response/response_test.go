package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, "saved", map[string]int{"person_id": 1})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "saved", resp.Message)
}

func TestValidationError(t *testing.T) {
	w := httptest.NewRecorder()
	ValidationError(w, map[string]string{"IDNumber": "IDNumber must be exactly 10 characters"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Validation failed", resp.Message)
	assert.NotNil(t, resp.Error)
}

func TestChineseTextNotEscaped(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, "ok", map[string]string{"bp_status": "高血壓危象"})

	assert.Contains(t, w.Body.String(), "高血壓危象")
}

func TestErrorHelpersUseDefaultMessages(t *testing.T) {
	tests := []struct {
		name string
		call func(w http.ResponseWriter)
		code int
	}{
		{"not found", func(w http.ResponseWriter) { NotFound(w, "") }, http.StatusNotFound},
		{"bad request", func(w http.ResponseWriter) { BadRequest(w, "") }, http.StatusBadRequest},
		{"method not allowed", func(w http.ResponseWriter) { MethodNotAllowed(w, "") }, http.StatusMethodNotAllowed},
		{"internal", func(w http.ResponseWriter) { InternalServerError(w, "") }, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.call(w)

			assert.Equal(t, tt.code, w.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Message)
		})
	}
}
