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

func TestNewPaginationMeta(t *testing.T) {
	assert.Equal(t, 3, NewPaginationMeta(101, 1, 50).TotalPages)
	assert.Equal(t, 2, NewPaginationMeta(100, 1, 50).TotalPages)
	assert.Equal(t, 0, NewPaginationMeta(0, 1, 50).TotalPages)
	assert.Equal(t, 0, NewPaginationMeta(10, 1, 0).TotalPages)
}

func TestEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success with pagination", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		meta := NewPaginationMeta(3, 1, 2)

		Success(c, http.StatusOK, []int{1, 2}, &meta)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		assert.Equal(t, []any{float64(1), float64(2)}, body["data"])
		assert.Equal(t, float64(2), body["pagination"].(map[string]any)["totalPages"])
		assert.NotContains(t, body, "message")
	})

	t.Run("error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		Error(c, http.StatusNotFound, "NOT_FOUND", "Employee not found")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Employee not found","code":"NOT_FOUND"}`, w.Body.String())
	})
}
