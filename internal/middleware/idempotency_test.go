package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idempotentRouter(t *testing.T, handlerCalls *int) (*gin.Engine, redismock.ClientMock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rdb, mock := redismock.NewClientMock()
	r := gin.New()
	r.POST("/employees", func(c *gin.Context) {
		c.Set(ContextUserID, "user-1")
		c.Next()
	}, Idempotency(rdb), func(c *gin.Context) {
		*handlerCalls++
		c.JSON(http.StatusCreated, gin.H{"success": true})
	})
	return r, mock
}

func postWithKey(r *gin.Engine, key string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/employees", nil)
	if key != "" {
		req.Header.Set(HeaderIdempotencyKey, key)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_StoresFirstResponse(t *testing.T) {
	calls := 0
	r, mock := idempotentRouter(t, &calls)

	cacheKey := IdempotencyCacheKey("/employees", "user-1", "k1")
	payload, err := json.Marshal(cachedResponse{Status: http.StatusCreated, Body: json.RawMessage(`{"success":true}`)})
	require.NoError(t, err)

	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", idempotencyLockTTL).SetVal(true)
	mock.ExpectSet(cacheKey, payload, idempotencyTTL).SetVal("OK")
	mock.ExpectDel(cacheKey + ":lock").SetVal(1)

	w := postWithKey(r, "k1")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	calls := 0
	r, mock := idempotentRouter(t, &calls)

	cacheKey := IdempotencyCacheKey("/employees", "user-1", "k1")
	mock.ExpectGet(cacheKey).SetVal(`{"status":201,"body":{"success":true,"data":{"id":"x"}}}`)

	w := postWithKey(r, "k1")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
	assert.JSONEq(t, `{"success":true,"data":{"id":"x"}}`, w.Body.String())
	assert.Equal(t, 0, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ConcurrentDuplicate(t *testing.T) {
	calls := 0
	r, mock := idempotentRouter(t, &calls)

	cacheKey := IdempotencyCacheKey("/employees", "user-1", "k1")
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", idempotencyLockTTL).SetVal(false)

	w := postWithKey(r, "k1")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 0, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_NoKeyPassesThrough(t *testing.T) {
	calls := 0
	r, mock := idempotentRouter(t, &calls)

	w := postWithKey(r, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
