package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterStore_PerClient(t *testing.T) {
	store := newRateLimiterStore(0.001, 2)

	router := gin.New()
	router.Use(store.middleware(discardLogger()))
	router.GET("/v1/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	call := func(ip string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
		req.RemoteAddr = ip + ":1234"
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, call("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))

	// Another client has its own bucket.
	assert.Equal(t, http.StatusNoContent, call("10.0.0.2"))
	assert.Equal(t, 2, store.size())
}

func TestRateLimiterStore_SweepsIdleClients(t *testing.T) {
	now := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	store := newRateLimiterStore(10, 10)
	store.now = func() time.Time { return now }
	store.lastSweep = now

	store.getLimiter("10.0.0.1")
	store.getLimiter("10.0.0.2")
	assert.Equal(t, 2, store.size())

	// Within the sweep interval nothing is dropped.
	now = now.Add(sweepInterval / 2)
	store.getLimiter("10.0.0.2")
	assert.Equal(t, 2, store.size())

	// 10.0.0.1 has been idle past the TTL, 10.0.0.2 was seen recently.
	now = now.Add(limiterIdleTTL - sweepInterval/4)
	store.getLimiter("10.0.0.3")
	assert.Equal(t, 2, store.size())

	_, ok := store.limiters.Load("10.0.0.1")
	assert.False(t, ok)
	_, ok = store.limiters.Load("10.0.0.2")
	assert.True(t, ok)
}
