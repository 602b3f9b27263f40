package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// each test uses its own client address: the limiter store is per-key and
// shared across the package
func request(target, remoteAddr string) *http.Request {
	req := httptest.NewRequest("GET", target, nil)
	req.RemoteAddr = remoteAddr
	return req
}

func TestRateLimitMiddleware_AllowsUnderLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(10, 2)) // generous rate
	r.GET("/ok", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// two quick requests should pass
	w := httptest.NewRecorder()
	r.ServeHTTP(w, request("/ok", "10.0.0.1:1234"))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, request("/ok", "10.0.0.1:1234"))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, http.StatusOK, w2.Code)
}

func TestRateLimitMiddleware_BlocksWhenExceeded(t *testing.T) {
	r := gin.New()
	// very low rate to force rejections
	r.Use(RateLimitMiddleware(0.5, 1))
	r.GET("/limited", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// first request -> allowed
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, request("/limited", "10.0.0.2:1234"))
	require.Equal(t, http.StatusOK, w1.Code)

	// immediate second request -> should be rate-limited
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, request("/limited", "10.0.0.2:1234"))
	require.Equal(t, http.StatusTooManyRequests, w2.Code)

	// wait long enough to replenish one token and it should be allowed again
	time.Sleep(2100 * time.Millisecond)
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, request("/limited", "10.0.0.2:1234"))
	require.Equal(t, http.StatusOK, w3.Code)
}

func TestRateLimitMiddleware_KeysByClientIP(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(0.5, 1))
	r.GET("/k", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// exhaust the bucket for one client
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, request("/k", "10.0.0.3:1234"))
	require.Equal(t, http.StatusOK, w1.Code)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, request("/k", "10.0.0.3:1234"))
	require.Equal(t, http.StatusTooManyRequests, w2.Code)

	// a different client is unaffected
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, request("/k", "10.0.0.4:1234"))
	require.Equal(t, http.StatusOK, w3.Code)
}
