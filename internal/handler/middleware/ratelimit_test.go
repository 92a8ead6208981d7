//go:build unit

package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"retreat-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newThrottledRouter(throttle *IPThrottle) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.POST("/submit", throttle.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func post(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/submit", nil)
	req.RemoteAddr = ip + ":12345"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIPThrottle_Burst(t *testing.T) {
	current := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	throttle := NewIPThrottle(config.ThrottleConfig{RPS: 1, Burst: 2})
	throttle.now = func() time.Time { return current }
	r := newThrottledRouter(throttle)

	assert.Equal(t, http.StatusNoContent, post(r, "10.0.0.1").Code)
	assert.Equal(t, http.StatusNoContent, post(r, "10.0.0.1").Code)

	w := post(r, "10.0.0.1")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, msgTooManyRequests, body.Error.Message)

	// other addresses have their own bucket
	assert.Equal(t, http.StatusNoContent, post(r, "10.0.0.2").Code)

	current = current.Add(time.Second)
	assert.Equal(t, http.StatusNoContent, post(r, "10.0.0.1").Code)
}

func TestIPThrottle_DropsIdleVisitors(t *testing.T) {
	current := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	throttle := NewIPThrottle(config.ThrottleConfig{RPS: 1, Burst: 1})
	throttle.now = func() time.Time { return current }

	assert.True(t, throttle.allow("10.0.0.1"))
	current = current.Add(time.Hour)
	assert.True(t, throttle.allow("10.0.0.2"))

	throttle.mu.Lock()
	defer throttle.mu.Unlock()
	assert.Len(t, throttle.visitors, 1)
	assert.Contains(t, throttle.visitors, "10.0.0.2")
}

func TestIPThrottle_ForwardedFor(t *testing.T) {
	postVia := func(r *gin.Engine, remote, forwarded string) int {
		req := httptest.NewRequest(http.MethodPost, "/submit", nil)
		req.RemoteAddr = remote + ":12345"
		req.Header.Set("X-Forwarded-For", forwarded)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("untrusted peer cannot pick its bucket", func(t *testing.T) {
		r := newThrottledRouter(NewIPThrottle(config.ThrottleConfig{RPS: 1, Burst: 1}))
		require.NoError(t, r.SetTrustedProxies(nil))

		assert.Equal(t, http.StatusNoContent, postVia(r, "198.51.100.7", "203.0.113.1"))
		for i := 2; i < 20; i++ {
			assert.Equal(t, http.StatusTooManyRequests, postVia(r, "198.51.100.7", fmt.Sprintf("203.0.113.%d", i)))
		}
	})

	t.Run("trusted proxy forwards the client address", func(t *testing.T) {
		r := newThrottledRouter(NewIPThrottle(config.ThrottleConfig{RPS: 1, Burst: 1}))
		require.NoError(t, r.SetTrustedProxies([]string{"10.0.0.0/8"}))

		assert.Equal(t, http.StatusNoContent, postVia(r, "10.0.0.1", "203.0.113.1"))
		assert.Equal(t, http.StatusNoContent, postVia(r, "10.0.0.1", "203.0.113.2"))
		assert.Equal(t, http.StatusTooManyRequests, postVia(r, "10.0.0.1", "203.0.113.1"))
	})
}
