//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"retreat-api/internal/handler/middleware"
	"retreat-api/internal/pkg/clock"
	"retreat-api/internal/pkg/config"
	"retreat-api/internal/pkg/cookie"
	"retreat-api/internal/pkg/jwt"
	"retreat-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionRouter(t *testing.T, svc *jwt.Service) (*gin.Engine, *uuid.UUID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seen uuid.UUID
	r := gin.New()
	r.Use(middleware.NewSessionMiddleware(svc, config.NewTestConfig().Cookie).EnsureSession())
	r.GET("/whoami", func(c *gin.Context) {
		id, ok := middleware.GetClientID(c)
		require.True(t, ok)
		seen = id
		c.Status(http.StatusNoContent)
	})
	return r, &seen
}

func TestEnsureSession_IssuesCookie(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour, clock.NewRealClock())
	r, seen := newSessionRouter(t, svc)

	w := httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	token := httptest.AssertCookieIssued(t, w, cookie.SessionCookieName)

	id, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, *seen)
}

func TestEnsureSession_ReusesValidCookie(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour, clock.NewRealClock())
	r, seen := newSessionRouter(t, svc)

	clientID := uuid.New()
	token, err := svc.GenerateToken(clientID)
	require.NoError(t, err)

	w := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/whoami", nil,
		[]*http.Cookie{{Name: cookie.SessionCookieName, Value: token}})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Nil(t, httptest.ExtractCookie(w, cookie.SessionCookieName))
	assert.Equal(t, clientID, *seen)
}

func TestEnsureSession_ReplacesInvalidCookie(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour, clock.NewRealClock())
	r, seen := newSessionRouter(t, svc)

	w := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/whoami", nil,
		[]*http.Cookie{{Name: cookie.SessionCookieName, Value: "tampered"}})

	assert.Equal(t, http.StatusNoContent, w.Code)
	token := httptest.AssertCookieIssued(t, w, cookie.SessionCookieName)
	id, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, *seen)
}

func TestGetClientID_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(nil)
	_, ok := middleware.GetClientID(c)
	assert.False(t, ok)
}
