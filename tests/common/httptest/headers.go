//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertCookieIssued checks the response sets a non-empty HttpOnly cookie and returns its value.
func AssertCookieIssued(t *testing.T, w *httptest.ResponseRecorder, name string) string {
	t.Helper()
	c := ExtractCookie(w, name)
	if !assert.NotNil(t, c, "cookie %s not set", name) {
		return ""
	}
	assert.NotEmpty(t, c.Value)
	assert.True(t, c.HttpOnly, "cookie %s must be HttpOnly", name)
	return c.Value
}
