package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	mu.Lock()
	visitors = make(map[string]*visitor)
	mu.Unlock()

	e := echo.New()
	handler := RateLimiterWithConfig(5, 5)(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	doRequest := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = ip
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		assert.NoError(t, handler(c))
		return rec
	}

	// Requests within the burst succeed
	for i := 0; i < 5; i++ {
		rec := doRequest("192.168.1.100:12345")
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	// Further requests from the same IP get limited
	rateLimited := false
	for i := 0; i < 20; i++ {
		rec := doRequest("192.168.1.100:12345")
		if rec.Code == http.StatusTooManyRequests {
			rateLimited = true
			break
		}
	}
	assert.True(t, rateLimited, "expected 429 after exhausting the burst")

	// A different IP has its own budget
	rec := doRequest("10.0.0.7:5000")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetIP_HeaderPrecedence(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	req.Header.Set("X-Real-IP", "198.51.100.4")
	c := e.NewContext(req, httptest.NewRecorder())
	assert.Equal(t, "203.0.113.9", getIP(c))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "198.51.100.4")
	c = e.NewContext(req, httptest.NewRecorder())
	assert.Equal(t, "198.51.100.4", getIP(c))
}
