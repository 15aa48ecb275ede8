package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newLimitedHandler(rl *RateLimiter) echo.HandlerFunc {
	return rl.Middleware()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

func doRequest(e *echo.Echo, handler echo.HandlerFunc, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodPost, "/jobs/installments/run", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec.Code
}

func TestRateLimiter_AllowsBurstThenLimits(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(1, 2)
	frozen := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return frozen }
	handler := newLimitedHandler(rl)

	assert.Equal(t, http.StatusOK, doRequest(e, handler, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, doRequest(e, handler, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(e, handler, "10.0.0.1:1234"))

	frozen = frozen.Add(time.Second)
	assert.Equal(t, http.StatusOK, doRequest(e, handler, "10.0.0.1:1234"))
}

func TestRateLimiter_SeparateBudgetsPerIP(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(1, 1)
	frozen := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return frozen }
	handler := newLimitedHandler(rl)

	assert.Equal(t, http.StatusOK, doRequest(e, handler, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(e, handler, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, doRequest(e, handler, "10.0.0.2:1234"))
}

func TestRateLimiter_PrunesIdleVisitors(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(5, 5)
	frozen := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return frozen }
	handler := newLimitedHandler(rl)

	doRequest(e, handler, "10.0.0.1:1234")
	doRequest(e, handler, "10.0.0.2:1234")
	assert.Equal(t, 2, rl.visitorCount())

	frozen = frozen.Add(visitorTTL + time.Minute)
	doRequest(e, handler, "10.0.0.3:1234")
	assert.Equal(t, 1, rl.visitorCount())
}

func TestRateLimiter_NonPositiveSettingsFallBackToOne(t *testing.T) {
	rl := NewRateLimiter(0, -3)
	assert.Equal(t, 1, rl.burst)
	assert.InDelta(t, 1.0, float64(rl.limit), 0.0001)
}

func TestGetIP(t *testing.T) {
	e := echo.New()
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"forwarded for", map[string]string{"X-Forwarded-For": "203.0.113.7"}, "203.0.113.7"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.4"}, "198.51.100.4"},
		{"remote addr", nil, "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.0.2.1:5555"
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, getIP(e.NewContext(req, httptest.NewRecorder())))
		})
	}
}

func TestRateLimiter_ConcurrentAccess(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(1000, 1000)
	handler := newLimitedHandler(rl)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doRequest(e, handler, "10.0.0.9:1234")
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, rl.visitorCount())
}
