package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvbakhanovich/shareit/internal/auth"
	"github.com/vvbakhanovich/shareit/internal/pkg/ratelimit"
)

func newTestRouter(cfg Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zerolog.Nop()
	cfg.Logger = &logger
	cfg.TrustUserHeader = true
	return NewRouter(cfg)
}

func get(r *gin.Engine, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		r := newTestRouter(Config{HealthCheck: func(context.Context) error { return nil }})
		w := get(r, "/healthz", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("Unhealthy", func(t *testing.T) {
		r := newTestRouter(Config{HealthCheck: func(context.Context) error { return errors.New("db down") }})
		w := get(r, "/healthz", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestRouter_Metrics(t *testing.T) {
	r := newTestRouter(Config{})
	w := get(r, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_ProtectedRoutesRequireIdentity(t *testing.T) {
	r := newTestRouter(Config{})
	for _, path := range []string{"/bookings", "/bookings/owner", "/items", "/requests/all"} {
		w := get(r, path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestRouter_RateLimit(t *testing.T) {
	// Unparsable ids stop in the handler with 400 once the limiter has let the request through.
	const path = "/bookings/abc"

	t.Run("BearerCallerRotatingHeader", func(t *testing.T) {
		jwtManager := auth.NewJWTManager("secret", time.Hour)
		token, err := jwtManager.GenerateAccessToken(7)
		require.NoError(t, err)

		r := newTestRouter(Config{JWTManager: jwtManager, Limiter: ratelimit.NewMemoryLimiter(1, time.Hour)})

		codes := map[int]int{}
		for i := 1; i <= 5; i++ {
			w := get(r, path, map[string]string{
				"Authorization":   "Bearer " + token,
				auth.UserIDHeader: strconv.Itoa(i),
			})
			codes[w.Code]++
		}
		assert.Equal(t, map[int]int{http.StatusBadRequest: 1, http.StatusTooManyRequests: 4}, codes)
	})

	t.Run("TrustedHeaderPerUser", func(t *testing.T) {
		r := newTestRouter(Config{Limiter: ratelimit.NewMemoryLimiter(1, time.Hour)})

		assert.Equal(t, http.StatusBadRequest, get(r, path, map[string]string{auth.UserIDHeader: "5"}).Code)
		assert.Equal(t, http.StatusTooManyRequests, get(r, path, map[string]string{auth.UserIDHeader: "5"}).Code)
		assert.Equal(t, http.StatusBadRequest, get(r, path, map[string]string{auth.UserIDHeader: "6"}).Code)
	})

	t.Run("RejectedIdentityIsNotCounted", func(t *testing.T) {
		r := newTestRouter(Config{Limiter: ratelimit.NewMemoryLimiter(1, time.Hour)})

		for _, id := range []string{"abc", "xyz", "-1"} {
			w := get(r, path, map[string]string{auth.UserIDHeader: id})
			assert.Equal(t, http.StatusBadRequest, w.Code, id)
			assert.Contains(t, w.Body.String(), auth.UserIDHeader)
		}
		assert.Equal(t, http.StatusBadRequest, get(r, path, map[string]string{auth.UserIDHeader: "5"}).Code)
	})

	t.Run("AnonymousByClientIP", func(t *testing.T) {
		r := newTestRouter(Config{Limiter: ratelimit.NewMemoryLimiter(1, time.Hour)})

		assert.Equal(t, http.StatusBadRequest, get(r, "/users/abc", map[string]string{auth.UserIDHeader: "1"}).Code)
		assert.Equal(t, http.StatusTooManyRequests, get(r, "/users/abc", map[string]string{auth.UserIDHeader: "2"}).Code)
	})
}

func TestCallerKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "10.0.0.1:1234"
	c.Request.Header.Set(auth.UserIDHeader, "99")

	assert.Equal(t, "ip:10.0.0.1", callerKey(c))

	auth.SetUserID(c, 42)
	assert.Equal(t, "user:42", callerKey(c))
}

func TestSplitOrigins(t *testing.T) {
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, splitOrigins(" https://a.example ,https://b.example,"))
	assert.Empty(t, splitOrigins(" , "))
}
