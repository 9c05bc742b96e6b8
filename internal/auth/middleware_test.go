package auth

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(m *JWTManager, trustHeader bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", AuthRequired(m, trustHeader), func(c *gin.Context) {
		c.String(http.StatusOK, strconv.FormatInt(GetUserID(c), 10))
	})
	return r
}

func do(r *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Minute)
	token, err := m.GenerateAccessToken(42)
	require.NoError(t, err)

	id, err := m.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = NewJWTManager("other", time.Minute).ParseAndValidate(token)
	assert.Error(t, err)

	expired, err := NewJWTManager("secret", -time.Minute).GenerateAccessToken(42)
	require.NoError(t, err)
	_, err = m.ParseAndValidate(expired)
	assert.Error(t, err)
}

func TestAuthRequired(t *testing.T) {
	m := NewJWTManager("secret", time.Minute)
	token, err := m.GenerateAccessToken(7)
	require.NoError(t, err)

	t.Run("Bearer", func(t *testing.T) {
		w := do(newTestRouter(m, false), map[string]string{"Authorization": "Bearer " + token})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "7", w.Body.String())
	})

	t.Run("BadBearer", func(t *testing.T) {
		w := do(newTestRouter(m, true), map[string]string{"Authorization": "Bearer nope"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("MalformedAuthorization", func(t *testing.T) {
		w := do(newTestRouter(m, true), map[string]string{"Authorization": token})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("TrustedHeader", func(t *testing.T) {
		w := do(newTestRouter(nil, true), map[string]string{UserIDHeader: "3"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "3", w.Body.String())
	})

	t.Run("InvalidHeader", func(t *testing.T) {
		w := do(newTestRouter(nil, true), map[string]string{UserIDHeader: "abc"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("HeaderIgnoredWhenUntrusted", func(t *testing.T) {
		w := do(newTestRouter(m, false), map[string]string{UserIDHeader: "3"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Missing", func(t *testing.T) {
		w := do(newTestRouter(nil, true), nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
