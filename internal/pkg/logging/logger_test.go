package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("DefaultsToInfo", func(t *testing.T) {
		logger := NewWithWriter(Config{}, &bytes.Buffer{})
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("ParsesLevel", func(t *testing.T) {
		logger := NewWithWriter(Config{Level: " DEBUG "}, &bytes.Buffer{})
		assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		logger := NewWithWriter(Config{Level: "loud"}, &bytes.Buffer{})
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("JSONFields", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(Config{Env: "test"}, &buf)
		logger.Info().Msg("hello")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "hello", line["message"])
		assert.Equal(t, "test", line["env"])
		assert.Equal(t, "shareit", line["app"])
	})
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := NewWithWriter(Config{}, &buf)

	r := gin.New()
	r.Use(Middleware(logger))
	r.GET("/ping", func(c *gin.Context) {
		zerolog.Ctx(c.Request.Context()).Info().Msg("inside")
		c.Status(http.StatusNoContent)
	})

	t.Run("GeneratesRequestID", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		assert.Contains(t, buf.String(), `"message":"inside"`)
		assert.Contains(t, buf.String(), `"path":"/ping"`)
	})

	t.Run("KeepsIncomingRequestID", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Contains(t, buf.String(), `"request_id":"abc-123"`)
	})
}
