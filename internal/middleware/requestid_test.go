package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bizflow/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func runRequestID(t *testing.T, incomingID string) (echo.Context, *httptest.ResponseRecorder, *zap.Logger) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	if incomingID != "" {
		req.Header.Set("X-Request-ID", incomingID)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var ctxLogger *zap.Logger
	handler := RequestIDMiddleware(func(c echo.Context) error {
		ctxLogger = logger.FromStdContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, handler(c))
	return c, rec, ctxLogger
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("generates an id and exposes it to the client", func(t *testing.T) {
		c, rec, _ := runRequestID(t, "")

		requestID, ok := c.Get("request_id").(string)
		assert.True(t, ok)
		assert.NotEmpty(t, requestID)
		assert.Equal(t, requestID, rec.Header().Get("X-Request-ID"))
	})

	t.Run("honors an incoming request id", func(t *testing.T) {
		c, rec, _ := runRequestID(t, "client-supplied-id")

		assert.Equal(t, "client-supplied-id", c.Get("request_id"))
		assert.Equal(t, "client-supplied-id", rec.Header().Get("X-Request-ID"))
	})

	t.Run("request context carries the request-scoped logger", func(t *testing.T) {
		// Layers below the handlers resolve their logger from the request
		// context; it must be the same instance the echo context carries,
		// not the global fallback.
		c, _, ctxLogger := runRequestID(t, "")

		echoLogger, ok := c.Get("logger").(*zap.Logger)
		assert.True(t, ok)
		assert.Same(t, echoLogger, ctxLogger)
		assert.NotSame(t, logger.GetLogger(), ctxLogger)
	})
}
