package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"bizflow/pkg/config"
	"bizflow/pkg/jwtutil"
	"bizflow/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	prometheus.InitMetrics(&config.Config{Metrics: config.MetricsConfig{Prefix: "bizflow_mw_test"}})
	jwtutil.Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})
	os.Exit(m.Run())
}

func runAuth(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := AuthMiddleware(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, handler(c))
	return c, rec, reached
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("valid token reaches the handler with the tenant set", func(t *testing.T) {
		token, err := jwtutil.GenerateToken("admin", 7)
		assert.NoError(t, err)

		c, rec, reached := runAuth(t, "Bearer "+token)

		assert.True(t, reached)
		assert.Equal(t, http.StatusOK, rec.Code)
		tenantID, ok := TenantID(c)
		assert.True(t, ok)
		assert.Equal(t, uint(7), tenantID)
		assert.Equal(t, "admin", c.Get("username"))
	})

	t.Run("missing header yields 401", func(t *testing.T) {
		_, rec, reached := runAuth(t, "")
		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-bearer header yields 401", func(t *testing.T) {
		_, rec, reached := runAuth(t, "Basic dXNlcjpwYXNz")
		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("tampered token yields 401", func(t *testing.T) {
		token, err := jwtutil.GenerateToken("admin", 7)
		assert.NoError(t, err)

		_, rec, reached := runAuth(t, "Bearer "+token+"x")
		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestTenantID_Unauthenticated(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	tenantID, ok := TenantID(c)
	assert.False(t, ok)
	assert.Equal(t, uint(0), tenantID)
}
