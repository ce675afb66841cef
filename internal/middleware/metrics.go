package middleware

import (
	"strconv"
	"time"

	"bizflow/prometheus"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request count and latency per method, route and
// status
func MetricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		// c.Path() is the route template, so /api/products/:id stays one
		// label value no matter the concrete id
		method := c.Request().Method
		path := c.Path()
		status := strconv.Itoa(c.Response().Status)

		prometheus.HttpRequestsTotal.WithLabelValues(method, path, status).Inc()
		prometheus.HttpRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())

		return err
	}
}
