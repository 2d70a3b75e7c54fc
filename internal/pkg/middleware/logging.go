package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/footmanhq/dispatch/internal/pkg/logger"
)

// RequestLoggerMiddleware logs every HTTP request with latency and outcome.
// Log level follows the response class: 5xx error, 4xx warn, otherwise info.
func RequestLoggerMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)
			latency := time.Since(start)

			status := c.Response().Status
			fields := []logger.Field{
				logger.Int("status", status),
				logger.String("method", c.Request().Method),
				logger.String("path", path),
				logger.String("client_ip", c.RealIP()),
				logger.Duration("latency", latency),
				logger.String("request_id", c.Response().Header().Get(requestIDHeader)),
			}
			if err != nil {
				fields = append(fields, logger.Err(err))
			}

			switch {
			case status >= 500:
				zapLogger.Error("Server error", fields...)
			case status >= 400:
				zapLogger.Warn("Client error", fields...)
			default:
				zapLogger.Info("Request processed", fields...)
			}

			return err
		}
	}
}
