package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/footmanhq/dispatch/internal/pkg/logger"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack trace
// and returns a 500 so one bad request cannot take the process down.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}

	zapLogger.Error("Panic recovered",
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("request_id", c.Response().Header().Get(requestIDHeader)),
		logger.String("stack", string(debug.Stack())),
		logger.Err(err))

	if c.Response().Committed {
		return
	}

	if writeErr := c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"success": false,
		"error":   "Internal server error",
		"code":    http.StatusInternalServerError,
	}); writeErr != nil {
		zapLogger.Error("Failed to write panic response", logger.Err(writeErr))
	}
}
