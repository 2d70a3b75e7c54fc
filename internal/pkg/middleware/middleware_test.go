package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/footmanhq/dispatch/internal/pkg/logger"
	"github.com/footmanhq/dispatch/internal/pkg/models"
)

func newTestLogger(t *testing.T) *logger.ZapLogger {
	zl, err := logger.NewZapLogger(models.LoggerConfig{Level: "error"})
	assert.NoError(t, err)
	t.Cleanup(func() { _ = zl.Close() })
	return zl
}

func runMiddleware(mw echo.MiddlewareFunc, handler echo.HandlerFunc, headers map[string]string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/requests", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return rec, mw(handler)(c)
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	rec, err := runMiddleware(RequestIDMiddleware(), func(c echo.Context) error {
		assert.NotEmpty(t, c.Get("request_id"))
		return c.NoContent(http.StatusOK)
	}, nil)

	assert.NoError(t, err)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDMiddleware_HonorsIncomingID(t *testing.T) {
	rec, err := runMiddleware(RequestIDMiddleware(), func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, map[string]string{"X-Request-ID": "upstream-id"})

	assert.NoError(t, err)
	assert.Equal(t, "upstream-id", rec.Header().Get("X-Request-ID"))
}

func TestRequestLoggerMiddleware_PassesThrough(t *testing.T) {
	wantErr := errors.New("boom")
	_, err := runMiddleware(RequestLoggerMiddleware(newTestLogger(t)), func(c echo.Context) error {
		return wantErr
	}, nil)

	assert.Equal(t, wantErr, err)
}

func TestPanicRecoveryMiddleware_Recovers(t *testing.T) {
	rec, err := runMiddleware(PanicRecoveryMiddleware(newTestLogger(t)), func(c echo.Context) error {
		panic("handler blew up")
	}, nil)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
}
