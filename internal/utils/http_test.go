package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		data       interface{}
	}{
		{
			name:       "ok with map data",
			statusCode: http.StatusOK,
			message:    "request retrieved",
			data:       map[string]interface{}{"request_id": "req-1"},
		},
		{
			name:       "created without data",
			statusCode: http.StatusCreated,
			message:    "request created",
			data:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			err := SuccessResponse(c, tt.statusCode, tt.message, tt.data)

			assert.NoError(t, err)
			assert.Equal(t, tt.statusCode, rec.Code)

			var response Response
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.True(t, response.Success)
			assert.Equal(t, tt.message, response.Message)
		})
	}
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name     string
		send     func(echo.Context) error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "bad request",
			send:     func(c echo.Context) error { return BadRequestResponse(c, "missing coordinates") },
			wantCode: http.StatusBadRequest,
			wantMsg:  "missing coordinates",
		},
		{
			name:     "unauthorized default message",
			send:     func(c echo.Context) error { return UnauthorizedResponse(c, "") },
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Unauthorized",
		},
		{
			name:     "not found",
			send:     func(c echo.Context) error { return NotFoundResponse(c, "request not found") },
			wantCode: http.StatusNotFound,
			wantMsg:  "request not found",
		},
		{
			name:     "conflict",
			send:     func(c echo.Context) error { return ConflictResponse(c, "request already accepted") },
			wantCode: http.StatusConflict,
			wantMsg:  "request already accepted",
		},
		{
			name:     "unprocessable",
			send:     func(c echo.Context) error { return UnprocessableResponse(c, "invalid transition") },
			wantCode: http.StatusUnprocessableEntity,
			wantMsg:  "invalid transition",
		},
		{
			name:     "internal error default message",
			send:     func(c echo.Context) error { return InternalServerErrorResponse(c, "") },
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			err := tt.send(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantCode, rec.Code)

			var response ErrorResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.wantMsg, response.Error)
			assert.Equal(t, tt.wantCode, response.Code)
		})
	}
}
