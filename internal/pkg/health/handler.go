package health

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Response is the health check payload
type Response struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

// RegisterHealthEndpoints registers liveness/readiness routes on the router
func RegisterHealthEndpoints(e *echo.Echo, serviceName string) {
	handler := func(c echo.Context) error {
		return c.JSON(http.StatusOK, Response{
			Status:    "ok",
			Service:   serviceName,
			Timestamp: time.Now().UTC(),
		})
	}

	e.GET("/health", handler)
	e.GET("/healthz", handler)
}
