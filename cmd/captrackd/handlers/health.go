package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/auditline/captrack/pkg/utils/rfctime"
)

// Health is the body of GET /health.
type Health struct {
	OK   bool            `json:"ok"`
	Time rfctime.RFC3339 `json:"time"`
}

func HealthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, Health{
			OK:   true,
			Time: rfctime.RFC3339(time.Now().UTC()),
		})
	}
}
