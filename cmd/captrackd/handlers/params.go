package handlers

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	apierr "github.com/auditline/captrack/pkg/api/types/errors"
)

// intParam reads a path parameter that must be an integer.
//
// The returned error, when not nil, is a 400 ready to surface as-is.
func intParam(c echo.Context, paramKey string) (int, error) {
	raw := c.Param(paramKey)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apierr.BadRequest(
			fmt.Sprintf(`path parameter "%s" should be an integer: %s`, paramKey, raw),
			err,
		)
	}
	return n, nil
}
