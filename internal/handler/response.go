// Package handler contains the HTTP handlers and the uniform response
// envelope.  Every outcome, success or failure, is wrapped in
// {"success": bool, ...} so clients branch on a single field.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// RespondData wraps a single resource in the success envelope.
func RespondData(c echo.Context, status int, data any) error {
	return c.JSON(status, echo.Map{
		"success": true,
		"data":    data,
	})
}

// RespondCollection wraps a collection in the success envelope together
// with its element count.
func RespondCollection(c echo.Context, data any, count int) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

// RespondMessage wraps a human-readable confirmation (used by soft delete,
// which has no resource body to return).
func RespondMessage(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": msg,
	})
}

// RespondError writes a single-message error envelope.
func RespondError(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{
		"success": false,
		"error":   msg,
	})
}

// RespondErrors writes the accumulated validation messages as a list.
func RespondErrors(c echo.Context, status int, msgs []string) error {
	return c.JSON(status, echo.Map{
		"success": false,
		"errors":  msgs,
	})
}

// RouteNotFound answers requests that matched no registered route, echoing
// the path back for diagnostics.
func RouteNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, echo.Map{
		"success": false,
		"error":   "Route not found",
		"path":    c.Request().URL.Path,
	})
}

// NewErrorHandler builds the global Echo error handler.  It envelopes
// anything that escaped a handler (panics recovered by middleware, echo's
// own HTTP errors).  Outside production the underlying error text is
// attached for debugging.
func NewErrorHandler(production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status := http.StatusInternalServerError
		msg := "Internal Server Error"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if s, ok := he.Message.(string); ok {
				msg = s
			}
		}
		body := echo.Map{"success": false, "error": msg}
		if !production {
			body["detail"] = err.Error()
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}
