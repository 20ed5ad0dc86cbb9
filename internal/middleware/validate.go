// Package middleware holds the request-level checks and cross-cutting
// concerns applied before handlers run.
package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/studentlife/club-directory/internal/handler"
)

var (
	slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
	// emailPattern accepts anything shaped like local@domain.tld; real
	// deliverability checks are out of scope.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// clubPayload is the subset of the body the validator inspects.  Pointers
// distinguish absent keys from blank values.
type clubPayload struct {
	Name         *string `json:"name"`
	Slug         *string `json:"slug"`
	ContactEmail *string `json:"contact_email"`
	WebsiteURL   *string `json:"website_url"`
}

// ValidateClub runs the club payload checks before the handler.  All
// violations accumulate into one list; any violation short-circuits with a
// 400 and the handler never runs.  The body is re-buffered so the handler
// can bind it again.
func ValidateClub(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return handler.RespondError(c, http.StatusBadRequest, "invalid request body")
		}
		c.Request().Body = io.NopCloser(bytes.NewReader(body))

		if errs := validateClubBody(c.Request().Method, body); len(errs) > 0 {
			return handler.RespondErrors(c, http.StatusBadRequest, errs)
		}
		return next(c)
	}
}

func validateClubBody(method string, body []byte) []string {
	var errs []string

	var p clubPayload
	if len(body) > 0 {
		if err := json.Unmarshal(body, &p); err != nil {
			return []string{"Request body must be valid JSON"}
		}
	}

	if method == http.MethodPost {
		if p.Name == nil || strings.TrimSpace(*p.Name) == "" {
			errs = append(errs, "Name is required")
		}
		if p.Slug == nil || strings.TrimSpace(*p.Slug) == "" {
			errs = append(errs, "Slug is required")
		}
		if p.Slug != nil && *p.Slug != "" && !slugPattern.MatchString(*p.Slug) {
			errs = append(errs, "Slug must contain only lowercase letters, numbers, and hyphens")
		}
	}

	if method == http.MethodPut {
		var fields map[string]json.RawMessage
		_ = json.Unmarshal(body, &fields)
		if len(fields) == 0 {
			errs = append(errs, "At least one field must be provided for update")
		}
	}

	if p.ContactEmail != nil && strings.TrimSpace(*p.ContactEmail) != "" {
		if !emailPattern.MatchString(*p.ContactEmail) {
			errs = append(errs, "Invalid email format")
		}
	}
	if p.WebsiteURL != nil && strings.TrimSpace(*p.WebsiteURL) != "" {
		if u, err := url.Parse(*p.WebsiteURL); err != nil || !u.IsAbs() || u.Host == "" {
			errs = append(errs, "Invalid website URL format")
		}
	}
	return errs
}

// RequireRef ensures the :id path segment is present and non-blank.  It
// accepts both numeric ids and slugs; classification happens later, at the
// repository boundary.
func RequireRef(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if strings.TrimSpace(c.Param("id")) == "" {
			return handler.RespondError(c, http.StatusBadRequest, "ID or slug is required")
		}
		return next(c)
	}
}
