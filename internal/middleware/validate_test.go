package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestValidateClubBodyCreateSlugs(t *testing.T) {
	accepted := []string{"chess", "chess-club", "a", "club-42", "42", "-", "a--b"}
	rejected := []string{"Chess", "chess club", "chess_club", "été", "chess!", ""}

	for _, slug := range accepted {
		body, _ := json.Marshal(map[string]string{"name": "X", "slug": slug})
		if errs := validateClubBody(http.MethodPost, body); len(errs) != 0 {
			t.Errorf("slug %q: expected acceptance, got %v", slug, errs)
		}
	}
	for _, slug := range rejected {
		body, _ := json.Marshal(map[string]string{"name": "X", "slug": slug})
		if errs := validateClubBody(http.MethodPost, body); len(errs) == 0 {
			t.Errorf("slug %q: expected rejection", slug)
		}
	}
}

func TestValidateClubBodyCreateRequiredFields(t *testing.T) {
	errs := validateClubBody(http.MethodPost, []byte(`{}`))
	if len(errs) != 2 {
		t.Fatalf("expected name and slug errors, got %v", errs)
	}

	// blank counts as missing
	errs = validateClubBody(http.MethodPost, []byte(`{"name":"  ","slug":"ok"}`))
	if len(errs) != 1 || !strings.Contains(errs[0], "Name") {
		t.Fatalf("expected name error, got %v", errs)
	}
}

func TestValidateClubBodyEmail(t *testing.T) {
	ok := []string{"club@example.com", "a.b@x.co.uk"}
	bad := []string{"not-an-email", "a@b", "a b@c.de", "@x.com"}

	for _, e := range ok {
		body, _ := json.Marshal(map[string]string{"name": "X", "slug": "x", "contact_email": e})
		if errs := validateClubBody(http.MethodPost, body); len(errs) != 0 {
			t.Errorf("email %q: expected acceptance, got %v", e, errs)
		}
	}
	for _, e := range bad {
		body, _ := json.Marshal(map[string]string{"name": "X", "slug": "x", "contact_email": e})
		if errs := validateClubBody(http.MethodPost, body); len(errs) == 0 {
			t.Errorf("email %q: expected rejection", e)
		}
	}

	// blank email is not validated
	body, _ := json.Marshal(map[string]string{"name": "X", "slug": "x", "contact_email": " "})
	if errs := validateClubBody(http.MethodPost, body); len(errs) != 0 {
		t.Errorf("blank email: expected acceptance, got %v", errs)
	}
}

func TestValidateClubBodyWebsiteURL(t *testing.T) {
	ok := []string{"https://clubs.example.edu", "http://x.test/path?q=1"}
	bad := []string{"not a url", "/relative/path", "example.com"}

	for _, u := range ok {
		body, _ := json.Marshal(map[string]string{"name": "X", "slug": "x", "website_url": u})
		if errs := validateClubBody(http.MethodPost, body); len(errs) != 0 {
			t.Errorf("url %q: expected acceptance, got %v", u, errs)
		}
	}
	for _, u := range bad {
		body, _ := json.Marshal(map[string]string{"name": "X", "slug": "x", "website_url": u})
		if errs := validateClubBody(http.MethodPost, body); len(errs) == 0 {
			t.Errorf("url %q: expected rejection", u)
		}
	}
}

func TestValidateClubBodyUpdate(t *testing.T) {
	if errs := validateClubBody(http.MethodPut, []byte(`{}`)); len(errs) == 0 {
		t.Fatal("empty update body: expected rejection")
	}
	if errs := validateClubBody(http.MethodPut, nil); len(errs) == 0 {
		t.Fatal("missing update body: expected rejection")
	}
	if errs := validateClubBody(http.MethodPut, []byte(`{"name":"New"}`)); len(errs) != 0 {
		t.Fatalf("one-field update: expected acceptance, got %v", errs)
	}
	// update does not re-require name/slug but still checks shared formats
	if errs := validateClubBody(http.MethodPut, []byte(`{"contact_email":"bad"}`)); len(errs) == 0 {
		t.Fatal("bad email on update: expected rejection")
	}
}

func TestValidateClubBodyInvalidJSON(t *testing.T) {
	errs := validateClubBody(http.MethodPost, []byte(`{"name":`))
	if len(errs) != 1 {
		t.Fatalf("expected single JSON error, got %v", errs)
	}
}

func TestValidateClubMiddlewareShortCircuits(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/clubs", strings.NewReader(`{"name":"X"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	next := func(c echo.Context) error { called = true; return nil }

	if err := ValidateClub(next)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called {
		t.Fatal("handler ran despite validation errors")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body struct {
		Success bool     `json:"success"`
		Errors  []string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Success || len(body.Errors) == 0 {
		t.Fatalf("unexpected envelope: %+v", body)
	}
}

func TestValidateClubMiddlewareRestoresBody(t *testing.T) {
	e := echo.New()
	payload := `{"name":"Chess Club","slug":"chess-club"}`
	req := httptest.NewRequest(http.MethodPost, "/api/clubs", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	next := func(c echo.Context) error {
		b, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return err
		}
		seen = string(b)
		return nil
	}
	if err := ValidateClub(next)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != payload {
		t.Fatalf("handler saw body %q, want %q", seen, payload)
	}
}

func TestRequireRef(t *testing.T) {
	e := echo.New()

	run := func(id string) (*httptest.ResponseRecorder, bool) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(id)
		called := false
		_ = RequireRef(func(c echo.Context) error { called = true; return nil })(c)
		return rec, called
	}

	if _, called := run("chess-club"); !called {
		t.Fatal("slug ref should pass through")
	}
	if _, called := run("42"); !called {
		t.Fatal("numeric ref should pass through")
	}
	if rec, called := run("  "); called || rec.Code != http.StatusBadRequest {
		t.Fatalf("blank ref: called=%v status=%d", called, rec.Code)
	}
}
