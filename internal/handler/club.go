package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/studentlife/club-directory/internal/model"
	"github.com/studentlife/club-directory/internal/queue"
	"github.com/studentlife/club-directory/internal/repository"
)

// ClubStore is the persistence surface the club handlers depend on.  It is
// implemented by *repository.ClubRepo and by test doubles.
type ClubStore interface {
	List(ctx context.Context, category string) ([]model.ClubSummary, error)
	Get(ctx context.Context, ref repository.ClubRef) (*model.ClubDetail, error)
	Create(ctx context.Context, in model.ClubInput) (*model.Club, error)
	Update(ctx context.Context, id int64, p model.ClubPatch) (*model.Club, error)
	Deactivate(ctx context.Context, id int64) (string, error)
}

// ClubHandler serves the /api/clubs endpoints.
type ClubHandler struct {
	Store ClubStore
	Audit *queue.Publisher // nil disables audit events
}

// NewClubHandler constructs a ClubHandler.  audit may be nil.
func NewClubHandler(store ClubStore, audit *queue.Publisher) *ClubHandler {
	if store == nil {
		panic("nil store passed to NewClubHandler")
	}
	return &ClubHandler{Store: store, Audit: audit}
}

// storeError maps repository failures onto the envelope.  The raw error
// text is surfaced on 500s, matching the store-diagnostics behavior of the
// rest of the API.
func storeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrClubNotFound):
		return RespondError(c, http.StatusNotFound, "Club not found")
	case errors.Is(err, repository.ErrSlugTaken):
		return RespondError(c, http.StatusConflict, repository.ErrSlugTaken.Error())
	default:
		return RespondError(c, http.StatusInternalServerError, err.Error())
	}
}

// List handles GET /api/clubs with an optional ?category= substring filter.
func (h *ClubHandler) List(c echo.Context) error {
	category := strings.TrimSpace(c.QueryParam("category"))
	items, err := h.Store.List(c.Request().Context(), category)
	if err != nil {
		return storeError(c, err)
	}
	return RespondCollection(c, items, len(items))
}

// Get handles GET /api/clubs/:id where :id is a numeric id or a slug.
func (h *ClubHandler) Get(c echo.Context) error {
	ref := repository.ParseClubRef(c.Param("id"))
	club, err := h.Store.Get(c.Request().Context(), ref)
	if err != nil {
		return storeError(c, err)
	}
	return RespondData(c, http.StatusOK, club)
}

// Create handles POST /api/clubs.  Field validation ran in middleware; the
// handler binds the payload and delegates to the store.
func (h *ClubHandler) Create(c echo.Context) error {
	var in model.ClubInput
	if err := c.Bind(&in); err != nil {
		return RespondError(c, http.StatusBadRequest, "invalid request body")
	}
	club, err := h.Store.Create(c.Request().Context(), in)
	if err != nil {
		return storeError(c, err)
	}
	h.audit(c, "created", club.ID, club.Slug, club.Name)
	return RespondData(c, http.StatusCreated, club)
}

// Update handles PUT /api/clubs/:id.  The id must be numeric here; slugs
// are only accepted on reads.
func (h *ClubHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return RespondError(c, http.StatusBadRequest, "id must be numeric")
	}
	var patch model.ClubPatch
	if err := c.Bind(&patch); err != nil {
		return RespondError(c, http.StatusBadRequest, "invalid request body")
	}
	if patch.IsEmpty() {
		return RespondError(c, http.StatusBadRequest, "No fields to update")
	}
	club, err := h.Store.Update(c.Request().Context(), id, patch)
	if err != nil {
		return storeError(c, err)
	}
	h.audit(c, "updated", club.ID, club.Slug, club.Name)
	return RespondData(c, http.StatusOK, club)
}

// Delete handles DELETE /api/clubs/:id.  Rows are never removed, only
// marked inactive; repeating the call is a no-op that still succeeds.
func (h *ClubHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return RespondError(c, http.StatusBadRequest, "id must be numeric")
	}
	name, err := h.Store.Deactivate(c.Request().Context(), id)
	if err != nil {
		return storeError(c, err)
	}
	h.audit(c, "deactivated", id, "", name)
	return RespondMessage(c, fmt.Sprintf("Club %q deleted successfully", name))
}

// audit publishes a best-effort change event.  Publish failures are logged
// by the publisher and never affect the request outcome.
func (h *ClubHandler) audit(c echo.Context, action string, id int64, slug, name string) {
	if h.Audit == nil {
		return
	}
	_ = h.Audit.Publish(c.Request().Context(), queue.ClubAuditEvent{
		Action:     action,
		ClubID:     id,
		Slug:       slug,
		Name:       name,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
}
