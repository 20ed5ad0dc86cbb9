package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/studentlife/club-directory/internal/model"
)

// CategoryStore is the persistence surface the category handlers depend
// on.  Implemented by *repository.CategoryRepo.
type CategoryStore interface {
	List(ctx context.Context) ([]model.CategoryCount, error)
	ClubsByCategory(ctx context.Context, categoryID int64) ([]model.ClubListing, error)
}

// CategoryHandler serves the /api/categories endpoints.
type CategoryHandler struct {
	Store CategoryStore
}

// NewCategoryHandler constructs a CategoryHandler.
func NewCategoryHandler(store CategoryStore) *CategoryHandler {
	if store == nil {
		panic("nil store passed to NewCategoryHandler")
	}
	return &CategoryHandler{Store: store}
}

// List handles GET /api/categories: every category with its active-club
// count, zero-club categories included.
func (h *CategoryHandler) List(c echo.Context) error {
	items, err := h.Store.List(c.Request().Context())
	if err != nil {
		return RespondError(c, http.StatusInternalServerError, err.Error())
	}
	return RespondCollection(c, items, len(items))
}

// ClubsByCategory handles GET /api/categories/:id/clubs.  An id that
// matches no category yields an empty collection rather than a 404.
func (h *CategoryHandler) ClubsByCategory(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return RespondError(c, http.StatusBadRequest, "id must be numeric")
	}
	items, err := h.Store.ClubsByCategory(c.Request().Context(), id)
	if err != nil {
		return RespondError(c, http.StatusInternalServerError, err.Error())
	}
	return RespondCollection(c, items, len(items))
}
