// Package router maps verb+path pairs onto middleware chains and handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/studentlife/club-directory/internal/handler"
	"github.com/studentlife/club-directory/internal/middleware"
)

// RegisterRoutes wires every endpoint of the API onto the Echo instance.
// cache is the response-cache middleware applied to the public read
// endpoints; pass the pass-through variant when caching is off.
func RegisterRoutes(e *echo.Echo, clubs *handler.ClubHandler, categories *handler.CategoryHandler, cache echo.MiddlewareFunc) {
	e.GET("/health", handler.Health)

	RegisterClubs(e, clubs, cache)
	RegisterCategories(e, categories, cache)

	e.RouteNotFound("/*", handler.RouteNotFound)
}

// RegisterClubs registers the /api/clubs endpoints.  Reads attach only the
// id-presence check; writes run the full field validation first.  None of
// the mutation endpoints is protected: any caller can create, update or
// deactivate a club.
// TODO: insert an auth middleware ahead of POST/PUT/DELETE once an
// identity layer lands.
func RegisterClubs(e *echo.Echo, h *handler.ClubHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/api/clubs")

	g.GET("", h.List, cache)
	g.GET("/:id", h.Get, middleware.RequireRef, cache)

	g.POST("", h.Create, middleware.ValidateClub)
	g.PUT("/:id", h.Update, middleware.RequireRef, middleware.ValidateClub)
	g.DELETE("/:id", h.Delete, middleware.RequireRef)
}

// RegisterCategories registers the read-only /api/categories endpoints.
func RegisterCategories(e *echo.Echo, h *handler.CategoryHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/api/categories")

	g.GET("", h.List, cache)
	g.GET("/:id/clubs", h.ClubsByCategory, cache)
}
