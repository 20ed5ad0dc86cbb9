package repository

import (
	"context"
	"database/sql"

	"github.com/studentlife/club-directory/internal/model"
)

// CategoryRepo encapsulates read queries against the categories table.
// Categories have no write surface through the API.
type CategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepo constructs a CategoryRepo around the provided pool.
func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// List returns every category with the number of distinct active clubs
// linked to it, ordered by name.  The LEFT JOINs keep categories with no
// clubs in the result with a zero count, and counting c.id (not the join
// row) makes deactivated clubs drop out of the count immediately.
func (r *CategoryRepo) List(ctx context.Context) ([]model.CategoryCount, error) {
	const q = `SELECT
		cat.id, cat.name, cat.description,
		COUNT(DISTINCT c.id) AS club_count
	FROM categories cat
	LEFT JOIN club_categories cc ON cc.category_id = cat.id
	LEFT JOIN clubs c ON c.id = cc.club_id AND c.is_active = TRUE
	GROUP BY cat.id, cat.name, cat.description
	ORDER BY cat.name`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.CategoryCount, 0)
	for rows.Next() {
		var cc model.CategoryCount
		if err := rows.Scan(&cc.ID, &cc.Name, &cc.Description, &cc.ClubCount); err != nil {
			return nil, err
		}
		out = append(out, cc)
	}
	return out, rows.Err()
}

// ClubsByCategory returns the active clubs linked to the given category id,
// ordered by name, using the plain club projection (no category or event
// enrichment).  An unknown category id yields an empty list, not an error.
func (r *CategoryRepo) ClubsByCategory(ctx context.Context, categoryID int64) ([]model.ClubListing, error) {
	const q = `SELECT ` + clubColumns + `
	FROM clubs c
	JOIN club_categories cc ON cc.club_id = c.id
	WHERE cc.category_id = $1 AND c.is_active = TRUE
	ORDER BY c.name`

	rows, err := r.db.QueryContext(ctx, q, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.ClubListing, 0)
	for rows.Next() {
		var l model.ClubListing
		if err := scanListing(rows.Scan, &l); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
