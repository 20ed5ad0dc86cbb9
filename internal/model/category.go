package model

// Category corresponds to a row in the `categories` table.  Categories are
// read-only through the API; they are seeded directly in the database.
type Category struct {
	ID          int64   `json:"id"`          // categories.id
	Name        string  `json:"name"`        // categories.name, unique
	Description *string `json:"description"` // categories.description
}

// CategoryCount is a Category plus the number of distinct active clubs
// currently linked to it.  Deactivated clubs drop out of the count
// immediately because the count is computed per request.
type CategoryCount struct {
	Category
	ClubCount int64 `json:"club_count"`
}
