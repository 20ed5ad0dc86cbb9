package model

// EventSummary is the compact "next event" object embedded in club listings.
// It is built inside Postgres with JSON_BUILD_OBJECT and decoded from the
// row, so timestamps stay in the store's JSON rendering.
type EventSummary struct {
	ID       int64   `json:"id"`       // events.id
	Title    string  `json:"title"`    // events.title
	StartAt  string  `json:"start_at"` // events.start_at
	Location *string `json:"location"` // events.location
}

// ClubEvent is a full event row as embedded in the club detail view.
// Cancelled events are included here; consumers filter on IsCancelled.
type ClubEvent struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	StartAt     string  `json:"start_at"`
	EndAt       *string `json:"end_at"`
	Location    *string `json:"location"`
	IsCancelled bool    `json:"is_cancelled"`
}
