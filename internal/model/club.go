package model

import "time"

// ClubListing holds the column projection shared by every club read
// endpoint.  Nullable columns map to pointers so that NULL survives the
// round trip to JSON unchanged.  This struct corresponds to the public
// columns of the `clubs` table.
type ClubListing struct {
	ID              int64   `json:"id"`              // clubs.id
	Slug            string  `json:"slug"`            // clubs.slug, unique lowercase-kebab identifier
	Name            string  `json:"name"`            // clubs.name
	ShortName       *string `json:"short_name"`      // clubs.short_name
	Description     *string `json:"description"`     // clubs.description
	MeetingDay      *string `json:"meeting_day"`     // clubs.meeting_day
	MeetingTime     *string `json:"meeting_time"`    // clubs.meeting_time
	MeetingLocation *string `json:"meeting_location"` // clubs.meeting_location
	ContactEmail    *string `json:"contact_email"`   // clubs.contact_email
	WebsiteURL      *string `json:"website_url"`     // clubs.website_url
	LogoURL         *string `json:"logo_url"`        // clubs.logo_url
}

// Club is a full row of the `clubs` table as returned by INSERT/UPDATE
// RETURNING.  Unlike the read projections it exposes the soft-delete flag
// and timestamps.
type Club struct {
	ClubListing
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClubSummary is one element of the club listing: the plain projection
// enriched with the ordered category names and the next upcoming
// (non-cancelled) event, if any.
type ClubSummary struct {
	ClubListing
	Categories []string      `json:"categories"`
	NextEvent  *EventSummary `json:"next_event"`
}

// ClubDetail is the single-club view: timestamps, every category name and
// the full list of future events.  Note that unlike ClubSummary.NextEvent
// the UpcomingEvents list keeps cancelled events; callers get the
// is_cancelled flag per event instead.
type ClubDetail struct {
	ClubListing
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
	Categories     []string    `json:"categories"`
	UpcomingEvents []ClubEvent `json:"upcoming_events"`
}

// ClubInput is the payload accepted by club creation.  Name and Slug are
// mandatory; everything else defaults to NULL.  Categories holds category
// names to link after the insert; names that do not resolve to an existing
// category are ignored.
type ClubInput struct {
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	ShortName       *string  `json:"short_name"`
	Description     *string  `json:"description"`
	MeetingDay      *string  `json:"meeting_day"`
	MeetingTime     *string  `json:"meeting_time"`
	MeetingLocation *string  `json:"meeting_location"`
	ContactEmail    *string  `json:"contact_email"`
	WebsiteURL      *string  `json:"website_url"`
	LogoURL         *string  `json:"logo_url"`
	Categories      []string `json:"categories"`
}
