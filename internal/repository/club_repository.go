package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/studentlife/club-directory/internal/model"
)

// clubColumns is the projection shared by every club read query.  Column
// order must match scanListing.
const clubColumns = `c.id, c.slug, c.name, c.short_name, c.description,
	c.meeting_day, c.meeting_time, c.meeting_location,
	c.contact_email, c.website_url, c.logo_url`

// categoriesSubquery aggregates the linked category names into an ordered
// JSON array, defaulting to [] for clubs with no categories.
const categoriesSubquery = `COALESCE(
	(SELECT JSON_AGG(cat.name ORDER BY cat.name)
	 FROM club_categories cc
	 JOIN categories cat ON cat.id = cc.category_id
	 WHERE cc.club_id = c.id),
	'[]')`

// nextEventSubquery picks the single earliest future event for the club
// listing.  Cancelled events are excluded here but deliberately NOT in
// upcomingEventsSubquery; the two views shipped with different filters
// and both are kept until a product decision unifies them.
const nextEventSubquery = `(SELECT JSON_BUILD_OBJECT(
		'id', e.id,
		'title', e.title,
		'start_at', e.start_at,
		'location', e.location)
	 FROM events e
	 WHERE e.club_id = c.id
	   AND e.start_at > NOW()
	   AND e.is_cancelled = FALSE
	 ORDER BY e.start_at
	 LIMIT 1)`

// upcomingEventsSubquery aggregates every future event for the club detail
// view, cancelled ones included (see nextEventSubquery).
const upcomingEventsSubquery = `COALESCE(
	(SELECT JSON_AGG(JSON_BUILD_OBJECT(
		'id', e.id,
		'title', e.title,
		'description', e.description,
		'start_at', e.start_at,
		'end_at', e.end_at,
		'location', e.location,
		'is_cancelled', e.is_cancelled) ORDER BY e.start_at)
	 FROM events e
	 WHERE e.club_id = c.id AND e.start_at > NOW()),
	'[]')`

// ClubRepo encapsulates all queries against the clubs table and its
// association rows.  It holds a shared connection pool injected at startup.
type ClubRepo struct {
	db *sql.DB
}

// NewClubRepo constructs a ClubRepo around the provided pool.
func NewClubRepo(db *sql.DB) *ClubRepo {
	return &ClubRepo{db: db}
}

// scanListing reads the clubColumns projection into a ClubListing.
func scanListing(scan func(dest ...any) error, l *model.ClubListing, extra ...any) error {
	dest := []any{
		&l.ID, &l.Slug, &l.Name, &l.ShortName, &l.Description,
		&l.MeetingDay, &l.MeetingTime, &l.MeetingLocation,
		&l.ContactEmail, &l.WebsiteURL, &l.LogoURL,
	}
	dest = append(dest, extra...)
	return scan(dest...)
}

// List returns all active clubs ordered by name, each enriched with its
// category names and the next upcoming non-cancelled event.  When category
// is non-empty only clubs with at least one category name containing it
// (case-insensitive) are returned.  The filter is an EXISTS check rather
// than a join so that clubs in several matching categories appear once.
func (r *ClubRepo) List(ctx context.Context, category string) ([]model.ClubSummary, error) {
	q := `SELECT ` + clubColumns + `,
		` + categoriesSubquery + ` AS categories,
		` + nextEventSubquery + ` AS next_event
	FROM clubs c
	WHERE c.is_active = TRUE`

	var args []any
	if category != "" {
		q += `
		AND EXISTS (
			SELECT 1 FROM club_categories cc
			JOIN categories cat ON cat.id = cc.category_id
			WHERE cc.club_id = c.id AND cat.name ILIKE $1)`
		args = append(args, "%"+category+"%")
	}
	q += `
	ORDER BY c.name`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.ClubSummary, 0)
	for rows.Next() {
		var s model.ClubSummary
		var catJSON, evtJSON []byte
		if err := scanListing(rows.Scan, &s.ClubListing, &catJSON, &evtJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(catJSON, &s.Categories); err != nil {
			return nil, fmt.Errorf("decode categories: %w", err)
		}
		if evtJSON != nil {
			s.NextEvent = new(model.EventSummary)
			if err := json.Unmarshal(evtJSON, s.NextEvent); err != nil {
				return nil, fmt.Errorf("decode next_event: %w", err)
			}
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Get fetches a single active club by numeric id or slug, with its category
// names and every future event ordered by start time.  Future events are
// not filtered on is_cancelled here; the listing's next_event is, and both
// behaviors are kept deliberately.  Returns ErrClubNotFound when no active
// row matches.
func (r *ClubRepo) Get(ctx context.Context, ref ClubRef) (*model.ClubDetail, error) {
	where := "c.slug = $1"
	if ref.Numeric {
		where = "c.id = $1"
	}
	q := `SELECT ` + clubColumns + `, c.created_at, c.updated_at,
		` + categoriesSubquery + ` AS categories,
		` + upcomingEventsSubquery + ` AS upcoming_events
	FROM clubs c
	WHERE c.is_active = TRUE AND ` + where

	var d model.ClubDetail
	var catJSON, evtJSON []byte
	err := scanListing(
		r.db.QueryRowContext(ctx, q, ref.arg()).Scan,
		&d.ClubListing, &d.CreatedAt, &d.UpdatedAt, &catJSON, &evtJSON,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(catJSON, &d.Categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	if err := json.Unmarshal(evtJSON, &d.UpcomingEvents); err != nil {
		return nil, fmt.Errorf("decode upcoming_events: %w", err)
	}
	return &d, nil
}

// clubReturning is the full row projection used by INSERT/UPDATE RETURNING.
const clubReturning = `RETURNING id, slug, name, short_name, description,
	meeting_day, meeting_time, meeting_location,
	contact_email, website_url, logo_url, is_active, created_at, updated_at`

func scanClub(scan func(dest ...any) error, cl *model.Club) error {
	return scan(
		&cl.ID, &cl.Slug, &cl.Name, &cl.ShortName, &cl.Description,
		&cl.MeetingDay, &cl.MeetingTime, &cl.MeetingLocation,
		&cl.ContactEmail, &cl.WebsiteURL, &cl.LogoURL,
		&cl.IsActive, &cl.CreatedAt, &cl.UpdatedAt,
	)
}

// Create inserts a new club and links the requested categories by name.
// Category names that do not exist are skipped, and re-linking an already
// linked category is a no-op (ON CONFLICT DO NOTHING).  The club insert is
// not transactional with the link inserts: a failure partway leaves the
// club without some of its links.  Recorded as a known gap pending a
// product decision.  A duplicate slug yields ErrSlugTaken.
func (r *ClubRepo) Create(ctx context.Context, in model.ClubInput) (*model.Club, error) {
	const q = `INSERT INTO clubs (
		slug, name, short_name, description, meeting_day, meeting_time,
		meeting_location, contact_email, website_url, logo_url)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	` + clubReturning

	var cl model.Club
	err := scanClub(r.db.QueryRowContext(ctx, q,
		in.Slug, in.Name, in.ShortName, in.Description,
		in.MeetingDay, in.MeetingTime, in.MeetingLocation,
		in.ContactEmail, in.WebsiteURL, in.LogoURL,
	).Scan, &cl)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}

	const link = `INSERT INTO club_categories (club_id, category_id)
		SELECT $1, id FROM categories WHERE name = $2
		ON CONFLICT DO NOTHING`
	for _, name := range in.Categories {
		if _, err := r.db.ExecContext(ctx, link, cl.ID, name); err != nil {
			return nil, err
		}
	}
	return &cl, nil
}

// Update applies a partial update built from only the fields present in the
// patch.  An explicit null clears the column; absent fields stay as they
// are.  Callers must reject empty patches before reaching this method.
// Returns ErrClubNotFound when the id matches nothing and ErrSlugTaken on a
// duplicate slug.
func (r *ClubRepo) Update(ctx context.Context, id int64, p model.ClubPatch) (*model.Club, error) {
	sets, args := buildClubUpdate(p)
	if len(sets) == 0 {
		return nil, errors.New("empty patch")
	}
	args = append(args, id)

	q := fmt.Sprintf(`UPDATE clubs SET %s WHERE id = $%d %s`,
		joinSets(sets), len(args), clubReturning)

	var cl model.Club
	err := scanClub(r.db.QueryRowContext(ctx, q, args...).Scan, &cl)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClubNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return &cl, nil
}

// Deactivate soft deletes a club by flipping is_active off.  It does not
// check the current state, so a second call succeeds identically.  The
// club's name is returned for the confirmation message.
func (r *ClubRepo) Deactivate(ctx context.Context, id int64) (string, error) {
	const q = `UPDATE clubs SET is_active = FALSE WHERE id = $1 RETURNING name`
	var name string
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrClubNotFound
		}
		return "", err
	}
	return name, nil
}
