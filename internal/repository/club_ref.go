package repository

import (
	"regexp"
	"strconv"
)

// numericRef matches identifiers that are digits only.  Anything else is
// treated as a slug.
var numericRef = regexp.MustCompile(`^\d+$`)

// ClubRef identifies a club either by numeric id or by slug.  The variant
// is decided once at the request boundary so that queries never have to
// re-derive it.
type ClubRef struct {
	ID      int64
	Slug    string
	Numeric bool
}

// ParseClubRef classifies a raw path segment.  "42" becomes a numeric ref,
// "chess-club" (or anything not purely digits) a slug ref.
func ParseClubRef(raw string) ClubRef {
	if numericRef.MatchString(raw) {
		id, _ := strconv.ParseInt(raw, 10, 64)
		return ClubRef{ID: id, Numeric: true}
	}
	return ClubRef{Slug: raw}
}

// arg returns the value to bind for the ref's WHERE clause.
func (r ClubRef) arg() any {
	if r.Numeric {
		return r.ID
	}
	return r.Slug
}
