package model

import "encoding/json"

// Field is an optional value for partial updates.  It distinguishes the
// three states a JSON body can express for a key: absent (Set false),
// explicit null (Set true, Valid false) and a concrete value (both true).
// Absent fields are left untouched by an update; an explicit null clears
// the column.
type Field[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// UnmarshalJSON records that the key was present before decoding the value.
// encoding/json only calls this when the key exists in the body, which is
// what makes the Set flag reliable.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if string(b) == "null" {
		f.Valid = false
		return nil
	}
	if err := json.Unmarshal(b, &f.Value); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

// Arg returns the value in a form suitable for a query placeholder:
// the concrete value, or nil for an explicit null.
func (f Field[T]) Arg() any {
	if !f.Valid {
		return nil
	}
	return f.Value
}

// ClubPatch captures a partial update of a club.  Only recognized columns
// appear here; unknown keys in the request body are ignored rather than
// rejected.
type ClubPatch struct {
	Name            Field[string] `json:"name"`
	Slug            Field[string] `json:"slug"`
	ShortName       Field[string] `json:"short_name"`
	Description     Field[string] `json:"description"`
	MeetingDay      Field[string] `json:"meeting_day"`
	MeetingTime     Field[string] `json:"meeting_time"`
	MeetingLocation Field[string] `json:"meeting_location"`
	ContactEmail    Field[string] `json:"contact_email"`
	WebsiteURL      Field[string] `json:"website_url"`
	LogoURL         Field[string] `json:"logo_url"`
	IsActive        Field[bool]   `json:"is_active"`
}

// IsEmpty reports whether no recognized field was present in the body.
// Updates with an empty patch are rejected before any store access.
func (p ClubPatch) IsEmpty() bool {
	return !p.Name.Set && !p.Slug.Set && !p.ShortName.Set && !p.Description.Set &&
		!p.MeetingDay.Set && !p.MeetingTime.Set && !p.MeetingLocation.Set &&
		!p.ContactEmail.Set && !p.WebsiteURL.Set && !p.LogoURL.Set && !p.IsActive.Set
}
