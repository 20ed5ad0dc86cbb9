package repository

import (
	"fmt"
	"strings"

	"github.com/studentlife/club-directory/internal/model"
)

// buildClubUpdate assembles the SET clause for a partial club update as an
// ordered list of "column = $n" assignments plus their arguments.  Only
// fields present in the patch contribute; explicit nulls bind as nil.
// Placeholders are numbered from $1, so the caller appends the WHERE
// arguments after these.
func buildClubUpdate(p model.ClubPatch) ([]string, []any) {
	var sets []string
	var args []any
	add := func(column string, arg any) {
		args = append(args, arg)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if p.Name.Set {
		add("name", p.Name.Arg())
	}
	if p.Slug.Set {
		add("slug", p.Slug.Arg())
	}
	if p.ShortName.Set {
		add("short_name", p.ShortName.Arg())
	}
	if p.Description.Set {
		add("description", p.Description.Arg())
	}
	if p.MeetingDay.Set {
		add("meeting_day", p.MeetingDay.Arg())
	}
	if p.MeetingTime.Set {
		add("meeting_time", p.MeetingTime.Arg())
	}
	if p.MeetingLocation.Set {
		add("meeting_location", p.MeetingLocation.Arg())
	}
	if p.ContactEmail.Set {
		add("contact_email", p.ContactEmail.Arg())
	}
	if p.WebsiteURL.Set {
		add("website_url", p.WebsiteURL.Arg())
	}
	if p.LogoURL.Set {
		add("logo_url", p.LogoURL.Arg())
	}
	if p.IsActive.Set {
		add("is_active", p.IsActive.Arg())
	}
	return sets, args
}

func joinSets(sets []string) string {
	return strings.Join(sets, ", ")
}
