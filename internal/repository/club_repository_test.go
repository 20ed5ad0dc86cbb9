package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The listing's next_event and the detail's upcoming_events apply
// different cancellation filters.  Both behaviors are intentional until
// unified, so pin them here.
func TestEventSubqueryFilters(t *testing.T) {
	assert.Contains(t, nextEventSubquery, "e.start_at > NOW()")
	assert.Contains(t, nextEventSubquery, "e.is_cancelled = FALSE")

	assert.Contains(t, upcomingEventsSubquery, "e.start_at > NOW()")
	assert.NotContains(t, upcomingEventsSubquery, "is_cancelled = FALSE",
		"the detail view keeps cancelled events and only filters on start time")
}

func TestCategoriesSubqueryDefaultsToEmptyArray(t *testing.T) {
	assert.True(t, strings.HasPrefix(categoriesSubquery, "COALESCE("))
	assert.Contains(t, categoriesSubquery, "'[]'")
	assert.Contains(t, categoriesSubquery, "ORDER BY cat.name")
}
