package repository

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentlife/club-directory/internal/model"
)

func patchFromJSON(t *testing.T, body string) model.ClubPatch {
	t.Helper()
	var p model.ClubPatch
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	return p
}

func TestBuildClubUpdateEmpty(t *testing.T) {
	sets, args := buildClubUpdate(model.ClubPatch{})
	assert.Empty(t, sets)
	assert.Empty(t, args)
}

func TestBuildClubUpdateSingleField(t *testing.T) {
	p := patchFromJSON(t, `{"is_active":false}`)
	sets, args := buildClubUpdate(p)
	assert.Equal(t, []string{"is_active = $1"}, sets)
	assert.Equal(t, []any{false}, args)
}

func TestBuildClubUpdatePlaceholderOrder(t *testing.T) {
	p := patchFromJSON(t, `{"slug":"new-slug","name":"New Name","logo_url":"https://x.test/l.png"}`)
	sets, args := buildClubUpdate(p)

	// assembly order follows the column list, not the JSON key order
	assert.Equal(t, []string{"name = $1", "slug = $2", "logo_url = $3"}, sets)
	assert.Equal(t, []any{"New Name", "new-slug", "https://x.test/l.png"}, args)
}

func TestBuildClubUpdateExplicitNullClears(t *testing.T) {
	p := patchFromJSON(t, `{"description":null,"meeting_day":"Tuesday"}`)
	sets, args := buildClubUpdate(p)
	assert.Equal(t, []string{"description = $1", "meeting_day = $2"}, sets)
	require.Len(t, args, 2)
	assert.Nil(t, args[0])
	assert.Equal(t, "Tuesday", args[1])
}

func TestBuildClubUpdateAllColumns(t *testing.T) {
	p := patchFromJSON(t, `{
		"name":"n","slug":"s","short_name":"sn","description":"d",
		"meeting_day":"Mon","meeting_time":"18:00","meeting_location":"Rm 1",
		"contact_email":"a@b.co","website_url":"https://a.b","logo_url":"https://a.b/l",
		"is_active":true}`)
	sets, args := buildClubUpdate(p)
	assert.Len(t, sets, 11)
	assert.Len(t, args, 11)
	assert.Equal(t, "name = $1", sets[0])
	assert.Equal(t, "is_active = $11", sets[10])
	assert.Equal(t, "name, slug", joinSets([]string{"name", "slug"}))
}
