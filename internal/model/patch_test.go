package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldUnmarshalStates(t *testing.T) {
	var p ClubPatch
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Chess Club","description":null}`), &p))

	// present with value
	assert.True(t, p.Name.Set)
	assert.True(t, p.Name.Valid)
	assert.Equal(t, "Chess Club", p.Name.Value)
	assert.Equal(t, "Chess Club", p.Name.Arg())

	// present as explicit null
	assert.True(t, p.Description.Set)
	assert.False(t, p.Description.Valid)
	assert.Nil(t, p.Description.Arg())

	// absent
	assert.False(t, p.Slug.Set)
}

func TestFieldUnmarshalBool(t *testing.T) {
	var p ClubPatch
	require.NoError(t, json.Unmarshal([]byte(`{"is_active":false}`), &p))
	assert.True(t, p.IsActive.Set)
	assert.True(t, p.IsActive.Valid)
	assert.Equal(t, false, p.IsActive.Arg())
}

func TestClubPatchIsEmpty(t *testing.T) {
	var p ClubPatch
	assert.True(t, p.IsEmpty())

	require.NoError(t, json.Unmarshal([]byte(`{"logo_url":"https://x.test/l.png"}`), &p))
	assert.False(t, p.IsEmpty())

	// unrecognized keys alone leave the patch empty
	var q ClubPatch
	require.NoError(t, json.Unmarshal([]byte(`{"bogus":1}`), &q))
	assert.True(t, q.IsEmpty())
}
