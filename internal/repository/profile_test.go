package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/cv-profiler/internal/entity"
)

func TestBuildUpsert(t *testing.T) {
	p := entity.NewProfile()
	p.PersonalInfo.Name = "Ada Lovelace"
	p.Summary = "Mathematician"
	p.Skills = []string{"Go", "SQL"}

	query, args, err := buildUpsert("user-1", p)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO cv_profiles")
	assert.Contains(t, query, "ON CONFLICT (user_id) DO UPDATE SET")
	assert.Contains(t, query, "updated_at = now()")
	assert.Contains(t, query, "RETURNING id, user_id")
	assert.NotContains(t, query, "created_at = ", "created_at must never be rewritten")
	assert.Contains(t, query, "$13", "placeholders must be numbered dollars")

	require.Len(t, args, 13)
	assert.Equal(t, "user-1", args[0])
	assert.Equal(t, "Ada Lovelace", args[1])

	// List fields travel as JSON bytes for the JSONB columns.
	skills, ok := args[10].([]byte)
	require.True(t, ok)
	assert.JSONEq(t, `["Go","SQL"]`, string(skills))
}

func TestBuildUpsertEmptyProfile(t *testing.T) {
	_, args, err := buildUpsert("user-2", entity.NewProfile())
	require.NoError(t, err)
	require.Len(t, args, 13)

	// Empty lists must serialize as [], never null.
	for _, i := range []int{8, 9, 10, 11, 12} {
		b, ok := args[i].([]byte)
		require.True(t, ok)
		assert.NotEqual(t, "null", string(b))
		assert.True(t, strings.HasPrefix(string(b), "["), "arg %d: %s", i, b)
	}
}

func TestJoinColumns(t *testing.T) {
	assert.Equal(t, "a, b, c", joinColumns([]string{"a", "b", "c"}))
	assert.Equal(t, "a", joinColumns([]string{"a"}))
}
