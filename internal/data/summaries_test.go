package data

import (
	"testing"

	"league-threats/internal/threat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummariesLoad(t *testing.T) {
	summaries, err := Summaries()
	require.NoError(t, err)
	require.NotEmpty(t, summaries)

	for slug, entry := range summaries {
		assert.Len(t, entry.Abilities, 4, "entry %s must cover Q/W/E/R", slug)
		for i, ability := range entry.Abilities {
			require.NotNil(t, ability.Threat, "entry %s ability %d must be reviewed, not absent", slug, i)
			for _, tag := range ability.Threat {
				_, known := threat.ParseTag(tag)
				assert.True(t, known, "entry %s ability %d carries unknown tag %q", slug, i, tag)
			}
		}
	}
}

func TestSummaryFor(t *testing.T) {
	entry := SummaryFor("Miss Fortune")
	assert.Nil(t, entry, "champions outside the curated set return nil")

	tests := []string{"Blitzcrank", "blitzcrank", "BLITZCRANK"}
	for _, name := range tests {
		entry := SummaryFor(name)
		require.NotNil(t, entry, "lookup %q", name)
		assert.Equal(t, "Blitzcrank", entry.Champion)
		assert.Equal(t, []string{"PULL"}, entry.TagsFor(0))
	}
}
