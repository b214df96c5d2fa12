package threat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityCoversEveryTableEntry(t *testing.T) {
	require.Equal(t, len(table), len(priority), "priority list and table must cover the same vocabulary")

	seen := make(map[Tag]bool)
	for _, tag := range priority {
		assert.False(t, seen[tag], "tag %s listed twice in priority order", tag)
		seen[tag] = true
		_, ok := table[tag]
		assert.True(t, ok, "priority tag %s missing from table", tag)
	}
}

func TestTableInvariants(t *testing.T) {
	for tag, c := range table {
		assert.Equal(t, colorFor(c.Kind), c.Color, "color for %s must derive from kind", tag)

		if c.Kind.IsCC() {
			require.NotNil(t, c.Cleansable, "CC tag %s must carry cleansability", tag)
		} else {
			assert.Nil(t, c.Cleansable, "non-CC tag %s must not carry cleansability", tag)
			assert.False(t, c.QSSOnly, "non-CC tag %s cannot be QSS-only", tag)
		}

		if c.QSSOnly {
			assert.Equal(t, KindSuppression, c.Kind, "only suppression is QSS-only, got %s", tag)
		}
		if c.Kind == KindSuppression {
			assert.True(t, c.QSSOnly)
			assert.False(t, *c.Cleansable)
		}
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Tag
		known bool
	}{
		{name: "canonical", input: "STUN", want: TagStun, known: true},
		{name: "lowercase", input: "knockup", want: TagKnockup, known: true},
		{name: "spaced", input: "spell shield", want: TagSpellShield, known: true},
		{name: "padded", input: "  root ", want: TagRoot, known: true},
		{name: "unknown", input: "BANANA", want: Tag("BANANA"), known: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTag(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, ok)
		})
	}
}
