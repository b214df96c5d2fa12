package threat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyText(t *testing.T) {
	tests := []struct {
		name        string
		ability     string
		description string
		wantLabel   string
		wantKind    Kind
	}{
		{
			name:        "stun",
			ability:     "Pyromania",
			description: "Deals damage and stuns the target for 1.5 seconds",
			wantLabel:   "Stun",
			wantKind:    KindHard,
		},
		{
			name:        "suppression beats stun when both appear",
			ability:     "Nether Grasp",
			description: "Suppresses an enemy, then stuns nearby targets",
			wantLabel:   "Suppression",
			wantKind:    KindSuppression,
		},
		{
			name:        "knockup beats slow",
			ability:     "Riptide",
			description: "Knocks up enemies and slows them afterwards",
			wantLabel:   "Knockup",
			wantKind:    KindHard,
		},
		{
			name:        "root synonyms",
			ability:     "Cocoon",
			description: "The first enemy hit is immobilized",
			wantLabel:   "Root",
			wantKind:    KindHard,
		},
		{
			name:        "mobility",
			ability:     "Arcane Shift",
			description: "Ezreal blinks to a nearby location",
			wantLabel:   "Mobility",
			wantKind:    KindHigh,
		},
		{
			name:        "shield",
			ability:     "Eye of the Storm",
			description: "Grants a shield to an allied champion",
			wantLabel:   "Shield",
			wantKind:    KindMedium,
		},
		{
			name:        "sustain",
			ability:     "Transcendent",
			description: "Passively regenerates health over time",
			wantLabel:   "Sustain",
			wantKind:    KindLow,
		},
		{
			name:        "name contributes keywords",
			ability:     "Charm",
			description: "Blows a kiss that damages the first enemy hit",
			wantLabel:   "Charm",
			wantKind:    KindHard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyText(tt.ability, tt.description)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, colorFor(tt.wantKind), got.Color)
		})
	}
}

func TestClassifyTextNoMatch(t *testing.T) {
	assert.Nil(t, ClassifyText("Basic Attack", "Fires an arrow at the target"))
	assert.Nil(t, ClassifyText("", ""))
}

func TestClassifyTextSuppressionMetadata(t *testing.T) {
	got := ClassifyText("Requiem", "Channels, then suppresses the target")
	require.NotNil(t, got)
	assert.True(t, got.QSSOnly)
	require.NotNil(t, got.Cleansable)
	assert.False(t, *got.Cleansable)
}

// Known approximation: the cascade matches substrings, not clauses, so text
// about removing a shield still classifies as Shield.
func TestClassifyTextKeywordCollision(t *testing.T) {
	got := ClassifyText("Steel Tempest", "Destroys any shield the target has")
	require.NotNil(t, got)
	assert.Equal(t, "Shield", got.Label)
}
