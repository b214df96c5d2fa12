package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Miss Fortune", "missfortune"},
		{"Kai'Sa", "kaisa"},
		{"KAISA", "kaisa"},
		{"Dr. Mundo", "drmundo"},
		{"Wukong", "wukong"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.input))
		})
	}
}

func TestSlotForIndex(t *testing.T) {
	assert.Equal(t, SlotQ, SlotForIndex(0))
	assert.Equal(t, SlotR, SlotForIndex(3))
	assert.Equal(t, Slot(""), SlotForIndex(4))
	assert.Equal(t, Slot(""), SlotForIndex(-1))
}

func TestRoleTagIsValid(t *testing.T) {
	assert.True(t, RoleMarksman.IsValid())
	assert.True(t, RoleSupport.IsValid())
	assert.False(t, RoleTag("Jungler").IsValid())
}

func TestSummaryEntryTagsFor(t *testing.T) {
	entry := &SummaryEntry{
		Champion: "Ashe",
		Abilities: []AbilitySummary{
			{Threat: []string{}},
			{Threat: []string{"SLOW"}},
		},
	}

	assert.Equal(t, []string{"SLOW"}, entry.TagsFor(1))
	assert.NotNil(t, entry.TagsFor(0), "reviewed CC-free ability keeps a non-nil tag list")
	assert.Nil(t, entry.TagsFor(2), "uncovered index yields nil")
	assert.Nil(t, entry.TagsFor(-1))

	var missing *SummaryEntry
	assert.Nil(t, missing.TagsFor(0), "nil entry is safe to query")
}
