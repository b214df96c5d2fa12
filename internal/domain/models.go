package domain

import (
	"strings"
	"time"
)

// Slot identifies one of the four ability key bindings. The ultimate is
// always R (ability index 3).
type Slot string

const (
	SlotQ Slot = "Q"
	SlotW Slot = "W"
	SlotE Slot = "E"
	SlotR Slot = "R"
)

// Slots lists the ability slots in cast-bar order.
var Slots = [4]Slot{SlotQ, SlotW, SlotE, SlotR}

// SlotForIndex maps an ability index (0..3) to its key binding.
func SlotForIndex(i int) Slot {
	if i < 0 || i >= len(Slots) {
		return ""
	}
	return Slots[i]
}

// RoleTag is a champion role class from Data Dragon.
type RoleTag string

const (
	RoleFighter  RoleTag = "Fighter"
	RoleTank     RoleTag = "Tank"
	RoleMage     RoleTag = "Mage"
	RoleAssassin RoleTag = "Assassin"
	RoleMarksman RoleTag = "Marksman"
	RoleSupport  RoleTag = "Support"
)

// IsValid checks if a role tag is one Data Dragon emits.
func (r RoleTag) IsValid() bool {
	switch r {
	case RoleFighter, RoleTank, RoleMage, RoleAssassin, RoleMarksman, RoleSupport:
		return true
	}
	return false
}

func (r RoleTag) String() string {
	return string(r)
}

// Ability is one champion spell with its per-rank cooldowns.
type Ability struct {
	Slot        Slot
	Name        string
	Description string
	Cooldowns   []float64
	MaxRank     int
}

// Champion is a read-only view of one champion derived from Data Dragon.
// Abilities are index-aligned to Q/W/E/R.
type Champion struct {
	ID          string // Data Dragon id, e.g. "MissFortune"
	Key         string // numeric key as string, e.g. "21"
	Name        string // display name, e.g. "Miss Fortune"
	Title       string
	Tags        []RoleTag
	Abilities   [4]Ability
	Passive     string
	Version     string
	LastFetchAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AbilitySummary is the curated threat-tag entry for one ability. A non-nil
// empty Threat slice means the ability was reviewed and found CC-free, which
// is a different statement than "not reviewed yet".
type AbilitySummary struct {
	Threat []string `json:"threat"`
}

// SummaryEntry is the curated per-champion dataset entry, index-aligned to
// Q/W/E/R like Champion.Abilities.
type SummaryEntry struct {
	Champion  string           `json:"champion"`
	Abilities []AbilitySummary `json:"abilities"`
}

// TagsFor returns the curated tags for the ability at the given index, or
// nil when the entry does not cover it.
func (e *SummaryEntry) TagsFor(i int) []string {
	if e == nil || i < 0 || i >= len(e.Abilities) {
		return nil
	}
	return e.Abilities[i].Threat
}

// Slug normalizes a champion name for lookups: lowercase, letters and digits
// only. "Kai'Sa", "kaisa" and "KaiSa" all slug to "kaisa".
func Slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
