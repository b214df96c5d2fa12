package threat

import "strings"

// Tag is a curated ability threat tag. The vocabulary is closed: values
// outside it are ignored by the classifiers rather than treated as errors,
// which keeps the engine forward-compatible with new tags appearing in
// curated data before this table learns about them.
type Tag string

const (
	TagSuppression  Tag = "SUPPRESSION"
	TagKnockup      Tag = "KNOCKUP"
	TagKnockback    Tag = "KNOCKBACK"
	TagPull         Tag = "PULL"
	TagNearsight    Tag = "NEARSIGHT"
	TagStun         Tag = "STUN"
	TagRoot         Tag = "ROOT"
	TagCharm        Tag = "CHARM"
	TagFear         Tag = "FEAR"
	TagTaunt        Tag = "TAUNT"
	TagSleep        Tag = "SLEEP"
	TagPolymorph    Tag = "POLYMORPH"
	TagSilence      Tag = "SILENCE"
	TagBlind        Tag = "BLIND"
	TagDisarm       Tag = "DISARM"
	TagCripple      Tag = "CRIPPLE"
	TagGround       Tag = "GROUND"
	TagSlow         Tag = "SLOW"
	TagDash         Tag = "DASH"
	TagBlink        Tag = "BLINK"
	TagUntargetable Tag = "UNTARGETABLE"
	TagStealth      Tag = "STEALTH"
	TagBurst        Tag = "BURST"
	TagExecute      Tag = "EXECUTE"
	TagShield       Tag = "SHIELD"
	TagSpellShield  Tag = "SPELL_SHIELD"
	TagPoke         Tag = "POKE"
	TagSustain      Tag = "SUSTAIN"
	TagHeal         Tag = "HEAL"
)

// ParseTag normalizes a curated tag string to its canonical form. The second
// return value reports whether the tag belongs to the known vocabulary.
func ParseTag(s string) (Tag, bool) {
	t := Tag(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", "_")))
	_, ok := table[t]
	return t, ok
}
