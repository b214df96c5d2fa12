package threat

// priority is the total order over all known tags, most threatening first:
// suppression, then hard CC that Cleanse cannot remove, then cleansable hard
// CC, then soft CC, then non-CC threats by severity. Tag-based classification
// iterates this list, so output order is always global priority order no
// matter how the input set is arranged.
var priority = []Tag{
	TagSuppression,
	TagKnockup,
	TagKnockback,
	TagPull,
	TagNearsight,
	TagStun,
	TagRoot,
	TagCharm,
	TagFear,
	TagTaunt,
	TagSleep,
	TagPolymorph,
	TagSilence,
	TagBlind,
	TagDisarm,
	TagCripple,
	TagGround,
	TagSlow,
	TagDash,
	TagBlink,
	TagUntargetable,
	TagStealth,
	TagBurst,
	TagExecute,
	TagShield,
	TagSpellShield,
	TagPoke,
	TagSustain,
	TagHeal,
}

// table maps each known tag to its classification. Classifiers hand out
// clones, never the table entries themselves, so results are safe to hold as
// immutable snapshots.
var table = map[Tag]Classification{
	TagSuppression:  cc(KindSuppression, "Suppression", false, true),
	TagKnockup:      cc(KindHard, "Knockup", false, false),
	TagKnockback:    cc(KindHard, "Knockback", false, false),
	TagPull:         cc(KindHard, "Pull", false, false),
	TagNearsight:    cc(KindHard, "Nearsight", false, false),
	TagStun:         cc(KindHard, "Stun", true, false),
	TagRoot:         cc(KindHard, "Root", true, false),
	TagCharm:        cc(KindHard, "Charm", true, false),
	TagFear:         cc(KindHard, "Fear", true, false),
	TagTaunt:        cc(KindHard, "Taunt", true, false),
	TagSleep:        cc(KindHard, "Sleep", true, false),
	TagPolymorph:    cc(KindHard, "Polymorph", true, false),
	TagSilence:      cc(KindSoft, "Silence", true, false),
	TagBlind:        cc(KindSoft, "Blind", true, false),
	TagDisarm:       cc(KindSoft, "Disarm", true, false),
	TagCripple:      cc(KindSoft, "Cripple", true, false),
	TagGround:       cc(KindSoft, "Ground", false, false),
	TagSlow:         cc(KindSoft, "Slow", true, false),
	TagDash:         nonCC(KindHigh, "Mobility"),
	TagBlink:        nonCC(KindHigh, "Mobility"),
	TagUntargetable: nonCC(KindHigh, "Untargetable"),
	TagStealth:      nonCC(KindHigh, "Stealth"),
	TagBurst:        nonCC(KindHigh, "Burst"),
	TagExecute:      nonCC(KindHigh, "Burst"),
	TagShield:       nonCC(KindMedium, "Shield"),
	TagSpellShield:  nonCC(KindMedium, "Spell Shield"),
	TagPoke:         nonCC(KindMedium, "Poke"),
	TagSustain:      nonCC(KindLow, "Sustain"),
	TagHeal:         nonCC(KindLow, "Sustain"),
}

func cc(kind Kind, label string, cleansable, qssOnly bool) Classification {
	return Classification{
		Kind:       kind,
		Label:      label,
		Cleansable: boolPtr(cleansable),
		QSSOnly:    qssOnly,
		Color:      colorFor(kind),
	}
}

func nonCC(kind Kind, label string) Classification {
	return Classification{
		Kind:  kind,
		Label: label,
		Color: colorFor(kind),
	}
}

// Lookup returns the classification for a known tag.
func Lookup(tag Tag) (Classification, bool) {
	c, ok := table[tag]
	return c, ok
}
