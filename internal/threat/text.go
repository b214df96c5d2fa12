package threat

import "strings"

// textRule binds a set of case-insensitive substrings to the tag emitted when
// any of them appears in an ability's text.
type textRule struct {
	tag      Tag
	keywords []string
}

// textCascade is checked in order and the first matching rule wins, so the
// most threatening interpretation of ambiguous text is preferred. Suppression
// is tested before everything else: an ability that both suppresses and stuns
// must classify as suppression.
var textCascade = []textRule{
	{TagSuppression, []string{"suppress"}},
	{TagKnockup, []string{"knock up", "knocks up", "knocked up", "knockup", "airborne"}},
	{TagKnockback, []string{"knock back", "knocks back", "knocked back", "knockback", "knock aside", "knocks aside"}},
	{TagPull, []string{"pull", "drag", "hook"}},
	{TagNearsight, []string{"nearsight"}},
	{TagStun, []string{"stun"}},
	{TagRoot, []string{"root", "immobilize", "snare", "tether"}},
	{TagCharm, []string{"charm"}},
	{TagFear, []string{"fear", "terrify", "flee"}},
	{TagTaunt, []string{"taunt"}},
	{TagSleep, []string{"sleep", "drowsy"}},
	{TagSlow, []string{"slow"}},
	{TagSilence, []string{"silence"}},
	{TagBlind, []string{"blind"}},
	{TagDisarm, []string{"disarm"}},
	{TagCripple, []string{"cripple"}},
	{TagDash, []string{"dash", "blink", "leap", "lunge", "teleport"}},
	{TagBurst, []string{"burst", "bonus damage", "missing health", "execute"}},
	{TagStealth, []string{"stealth", "invisible", "invisibility", "camouflage"}},
	{TagShield, []string{"shield"}},
	{TagPoke, []string{"poke", "long range"}},
	{TagSustain, []string{"heal", "regenerate", "restore", "drain"}},
}

// ClassifyText infers at most one classification from an ability's name and
// free-text description. It returns nil when no keyword matches.
//
// This is a best-effort heuristic, not a guarantee: a keyword can match an
// unrelated clause ("removes a shield" still matches the shield rule).
// Curated tags are the ground truth; this cascade only fills in for abilities
// the curated dataset has not covered yet, so collisions are accepted rather
// than patched with ever-growing exception lists.
func ClassifyText(name, description string) *Classification {
	text := strings.ToLower(name + " " + description)
	for _, rule := range textCascade {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				c := clone(table[rule.tag])
				return &c
			}
		}
	}
	return nil
}
