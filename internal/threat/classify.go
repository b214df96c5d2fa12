package threat

// maxChampionThreats caps the champion-level summary. Display policy, not a
// correctness rule.
const maxChampionThreats = 10

// ClassifyTags maps a curated tag set to classifications ordered by the
// global priority list. Input order is irrelevant; unknown values are dropped
// silently.
func ClassifyTags(tags []string) []Classification {
	if len(tags) == 0 {
		return nil
	}

	present := make(map[Tag]bool, len(tags))
	for _, raw := range tags {
		if t, ok := ParseTag(raw); ok {
			present[t] = true
		}
	}

	var out []Classification
	for _, t := range priority {
		if present[t] {
			out = append(out, clone(table[t]))
		}
	}
	return out
}

// ClassifyAbility produces an ability's final classification sequence.
//
// curatedTags distinguishes "no curated entry" (nil) from "curated entry with
// no tags" (empty, non-nil). Curated data is ground truth: when it yields
// classifications the text cascade is never consulted. Text-inferred non-CC
// threats (Shield, Sustain, Burst, Poke, Stealth, Mobility and friends) are
// always accepted because curated data has no substitute for them. A
// text-inferred CC threat is accepted only when allowTextFallback is set and
// no curated entry existed at all, so an ability the curated dataset
// explicitly marked CC-free is never second-guessed.
func ClassifyAbility(name, description string, curatedTags []string, allowTextFallback bool) []Classification {
	hasCurated := curatedTags != nil

	if hasCurated {
		if out := ClassifyTags(curatedTags); len(out) > 0 {
			return out
		}
	}

	c := ClassifyText(name, description)
	if c == nil {
		return nil
	}
	if !c.Kind.IsCC() {
		return []Classification{*c}
	}
	if allowTextFallback && !hasCurated {
		return []Classification{*c}
	}
	return nil
}

// AggregateChampion flattens per-ability classification sequences (already
// priority-ordered, in Q/W/E/R order) into a single deduplicated summary.
// Dedup is keyed by label, so four abilities that each shield collapse to one
// Shield entry.
func AggregateChampion(perAbility ...[]Classification) []Classification {
	var out []Classification
	seen := make(map[string]bool)

	for _, list := range perAbility {
		for _, c := range list {
			if seen[c.Label] {
				continue
			}
			seen[c.Label] = true
			out = append(out, c)
			if len(out) == maxChampionThreats {
				return out
			}
		}
	}
	return out
}

func clone(c Classification) Classification {
	if c.Cleansable != nil {
		c.Cleansable = boolPtr(*c.Cleansable)
	}
	return c
}
