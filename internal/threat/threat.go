// Package threat maps champion ability metadata to an ordered set of threat
// classifications. Classification is driven by two immutable tables: a
// tag-keyed lookup table with a fixed global priority order, and a keyword
// cascade used as a fallback when no curated tags are available for an
// ability. The package holds no mutable state and performs no I/O, so it is
// safe for concurrent use.
package threat

// Kind is a coarse severity bucket for a classification. The hard, soft and
// suppression kinds describe crowd control and its cleansability; high,
// medium and low describe non-CC threat severity.
type Kind string

const (
	KindSuppression Kind = "suppression"
	KindHard        Kind = "hard"
	KindSoft        Kind = "soft"
	KindHigh        Kind = "high"
	KindMedium      Kind = "medium"
	KindLow         Kind = "low"
)

// IsCC reports whether the kind describes a crowd-control effect.
func (k Kind) IsCC() bool {
	switch k {
	case KindSuppression, KindHard, KindSoft:
		return true
	}
	return false
}

// Classification is one detected threat for one ability.
//
// Cleansable is nil for non-CC threats, where the concept does not apply.
// QSSOnly is true only for suppression effects, which Cleanse cannot remove.
type Classification struct {
	Kind       Kind   `json:"kind"`
	Label      string `json:"label"`
	Cleansable *bool  `json:"cleansable,omitempty"`
	QSSOnly    bool   `json:"qssOnly"`
	Color      string `json:"color"`
}

// colorFor derives the badge color from the kind. Color is presentation
// metadata but must never contradict the kind, so it has no setter.
func colorFor(k Kind) string {
	switch k {
	case KindSuppression:
		return "purple"
	case KindHard:
		return "red"
	case KindSoft:
		return "orange"
	case KindHigh:
		return "yellow"
	case KindMedium:
		return "blue"
	case KindLow:
		return "green"
	}
	return "gray"
}

func boolPtr(b bool) *bool { return &b }
