package domain

import "strings"

// UserMeta is the per-request user context shared by the context-bearing lenses.
type UserMeta struct {
	SunSign   string
	Stressors string
}

// SymbolEntry holds the per-lens snippets for one dream symbol. Unknown
// symbols yield an entry with all fields empty, not an error.
type SymbolEntry struct {
	Jungian   string `json:"jungian"`
	Vedic     string `json:"vedic"`
	Astrology string `json:"astrology"`
	Cultural  string `json:"cultural"`
}

// RitualBundle is a fixed morning-ritual suggestion for a dream type.
type RitualBundle struct {
	Breath string `json:"breath"`
	Affirm string `json:"affirm"`
	Prompt string `json:"prompt"`
}

// DreamType categorizes a dream for ritual suggestions.
type DreamType string

const (
	DreamNightmare DreamType = "nightmare"
	DreamFlying    DreamType = "flying"
	DreamProphetic DreamType = "prophetic"
	DreamUnknown   DreamType = "unknown"
)

// NormalizeDreamType lower-cases raw and folds anything outside the
// known categories to DreamUnknown.
func NormalizeDreamType(raw string) DreamType {
	switch DreamType(strings.ToLower(strings.TrimSpace(raw))) {
	case DreamNightmare:
		return DreamNightmare
	case DreamFlying:
		return DreamFlying
	case DreamProphetic:
		return DreamProphetic
	default:
		return DreamUnknown
	}
}
