// Package stores maps free-text retailer names to canonical brand names.
package stores

import "strings"

// Canonical brand names used for grouping and column layout across the UI.
const (
	PakNSave   = "Pak'nSave"
	Woolworths = "Woolworths"
	NewWorld   = "New World"
)

// aliases maps pre-normalized (lowercase) spelling variants to canonical
// brand names. This is a closed, hand-maintained table: every real-world
// variant the app is expected to see is enumerated literally, including
// apostrophe placements. It is not a fuzzy matcher.
var aliases = map[string]string{
	// Pak'nSave
	"pak'nsave":   PakNSave,
	"paknsave":    PakNSave,
	"pak n save":  PakNSave,
	"pak'n save":  PakNSave,
	"pak n'save":  PakNSave,
	"pak'n'save":  PakNSave,
	"pak n' save": PakNSave,

	// Woolworths (Countdown rebranded to Woolworths NZ in 2023)
	"woolworths":    Woolworths,
	"countdown":     Woolworths,
	"woolworths nz": Woolworths,

	// New World
	"new world": NewWorld,
	"newworld":  NewWorld,
	"new-world": NewWorld,
}

// Canonical maps a raw store name to its canonical brand name. The lookup
// is case-insensitive but otherwise exact: the input, lowercased, must
// match one of the enumerated alias keys. The second return value is
// false when no alias matches; the fallback display policy (raw input,
// "Other", skip) is the caller's decision, not this package's.
func Canonical(raw string) (string, bool) {
	name, ok := aliases[strings.ToLower(raw)]
	return name, ok
}

// IsCanonical reports whether name is exactly one of the canonical brand
// names (case-sensitive, as displayed).
func IsCanonical(name string) bool {
	switch name {
	case PakNSave, Woolworths, NewWorld:
		return true
	}
	return false
}

// Canonicals returns the canonical brand set in display order.
func Canonicals() []string {
	return []string{PakNSave, Woolworths, NewWorld}
}
