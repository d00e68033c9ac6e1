// Package theme defines the static design tokens shared by the app UI:
// spacing scale, color palette and type scale. Tokens are immutable data
// loaded at startup; there is no dynamic theming.
package theme

import "github.com/shelfscout/appcore/internal/stores"

// Spacing is the 4pt-based spacing scale.
type Spacing struct {
	XS  int `json:"xs" yaml:"xs"`
	SM  int `json:"sm" yaml:"sm"`
	MD  int `json:"md" yaml:"md"`
	LG  int `json:"lg" yaml:"lg"`
	XL  int `json:"xl" yaml:"xl"`
	XXL int `json:"xxl" yaml:"xxl"`
}

// Colors is the app color palette. Store brand colors drive the
// comparison column headers.
type Colors struct {
	Primary    string `json:"primary" yaml:"primary"`
	Background string `json:"background" yaml:"background"`
	Surface    string `json:"surface" yaml:"surface"`
	Text       string `json:"text" yaml:"text"`
	TextMuted  string `json:"text_muted" yaml:"text_muted"`
	Border     string `json:"border" yaml:"border"`
	Success    string `json:"success" yaml:"success"`
	Warning    string `json:"warning" yaml:"warning"`
	Danger     string `json:"danger" yaml:"danger"`

	// Stores maps canonical brand names to their brand color.
	Stores map[string]string `json:"stores" yaml:"stores"`
}

// TypeScale is the font size scale in points.
type TypeScale struct {
	Caption int `json:"caption" yaml:"caption"`
	Body    int `json:"body" yaml:"body"`
	Label   int `json:"label" yaml:"label"`
	Title   int `json:"title" yaml:"title"`
	Heading int `json:"heading" yaml:"heading"`
	Display int `json:"display" yaml:"display"`
}

// Theme bundles all design tokens.
type Theme struct {
	Spacing Spacing   `json:"spacing" yaml:"spacing"`
	Colors  Colors    `json:"colors" yaml:"colors"`
	Type    TypeScale `json:"type" yaml:"type"`
}

// Default returns the app theme. Callers must treat the result as
// read-only; maps are shared, not copied.
func Default() Theme {
	return Theme{
		Spacing: Spacing{
			XS:  4,
			SM:  8,
			MD:  12,
			LG:  16,
			XL:  24,
			XXL: 32,
		},
		Colors: Colors{
			Primary:    "#16a34a",
			Background: "#f8fafc",
			Surface:    "#ffffff",
			Text:       "#0f172a",
			TextMuted:  "#64748b",
			Border:     "#e2e8f0",
			Success:    "#22c55e",
			Warning:    "#f59e0b",
			Danger:     "#ef4444",
			Stores:     storeColors,
		},
		Type: TypeScale{
			Caption: 12,
			Body:    14,
			Label:   15,
			Title:   18,
			Heading: 22,
			Display: 28,
		},
	}
}

// storeColors carries each retailer's brand color, keyed by canonical
// brand name.
var storeColors = map[string]string{
	stores.PakNSave:   "#ffd600",
	stores.Woolworths: "#178841",
	stores.NewWorld:   "#e11931",
}

// StoreColor returns the brand color for a canonical store name, with a
// neutral fallback for anything outside the canonical set.
func StoreColor(canonical string) string {
	if c, ok := storeColors[canonical]; ok {
		return c
	}
	return "#64748b"
}
