package stores

import (
	"testing"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{
			name:  "all caps no punctuation",
			input: "PAKNSAVE",
			want:  PakNSave,
			ok:    true,
		},
		{
			name:  "apostrophe before space",
			input: "Pak'n Save",
			want:  PakNSave,
			ok:    true,
		},
		{
			name:  "apostrophe after space",
			input: "pak n'save",
			want:  PakNSave,
			ok:    true,
		},
		{
			name:  "double apostrophe",
			input: "Pak'n'Save",
			want:  PakNSave,
			ok:    true,
		},
		{
			name:  "legacy countdown branding",
			input: "Countdown",
			want:  Woolworths,
			ok:    true,
		},
		{
			name:  "woolworths with region suffix",
			input: "Woolworths NZ",
			want:  Woolworths,
			ok:    true,
		},
		{
			name:  "new world mixed case",
			input: "NEW WORLD",
			want:  NewWorld,
			ok:    true,
		},
		{
			name:  "new world hyphenated",
			input: "new-world",
			want:  NewWorld,
			ok:    true,
		},
		{
			name:  "unknown brand",
			input: "unknown brand",
			want:  "",
			ok:    false,
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
			ok:    false,
		},
		{
			name:  "near miss with extra space is not matched",
			input: "pak  n  save",
			want:  "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Canonical(tt.input)
			if ok != tt.ok {
				t.Errorf("Canonical(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCanonicalIdempotent(t *testing.T) {
	// Every canonical brand name must resolve to itself when fed back in.
	for _, name := range Canonicals() {
		got, ok := Canonical(name)
		if !ok {
			t.Errorf("Canonical(%q) not matched; canonical names must be aliases of themselves", name)
			continue
		}
		if got != name {
			t.Errorf("Canonical(%q) = %q, want itself", name, got)
		}
	}
}

func TestAliasValuesAreCanonical(t *testing.T) {
	// The alias table is a closed set: every value must be a member of
	// the canonical brand set.
	for alias, name := range aliases {
		if !IsCanonical(name) {
			t.Errorf("alias %q maps to %q, which is not a canonical brand", alias, name)
		}
	}
}

func TestIsCanonical(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "canonical as displayed", input: "Pak'nSave", want: true},
		{name: "wrong case", input: "pak'nsave", want: false},
		{name: "legacy name", input: "Countdown", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCanonical(tt.input); got != tt.want {
				t.Errorf("IsCanonical(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
