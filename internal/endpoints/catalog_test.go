package endpoints

import (
	"strings"
	"testing"
)

func TestBuildAll(t *testing.T) {
	base := "http://192.168.1.10:8000"
	urls := BuildAll(base)

	if len(urls) != len(Names()) {
		t.Fatalf("BuildAll() produced %d URLs, want %d", len(urls), len(Names()))
	}

	for _, name := range Names() {
		full, ok := urls[name]
		if !ok {
			t.Errorf("BuildAll() missing endpoint %s", name)
			continue
		}

		path, _ := Path(name)
		if full != base+path {
			t.Errorf("BuildAll()[%s] = %q, want %q", name, full, base+path)
		}
		if strings.Contains(strings.TrimPrefix(full, "http://"), "//") {
			t.Errorf("BuildAll()[%s] = %q contains a duplicated slash", name, full)
		}
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		endpoint Name
		want     string
	}{
		{
			name:     "android emulator loopback",
			base:     "http://10.0.2.2:8000",
			endpoint: Products,
			want:     "http://10.0.2.2:8000/products/",
		},
		{
			name:     "quick compare uses hyphenated path",
			base:     "http://127.0.0.1:8000",
			endpoint: QuickCompare,
			want:     "http://127.0.0.1:8000/quick-compare/",
		},
		{
			name:     "empty base propagates as relative path",
			base:     "",
			endpoint: Scan,
			want:     "/scan/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := URL(tt.base, tt.endpoint); got != tt.want {
				t.Errorf("URL(%q, %s) = %q, want %q", tt.base, tt.endpoint, got, tt.want)
			}
		})
	}
}

func TestPathFragmentsWellFormed(t *testing.T) {
	// Fragments must begin and end with "/" so concatenation against a
	// trailing-slash-free base never doubles or drops a slash.
	for _, name := range Names() {
		path, ok := Path(name)
		if !ok {
			t.Errorf("Path(%s) not found in catalog", name)
			continue
		}
		if !strings.HasPrefix(path, "/") {
			t.Errorf("Path(%s) = %q does not begin with /", name, path)
		}
		if !strings.HasSuffix(path, "/") {
			t.Errorf("Path(%s) = %q does not end with /", name, path)
		}
		if strings.Contains(path, "//") {
			t.Errorf("Path(%s) = %q contains a duplicated slash", name, path)
		}
	}
}
