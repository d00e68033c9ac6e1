package appconfig

import (
	"strings"
	"testing"

	"github.com/shelfscout/appcore/internal/stores"
)

func TestNew_ResolutionPriority(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{
			name: "override beats discovery and fallback",
			opts: []Option{
				WithBaseURL("https://api.shelfscout.nz"),
				WithDevMode(true),
				WithSourceURL("http://192.168.1.10:8081/index.bundle"),
				WithPlatform("android"),
			},
			want: "https://api.shelfscout.nz",
		},
		{
			name: "dev discovery from bundle source",
			opts: []Option{
				WithDevMode(true),
				WithSourceURL("http://192.168.1.10:8081/index.bundle"),
				WithPlatform("ios"),
			},
			want: "http://192.168.1.10:8000",
		},
		{
			name: "android fallback without source",
			opts: []Option{
				WithDevMode(true),
				WithPlatform("android"),
			},
			want: "http://10.0.2.2:8000",
		},
		{
			name: "ios fallback in production build",
			opts: []Option{
				WithPlatform("ios"),
				WithSourceURL("http://192.168.1.10:8081/index.bundle"),
			},
			want: "http://127.0.0.1:8000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := New(tt.opts...)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := app.BaseURL(); got != tt.want {
				t.Errorf("BaseURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(WithPort(-1))
	if err == nil {
		t.Fatal("New() should reject a negative port")
	}
	if !strings.Contains(err.Error(), "port") {
		t.Errorf("error should mention the port: %v", err)
	}
}

func TestApp_EndpointURLs(t *testing.T) {
	app, err := New(WithBaseURL("http://192.168.1.4:8000"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	urls := app.EndpointURLs()
	if len(urls) != 7 {
		t.Fatalf("EndpointURLs() has %d entries, want 7", len(urls))
	}

	tests := []struct {
		name     string
		endpoint EndpointName
		want     string
	}{
		{name: "products", endpoint: Products, want: "http://192.168.1.4:8000/products/"},
		{name: "stores", endpoint: Stores, want: "http://192.168.1.4:8000/stores/"},
		{name: "prices", endpoint: Prices, want: "http://192.168.1.4:8000/prices/"},
		{name: "cheapest", endpoint: Cheapest, want: "http://192.168.1.4:8000/cheapest/"},
		{name: "quick compare", endpoint: QuickCompare, want: "http://192.168.1.4:8000/quick-compare/"},
		{name: "profile", endpoint: Profile, want: "http://192.168.1.4:8000/profile/"},
		{name: "scan", endpoint: Scan, want: "http://192.168.1.4:8000/scan/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := app.EndpointURL(tt.endpoint)
			if !ok {
				t.Fatalf("EndpointURL(%s) not found", tt.endpoint)
			}
			if got != tt.want {
				t.Errorf("EndpointURL(%s) = %q, want %q", tt.endpoint, got, tt.want)
			}
		})
	}

	if _, ok := app.EndpointURL(EndpointName("BASKET")); ok {
		t.Error("EndpointURL() should not find endpoints outside the catalog")
	}
}

func TestApp_NormalizeStore(t *testing.T) {
	app, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, ok := app.NormalizeStore("countdown")
	if !ok || got != stores.Woolworths {
		t.Errorf("NormalizeStore(countdown) = %q, %v; want %q, true", got, ok, stores.Woolworths)
	}

	if _, ok := app.NormalizeStore("dairy on the corner"); ok {
		t.Error("NormalizeStore() should report no match for unknown names")
	}
}

func TestApp_Theme(t *testing.T) {
	app, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	th := app.Theme()
	if th.Spacing.MD == 0 {
		t.Error("Theme() spacing should be populated")
	}
	if len(th.Colors.Stores) != len(stores.Canonicals()) {
		t.Errorf("Theme() store colors = %d entries, want %d", len(th.Colors.Stores), len(stores.Canonicals()))
	}
}

func TestApp_ConfigIsCopy(t *testing.T) {
	app, err := New(WithBaseURL("http://1.2.3.4:8000"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	config := app.Config()
	config.API.BaseURL = "http://mutated:1"

	if app.Config().API.BaseURL != "http://1.2.3.4:8000" {
		t.Error("Config() should return a copy, not the live configuration")
	}
}

func TestWithConfig(t *testing.T) {
	config := DefaultConfig()
	config.API.BaseURL = "http://override.local:8000"

	app, err := New(WithConfig(config))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if app.BaseURL() != "http://override.local:8000" {
		t.Errorf("BaseURL() = %q, want config override", app.BaseURL())
	}
}
