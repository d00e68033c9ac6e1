// Package appconfig is the public composition surface of the app core:
// it resolves the API base URL once at startup and exposes the derived
// endpoint URL set, the store name normalizer and the design tokens.
package appconfig

import (
	"fmt"

	"github.com/shelfscout/appcore/internal/endpoints"
	"github.com/shelfscout/appcore/internal/hostresolve"
	"github.com/shelfscout/appcore/internal/logger"
	"github.com/shelfscout/appcore/internal/stores"
	"github.com/shelfscout/appcore/internal/theme"
)

// EndpointName is a logical API endpoint name.
type EndpointName = endpoints.Name

// Logical endpoint names, re-exported for consumers.
const (
	Products     = endpoints.Products
	Stores       = endpoints.Stores
	Prices       = endpoints.Prices
	Cheapest     = endpoints.Cheapest
	QuickCompare = endpoints.QuickCompare
	Profile      = endpoints.Profile
	Scan         = endpoints.Scan
)

// App is the resolved app core. Resolution happens once in New; an App
// is immutable afterwards and safe for concurrent use.
type App struct {
	config  *Config
	source  hostresolve.SourceProvider
	baseURL string
	urls    map[endpoints.Name]string
	theme   theme.Theme
	log     *logger.Logger
}

// New creates an App, applies options, validates the configuration and
// resolves the base URL exactly once.
func New(opts ...Option) (*App, error) {
	a := &App{
		config: DefaultConfig(),
		source: hostresolve.NoSource,
		log:    logger.Global().WithComponent("appconfig"),
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if err := a.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	resolver := hostresolve.New(a.config.API, a.source)
	a.baseURL = resolver.Resolve()
	a.urls = endpoints.BuildAll(a.baseURL)
	a.theme = theme.Default()

	a.log.Event(logger.InfoLevel).
		Str("base_url", a.baseURL).
		Str("platform", string(a.config.API.Platform)).
		Bool("dev_mode", a.config.API.DevMode).
		Msg("App core initialized")

	return a, nil
}

// BaseURL returns the resolved API base URL.
func (a *App) BaseURL() string {
	return a.baseURL
}

// EndpointURLs returns the full endpoint URL set. The returned map is
// shared; callers must not mutate it.
func (a *App) EndpointURLs() map[endpoints.Name]string {
	return a.urls
}

// EndpointURL returns the full URL for a logical endpoint name.
func (a *App) EndpointURL(name endpoints.Name) (string, bool) {
	url, ok := a.urls[name]
	return url, ok
}

// NormalizeStore maps a raw store name to its canonical brand name. The
// second return value is false when no alias matches; the caller decides
// the fallback display policy.
func (a *App) NormalizeStore(raw string) (string, bool) {
	return stores.Canonical(raw)
}

// Theme returns the app design tokens.
func (a *App) Theme() theme.Theme {
	return a.theme
}

// Config returns a copy of the effective configuration.
func (a *App) Config() *Config {
	return a.config.Clone()
}
