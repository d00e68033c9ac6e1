// Package hostresolve resolves the API base URL for the app across
// development and production environments.
//
// Resolution runs a fixed priority chain: an explicit override wins,
// then dev-bundler host discovery, then a platform-specific loopback
// fallback. The chain never fails; malformed input degrades to the next
// tier.
package hostresolve

import (
	"fmt"
	"strings"

	"github.com/shelfscout/appcore/internal/logger"
)

// DefaultPort is the port the backend API listens on during development.
const DefaultPort = 8000

// SourceProvider exposes the URL the running bundle was served from.
// Under a development bundler this points at the developer machine's LAN
// address; in a production build no source URL is available.
type SourceProvider interface {
	// SourceURL returns the bundle source URL and whether one exists.
	SourceURL() (string, bool)
}

// SourceFunc adapts a function to the SourceProvider interface.
type SourceFunc func() (string, bool)

// SourceURL implements SourceProvider.
func (f SourceFunc) SourceURL() (string, bool) {
	return f()
}

// NoSource is a SourceProvider for production builds: it never yields a
// source URL, so resolution proceeds to the loopback fallback.
var NoSource SourceProvider = SourceFunc(func() (string, bool) {
	return "", false
})

// StaticSource returns a SourceProvider that always yields url.
func StaticSource(url string) SourceProvider {
	return SourceFunc(func() (string, bool) {
		return url, true
	})
}

// Config holds the inputs to base URL resolution. It is injected
// explicitly so resolution stays deterministic and testable; reading the
// environment is the caller's job (see appconfig.FromEnv).
type Config struct {
	// BaseURL, when non-empty after trimming, is used verbatim and
	// short-circuits the rest of the chain.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// DevMode enables bundler host discovery. Production builds leave
	// this false and fall straight through to the loopback fallback.
	DevMode bool `json:"dev_mode" yaml:"dev_mode"`

	// Platform selects the loopback fallback host.
	Platform Platform `json:"platform" yaml:"platform"`

	// Port is the API port used for discovered and fallback hosts.
	// Zero means DefaultPort. An explicit BaseURL override is never
	// rewritten to this port.
	Port int `json:"port" yaml:"port"`
}

// Resolver computes the Resolved Base URL. Construct one with New and
// call Resolve exactly once at startup; the result is a plain string
// with no retained state.
type Resolver struct {
	cfg    Config
	source SourceProvider
	log    *logger.Logger
}

// New creates a Resolver. A nil source is treated as NoSource.
func New(cfg Config, source SourceProvider) *Resolver {
	if source == nil {
		source = NoSource
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	return &Resolver{
		cfg:    cfg,
		source: source,
		log:    logger.Global().WithComponent("hostresolve"),
	}
}

// Resolve runs the priority chain and returns the base URL. It never
// fails: every tier either yields a URL or defers to the next, and the
// final tier is total.
func (r *Resolver) Resolve() string {
	// Tier 1: explicit override. Whitespace-only counts as unset, but a
	// set value is used verbatim, surrounding whitespace and all.
	if strings.TrimSpace(r.cfg.BaseURL) != "" {
		r.log.Event(logger.DebugLevel).
			Str("base_url", r.cfg.BaseURL).
			Str("tier", "override").
			Msg("Resolved API base URL")
		return r.cfg.BaseURL
	}

	// Tier 2: dev bundler host discovery. A usable source URL always
	// carries a colon (scheme separator or port); a colon-free string
	// cannot name the dev server, so it falls through instead of
	// producing a bogus host.
	if r.cfg.DevMode {
		if raw, ok := r.source.SourceURL(); ok && strings.Contains(raw, ":") {
			if host := HostFromSourceURL(raw); host != "" {
				base := fmt.Sprintf("http://%s:%d", host, r.cfg.Port)
				r.log.Event(logger.DebugLevel).
					Str("base_url", base).
					Str("source_url", raw).
					Str("tier", "discovery").
					Msg("Resolved API base URL")
				return base
			}
		}
	}

	// Tier 3: platform loopback.
	base := fmt.Sprintf("http://%s:%d", r.cfg.Platform.LoopbackHost(), r.cfg.Port)
	r.log.Event(logger.DebugLevel).
		Str("base_url", base).
		Str("platform", string(r.cfg.Platform)).
		Str("tier", "loopback").
		Msg("Resolved API base URL")
	return base
}

// HostFromSourceURL extracts the bare host from a bundle source URL of
// the shape scheme://host[:port]/path. The parse is deliberately loose:
// a string with no "://" is treated as already starting at host:port, so
// malformed input yields whatever host-ish prefix it has rather than an
// error. An empty result tells the caller to fall through.
func HostFromSourceURL(raw string) string {
	rest := raw
	if _, after, found := strings.Cut(raw, "://"); found {
		rest = after
	}
	hostPort, _, _ := strings.Cut(rest, "/")
	host, _, _ := strings.Cut(hostPort, ":")
	return host
}
