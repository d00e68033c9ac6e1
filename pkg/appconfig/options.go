package appconfig

import (
	"github.com/shelfscout/appcore/internal/hostresolve"
	"github.com/shelfscout/appcore/internal/logger"
)

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig replaces the entire configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config != nil {
			a.config = config
		}
		return nil
	}
}

// WithBaseURL sets an explicit base URL override. It wins over discovery
// and fallback; whitespace-only values are treated as unset.
func WithBaseURL(url string) Option {
	return func(a *App) error {
		a.config.API.BaseURL = url
		return nil
	}
}

// WithPlatform sets the target platform.
func WithPlatform(platform string) Option {
	return func(a *App) error {
		a.config.API.Platform = hostresolve.ParsePlatform(platform)
		return nil
	}
}

// WithDevMode enables bundler host discovery.
func WithDevMode(dev bool) Option {
	return func(a *App) error {
		a.config.API.DevMode = dev
		return nil
	}
}

// WithPort sets the API port used for discovered and fallback hosts.
func WithPort(port int) Option {
	return func(a *App) error {
		a.config.API.Port = port
		return nil
	}
}

// WithSourceProvider sets the bundle source URL provider.
func WithSourceProvider(source hostresolve.SourceProvider) Option {
	return func(a *App) error {
		if source != nil {
			a.source = source
		}
		return nil
	}
}

// WithSourceURL sets a fixed bundle source URL, mostly useful for
// tooling and tests.
func WithSourceURL(url string) Option {
	return func(a *App) error {
		a.source = hostresolve.StaticSource(url)
		return nil
	}
}

// WithLogger sets the logger used by the App.
func WithLogger(l *logger.Logger) Option {
	return func(a *App) error {
		if l != nil {
			a.log = l.WithComponent("appconfig")
		}
		return nil
	}
}
