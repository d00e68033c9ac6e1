package appconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shelfscout/appcore/internal/hostresolve"
)

// EnvBaseURL is the environment variable holding an explicit API base
// URL override. The name is shared with the mobile bundle so one
// variable steers both sides of the stack.
const EnvBaseURL = "EXPO_PUBLIC_API_BASE_URL"

// Config holds all app core configuration.
type Config struct {
	// API holds the base URL resolution inputs
	API hostresolve.Config `json:"api" yaml:"api"`

	// Output configuration for the CLI
	Output OutputConfig `json:"output" yaml:"output"`

	// Verbose logging
	Verbose bool `json:"verbose" yaml:"verbose"`

	// Debug mode
	Debug bool `json:"debug" yaml:"debug"`
}

// OutputConfig holds CLI output configuration.
type OutputConfig struct {
	Format string `json:"format" yaml:"format"`
	Pretty bool   `json:"pretty" yaml:"pretty"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		API: hostresolve.Config{
			DevMode:  false,
			Platform: hostresolve.PlatformIOS,
			Port:     hostresolve.DefaultPort,
		},
		Output: OutputConfig{
			Format: "json",
			Pretty: true,
		},
		Verbose: false,
		Debug:   false,
	}
}

// FromEnv returns the default configuration with the environment base
// URL override applied. This is the only place the environment is read;
// resolution itself works from the explicit config value.
func FromEnv() *Config {
	config := DefaultConfig()
	config.API.BaseURL = os.Getenv(EnvBaseURL)
	return config
}

// LoadFromFile loads configuration from a file (JSON or YAML).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()

	// Try YAML first, then JSON
	if err := yaml.Unmarshal(data, config); err != nil {
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	return config, nil
}

// SaveToFile saves configuration to a file.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".json") {
		data, err = json.MarshalIndent(c, "", "  ")
	} else {
		data, err = yaml.Marshal(c)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Validate validates the configuration. Resolution itself is total, so
// validation only guards values that would produce nonsense URLs or an
// unusable CLI.
func (c *Config) Validate() error {
	if c.API.Port < 0 || c.API.Port > 65535 {
		return fmt.Errorf("api port %d out of range", c.API.Port)
	}

	switch c.Output.Format {
	case "", "json", "yaml", "yml":
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}

	return nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	data, _ := json.Marshal(c)
	clone := &Config{}
	json.Unmarshal(data, clone)
	return clone
}
