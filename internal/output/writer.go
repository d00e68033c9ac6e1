// Package output provides output formatting for the CLI.
package output

import (
	"io"
)

// Writer defines the interface for report writers.
type Writer interface {
	// Write writes a report value in the writer's format
	Write(v interface{}) error
}

// Config holds output configuration.
type Config struct {
	Format string
	Pretty bool
}

// NewWriter creates a new report writer for the configured format.
// Unknown formats fall back to JSON.
func NewWriter(w io.Writer, config Config) Writer {
	switch config.Format {
	case "yaml", "yml":
		return NewYAMLWriter(w)
	case "json":
		return NewJSONWriter(w, config.Pretty)
	default:
		return NewJSONWriter(w, config.Pretty)
	}
}
