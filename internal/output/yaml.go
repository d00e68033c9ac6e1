package output

import (
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

// YAMLWriter writes reports in YAML format.
type YAMLWriter struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewYAMLWriter creates a new YAML writer.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{writer: w}
}

// Write writes a report value as a YAML document.
func (y *YAMLWriter) Write(v interface{}) error {
	y.mu.Lock()
	defer y.mu.Unlock()

	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}

	_, err = y.writer.Write(data)
	return err
}
