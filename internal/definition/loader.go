package definition

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format string

// Supported formats. JSON documents are parsed by the YAML decoder.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and validates a wizard document.
func Load(path string) (*Definition, error) {
	d, err := LoadWithoutValidation(path)
	if err != nil {
		return nil, err
	}

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("definition validation failed: %w", err)
	}

	return d, nil
}

// LoadWithoutValidation reads a wizard document without validating it.
// Tooling that reports every problem in a document uses this and calls
// Validate itself.
func LoadWithoutValidation(path string) (*Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}

	return Decode(data, format)
}

// Parse decodes and validates a wizard document from bytes.
func Parse(data []byte, format Format) (*Definition, error) {
	d, err := Decode(data, format)
	if err != nil {
		return nil, err
	}

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("definition validation failed: %w", err)
	}

	return d, nil
}

// Decode decodes a wizard document without validating it.
func Decode(data []byte, format Format) (*Definition, error) {
	var d Definition

	switch format {
	case FormatYAML, FormatJSON:
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", format, err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &d); err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return &d, nil
}

// Save writes a wizard document as YAML.
func Save(d *Definition, path string) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal definition: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write definition file: %w", err)
	}

	return nil
}
