package bomfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a BOM file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for file extensions other than
// .json, .yaml and .yml.
var ErrUnsupportedFormat = errors.New("unsupported bom file format")

// Document is the top-level structure of a BOM file. A document carries its
// items either nested under Nodes or flat under Items with parent_id links.
type Document struct {
	Name  string      `json:"name,omitempty" yaml:"name,omitempty"`
	Nodes []NodeEntry `json:"nodes,omitempty" yaml:"nodes,omitempty"`
	Items []ItemEntry `json:"items,omitempty" yaml:"items,omitempty"`
}

// NodeEntry is one item in the nested form.
type NodeEntry struct {
	ID       string      `json:"id" yaml:"id"`
	Name     string      `json:"name,omitempty" yaml:"name,omitempty"`
	Kind     string      `json:"kind" yaml:"kind"`
	Children []NodeEntry `json:"children,omitempty" yaml:"children,omitempty"`
}

// ItemEntry is one item in the flat form.
type ItemEntry struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name,omitempty" yaml:"name,omitempty"`
	Kind     string  `json:"kind" yaml:"kind"`
	ParentID *string `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and parses a BOM file, returning the document and its format.
func Load(path string) (*Document, Format, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, "", err
	}
	return doc, format, nil
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing bom json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing bom yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &doc, nil
}
