package bomfile

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/djmisieq/chmurowy-system-mrp/internal/domain"
	"gopkg.in/yaml.v3"
)

// FromForest converts a forest into a nested Document.
func FromForest(name string, forest domain.Forest) *Document {
	doc := &Document{Name: name, Nodes: make([]NodeEntry, 0, len(forest))}
	for _, root := range forest {
		if root != nil {
			doc.Nodes = append(doc.Nodes, toEntry(root))
		}
	}
	return doc
}

func toEntry(n *domain.BomNode) NodeEntry {
	e := NodeEntry{ID: n.ID, Name: n.Name, Kind: string(n.Kind)}
	if e.Name == e.ID {
		e.Name = ""
	}
	for _, c := range n.Children {
		if c != nil {
			e.Children = append(e.Children, toEntry(c))
		}
	}
	return e
}

// Encode writes doc to w in the given format.
func Encode(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding bom yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
