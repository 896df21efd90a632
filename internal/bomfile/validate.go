package bomfile

import (
	"fmt"

	"github.com/djmisieq/chmurowy-system-mrp/internal/domain"
)

// ValidateSchema checks a Document for errors that prevent building a
// forest: missing ids, unknown kinds, dangling parent links. Structural BOM
// rules (duplicate ids, kind compatibility) are left to the validator.
// Returns all errors found.
func ValidateSchema(doc *Document) []error {
	var errs []error

	if len(doc.Nodes) > 0 && len(doc.Items) > 0 {
		errs = append(errs, fmt.Errorf("document mixes nested nodes and flat items; use one form"))
	}

	for i := range doc.Nodes {
		errs = append(errs, validateNode(fmt.Sprintf("nodes[%d]", i), &doc.Nodes[i])...)
	}
	errs = append(errs, validateItems(doc.Items)...)

	return errs
}

func validateNode(prefix string, n *NodeEntry) []error {
	errs := validateEntry(prefix, n.ID, n.Kind)
	for i := range n.Children {
		errs = append(errs, validateNode(fmt.Sprintf("%s.children[%d]", prefix, i), &n.Children[i])...)
	}
	return errs
}

func validateItems(items []ItemEntry) []error {
	var errs []error
	ids := make(map[string]bool)

	for i, it := range items {
		prefix := fmt.Sprintf("items[%d]", i)
		errs = append(errs, validateEntry(prefix, it.ID, it.Kind)...)

		if it.ParentID != nil && *it.ParentID != "" && !ids[*it.ParentID] {
			errs = append(errs, fmt.Errorf("%s.parent_id: id %q not found (must appear earlier in items list)", prefix, *it.ParentID))
		}
		if it.ID != "" {
			ids[it.ID] = true
		}
	}

	return errs
}

func validateEntry(prefix, id, kind string) []error {
	var errs []error
	if id == "" {
		errs = append(errs, fmt.Errorf("%s.id is required", prefix))
	}
	if kind == "" {
		errs = append(errs, fmt.Errorf("%s.kind is required", prefix))
	} else if _, ok := domain.ParseNodeKind(kind); !ok {
		errs = append(errs, fmt.Errorf("%s.kind: invalid value %q", prefix, kind))
	}
	return errs
}
