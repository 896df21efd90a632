package bomfile

import (
	"github.com/djmisieq/chmurowy-system-mrp/internal/domain"
)

// Convert builds a forest from a Document, setting ParentID on every
// non-root node. Call ValidateSchema first; Convert assumes the document is
// valid. Item names default to their id.
func Convert(doc *Document) domain.Forest {
	if len(doc.Items) > 0 {
		return convertItems(doc.Items)
	}
	forest := make(domain.Forest, 0, len(doc.Nodes))
	for i := range doc.Nodes {
		forest = append(forest, convertNode(&doc.Nodes[i], nil))
	}
	return forest
}

func convertNode(e *NodeEntry, parentID *string) *domain.BomNode {
	n := newNode(e.ID, e.Name, e.Kind, parentID)
	if len(e.Children) > 0 {
		n.Children = make([]*domain.BomNode, 0, len(e.Children))
		for i := range e.Children {
			pid := n.ID
			n.Children = append(n.Children, convertNode(&e.Children[i], &pid))
		}
	}
	return n
}

// convertItems links flat items to their parents. A parent id that occurs
// more than once resolves to its first occurrence.
func convertItems(items []ItemEntry) domain.Forest {
	byID := make(map[string]*domain.BomNode, len(items))
	forest := domain.Forest{}

	for _, it := range items {
		var parentID *string
		if it.ParentID != nil && *it.ParentID != "" {
			pid := *it.ParentID
			parentID = &pid
		}
		n := newNode(it.ID, it.Name, it.Kind, parentID)
		if _, seen := byID[n.ID]; !seen {
			byID[n.ID] = n
		}

		if parentID == nil {
			forest = append(forest, n)
			continue
		}
		if parent, ok := byID[*parentID]; ok {
			parent.Children = append(parent.Children, n)
		} else {
			// unreachable after ValidateSchema; keep the item visible as a root
			n.ParentID = nil
			forest = append(forest, n)
		}
	}
	return forest
}

func newNode(id, name, kind string, parentID *string) *domain.BomNode {
	k, ok := domain.ParseNodeKind(kind)
	if !ok {
		k = domain.NodeKind(kind)
	}
	if name == "" {
		name = id
	}
	return &domain.BomNode{
		ID:       id,
		Name:     name,
		Kind:     k,
		ParentID: parentID,
	}
}
