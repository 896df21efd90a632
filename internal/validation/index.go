package validation

import "github.com/djmisieq/chmurowy-system-mrp/internal/domain"

// Index answers lookups over one forest snapshot without re-walking it:
// Find is O(1) and PathTo is O(depth). It must be rebuilt after the forest
// changes. Duplicate ids resolve to the first node in pre-order, matching
// FindByID.
type Index struct {
	nodes   map[string]*domain.BomNode
	parents map[*domain.BomNode]*domain.BomNode
	depths  map[*domain.BomNode]int
	size    int
}

// NewIndex walks forest once and records every node, its parent and depth.
func NewIndex(forest domain.Forest) *Index {
	requireForest("NewIndex", forest)

	idx := &Index{
		nodes:   make(map[string]*domain.BomNode),
		parents: make(map[*domain.BomNode]*domain.BomNode),
		depths:  make(map[*domain.BomNode]int),
	}
	walk("NewIndex", forest, func(f frame) bool {
		if f.node == nil {
			return true
		}
		idx.size++
		if _, ok := idx.nodes[f.node.ID]; !ok {
			idx.nodes[f.node.ID] = f.node
		}
		if f.parent != nil {
			idx.parents[f.node] = f.parent
		}
		idx.depths[f.node] = f.depth
		return true
	})
	return idx
}

// Len returns the number of nodes indexed, duplicates included.
func (idx *Index) Len() int {
	return idx.size
}

// Find returns the node registered under id.
func (idx *Index) Find(id string) (*domain.BomNode, bool) {
	n, ok := idx.nodes[id]
	return n, ok
}

// PathTo returns root-to-node ids for id, or nil when id is absent.
func (idx *Index) PathTo(id string) []string {
	n, ok := idx.nodes[id]
	if !ok {
		return nil
	}
	path := make([]string, idx.depths[n]+1)
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = n.ID
		n = idx.parents[n]
	}
	return path
}

// Depth returns the depth of id, or -1 when absent.
func (idx *Index) Depth(id string) int {
	n, ok := idx.nodes[id]
	if !ok {
		return -1
	}
	return idx.depths[n]
}

// IsDescendant is the indexed equivalent of the package-level IsDescendant.
func (idx *Index) IsDescendant(candidateAncestorID, potentialDescendantID string) bool {
	n, ok := idx.nodes[potentialDescendantID]
	for ok && n != nil {
		if n.ID == candidateAncestorID {
			return true
		}
		n, ok = idx.parents[n]
	}
	return false
}

func (idx *Index) find(id string) (*domain.BomNode, bool) { return idx.Find(id) }
func (idx *Index) pathTo(id string) []string               { return idx.PathTo(id) }
