package testutil

import (
	"fmt"
	"math/rand"
	"sync/atomic"

	"github.com/djmisieq/chmurowy-system-mrp/internal/domain"
	"github.com/google/uuid"
)

var testNameCounter atomic.Int64

// BomNode options
type NodeOption func(*domain.BomNode)

func WithID(id string) NodeOption {
	return func(n *domain.BomNode) {
		n.ID = id
	}
}

func WithName(name string) NodeOption {
	return func(n *domain.BomNode) {
		n.Name = name
	}
}

func WithChildren(children ...*domain.BomNode) NodeOption {
	return func(n *domain.BomNode) {
		n.Children = append(n.Children, children...)
	}
}

// NewTestNode builds a node of the given kind with a random id. Children
// passed through WithChildren get their ParentID set to the node's final id.
func NewTestNode(kind domain.NodeKind, opts ...NodeOption) *domain.BomNode {
	n := &domain.BomNode{
		ID:   uuid.New().String(),
		Name: fmt.Sprintf("%s %d", kind, testNameCounter.Add(1)),
		Kind: kind,
	}
	for _, opt := range opts {
		opt(n)
	}
	for _, c := range n.Children {
		if c != nil {
			pid := n.ID
			c.ParentID = &pid
		}
	}
	return n
}

// Node is shorthand for a node with a fixed id used as both id and name.
func Node(kind domain.NodeKind, id string, children ...*domain.BomNode) *domain.BomNode {
	return NewTestNode(kind, WithID(id), WithName(id), WithChildren(children...))
}

// SampleForest returns the reference forest:
//
//	assembly1
//	├─ subassembly1
//	│  └─ part1
//	│     └─ material1
//	└─ part2
//	assembly2
func SampleForest() domain.Forest {
	return domain.Forest{
		Node(domain.NodeAssembly, "assembly1",
			Node(domain.NodeSubassembly, "subassembly1",
				Node(domain.NodePart, "part1",
					Node(domain.NodeMaterial, "material1"),
				),
			),
			Node(domain.NodePart, "part2"),
		),
		Node(domain.NodeAssembly, "assembly2"),
	}
}

// AssemblyChain returns a single chain of nested assemblies with ids
// "level-0" (the root) through "level-<depth>".
func AssemblyChain(depth int) domain.Forest {
	var node *domain.BomNode
	for d := depth; d >= 0; d-- {
		id := fmt.Sprintf("level-%d", d)
		if node == nil {
			node = Node(domain.NodeAssembly, id)
		} else {
			node = Node(domain.NodeAssembly, id, node)
		}
	}
	return domain.Forest{node}
}

// GenerateForest builds a valid forest of exactly size nodes spread over
// roots trees. Kinds always follow the default compatibility table and no
// node goes deeper than maxDepth. The same rng seed yields the same shape.
func GenerateForest(rng *rand.Rand, size, roots, maxDepth int) domain.Forest {
	if roots < 1 {
		roots = 1
	}
	if roots > size {
		roots = size
	}

	type slot struct {
		node  *domain.BomNode
		depth int
	}

	forest := make(domain.Forest, 0, roots)
	var open []slot
	for i := 0; i < roots; i++ {
		root := &domain.BomNode{ID: fmt.Sprintf("gen-%d", i), Name: fmt.Sprintf("Root %d", i), Kind: domain.NodeAssembly}
		forest = append(forest, root)
		open = append(open, slot{node: root})
	}

	for i := roots; i < size; i++ {
		parent := open[rng.Intn(len(open))]
		kind := childKindFor(rng, parent.node.Kind, parent.depth+1 >= maxDepth)
		pid := parent.node.ID
		child := &domain.BomNode{
			ID:       fmt.Sprintf("gen-%d", i),
			Name:     fmt.Sprintf("Item %d", i),
			Kind:     kind,
			ParentID: &pid,
		}
		parent.node.Children = append(parent.node.Children, child)
		if kind != domain.NodeMaterial && parent.depth+1 < maxDepth {
			open = append(open, slot{node: child, depth: parent.depth + 1})
		}
	}
	return forest
}

func childKindFor(rng *rand.Rand, parent domain.NodeKind, leafOnly bool) domain.NodeKind {
	if leafOnly {
		return domain.NodeMaterial
	}
	switch parent {
	case domain.NodeAssembly:
		return domain.NodeKinds[rng.Intn(len(domain.NodeKinds))]
	case domain.NodeSubassembly:
		if rng.Intn(2) == 0 {
			return domain.NodePart
		}
		return domain.NodeMaterial
	default:
		return domain.NodeMaterial
	}
}
