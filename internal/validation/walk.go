package validation

import "github.com/djmisieq/chmurowy-system-mrp/internal/domain"

// frame is one pending visit of the iterative traversal. node may be nil
// when a root or children slice holds a nil entry.
type frame struct {
	node   *domain.BomNode
	parent *domain.BomNode
	depth  int
	pos    int // index within the parent's children, or within the roots
}

// walk visits every entry of forest in pre-order using an explicit stack,
// so traversal depth is not bounded by the goroutine stack. visit returns
// false to stop early. A node value reached twice panics with ErrNotATree.
func walk(op string, forest domain.Forest, visit func(f frame) bool) {
	stack := make([]frame, 0, len(forest))
	for i := len(forest) - 1; i >= 0; i-- {
		stack = append(stack, frame{node: forest[i], pos: i})
	}

	seen := make(map[*domain.BomNode]struct{})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node != nil {
			if _, dup := seen[f.node]; dup {
				panic(&ContractError{Op: op, Err: ErrNotATree})
			}
			seen[f.node] = struct{}{}
		}

		if !visit(f) {
			return
		}
		if f.node == nil {
			continue
		}

		children := f.node.Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: children[i], parent: f.node, depth: f.depth + 1, pos: i})
		}
	}
}
