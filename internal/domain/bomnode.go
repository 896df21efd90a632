package domain

// BomNode is one item of a product structure. Children are owned
// exclusively by their parent.
type BomNode struct {
	ID       string
	Name     string
	Kind     NodeKind
	ParentID *string
	Children []*BomNode
}

// Forest is an ordered list of independent root trees.
type Forest []*BomNode

// Clone returns a deep copy of the subtree rooted at n.
func (n *BomNode) Clone() *BomNode {
	if n == nil {
		return nil
	}
	type pair struct{ src, dst *BomNode }

	root := n.shallowCopy()
	stack := []pair{{n, root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(p.src.Children) == 0 {
			continue
		}
		p.dst.Children = make([]*BomNode, len(p.src.Children))
		for i, child := range p.src.Children {
			if child == nil {
				continue
			}
			c := child.shallowCopy()
			p.dst.Children[i] = c
			stack = append(stack, pair{child, c})
		}
	}
	return root
}

func (n *BomNode) shallowCopy() *BomNode {
	c := &BomNode{ID: n.ID, Name: n.Name, Kind: n.Kind}
	if n.ParentID != nil {
		pid := *n.ParentID
		c.ParentID = &pid
	}
	return c
}

// Clone returns a deep copy of every root tree. A nil forest stays nil.
func (f Forest) Clone() Forest {
	if f == nil {
		return nil
	}
	out := make(Forest, len(f))
	for i, root := range f {
		out[i] = root.Clone()
	}
	return out
}

// Count returns the total number of nodes in the forest.
func (f Forest) Count() int {
	n := 0
	stack := make([]*BomNode, 0, len(f))
	for i := len(f) - 1; i >= 0; i-- {
		stack = append(stack, f[i])
	}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == nil {
			continue
		}
		n++
		stack = append(stack, node.Children...)
	}
	return n
}
