package validation

import "github.com/djmisieq/chmurowy-system-mrp/internal/domain"

// ApplyMove validates moving sourceID under targetID and, when the move is
// legal, returns a deep copy of forest with the move applied. The moved item
// is appended as the last child of the target. The input forest is left
// untouched. A rejected move returns a *MoveRejectedError carrying the
// first blocking issue and the full Result.
func (v *Validator) ApplyMove(sourceID, targetID string, forest domain.Forest) (domain.Forest, Result, error) {
	res := v.ValidateMove(sourceID, targetID, forest)
	if !res.IsValid {
		first := res.Errors[0]
		return nil, res, &MoveRejectedError{Code: first.Code, Message: first.Message, Result: res}
	}

	out := forest.Clone()

	var source, oldParent, target *domain.BomNode
	walk("ApplyMove", out, func(f frame) bool {
		if f.node == nil {
			return true
		}
		if source == nil && f.node.ID == sourceID {
			source, oldParent = f.node, f.parent
		}
		if target == nil && f.node.ID == targetID {
			target = f.node
		}
		return source == nil || target == nil
	})

	if oldParent == nil {
		out = removeNode(out, source)
	} else {
		oldParent.Children = removeNode(oldParent.Children, source)
	}

	pid := target.ID
	source.ParentID = &pid
	target.Children = append(target.Children, source)

	return out, res, nil
}

func removeNode[S ~[]*domain.BomNode](nodes S, n *domain.BomNode) S {
	for i, c := range nodes {
		if c == n {
			return append(nodes[:i:i], nodes[i+1:]...)
		}
	}
	return nodes
}
