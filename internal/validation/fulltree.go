package validation

import "github.com/djmisieq/chmurowy-system-mrp/internal/domain"

// ValidateFullBom checks every node of every root tree in a single pre-order
// pass: unique ids, legal parent/child kinds, leaf-only materials and depth
// warnings. Depth is carried down the traversal, so the pass is linear in the
// number of nodes. Findings are reported in visit order.
func (v *Validator) ValidateFullBom(forest domain.Forest) Result {
	requireForest("ValidateFullBom", forest)

	res := newResult()
	seen := make(map[string]struct{})

	walk("ValidateFullBom", forest, func(f frame) bool {
		if f.node == nil {
			v.reportNilEntry(&res, f)
			return true
		}
		n := f.node

		if _, dup := seen[n.ID]; dup {
			res.addError(newIssue(CodeDuplicateID, n.ID,
				"duplicate id %q (item %q)", n.ID, n.Name))
		} else {
			seen[n.ID] = struct{}{}
		}

		if !n.Kind.Valid() {
			res.addError(newIssue(CodeUnknownKind, n.ID,
				"item %q has unknown kind %q", n.ID, n.Kind))
		} else if f.parent != nil && f.parent.Kind.Valid() && !v.policy.IsAllowedChild(f.parent.Kind, n.Kind) {
			res.addError(newIssue(CodeTypeCompatibility, n.ID,
				"type incompatibility: %s %q cannot be a child of %s %q (%s)",
				n.Kind, n.ID, f.parent.Kind, f.parent.ID, v.allowedHint(f.parent.Kind)))
		}

		if n.Kind == domain.NodeMaterial && len(n.Children) > 0 {
			res.addError(newIssue(CodeInvariantViolation, n.ID,
				"invariant violation: material %q has %d children; materials must be leaves",
				n.ID, len(n.Children)))
		}

		if f.depth >= v.depthThreshold {
			res.addWarning(newIssue(CodeDepth, n.ID,
				"item %q is at depth %d (threshold %d); deep structures are hard to manage",
				n.ID, f.depth, v.depthThreshold))
		}

		return true
	})

	return res
}

func (v *Validator) reportNilEntry(res *Result, f frame) {
	if f.parent == nil {
		res.addError(newIssue(CodeInvariantViolation, "",
			"invariant violation: root %d is nil", f.pos))
		return
	}
	res.addError(newIssue(CodeInvariantViolation, f.parent.ID,
		"invariant violation: item %q has a nil child at position %d", f.parent.ID, f.pos))
}
