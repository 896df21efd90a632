package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/djmisieq/chmurowy-system-mrp/internal/domain"
)

// treeView is the lookup surface move validation needs. The plain forest
// answers with linear searches; an Index answers from its maps.
type treeView interface {
	find(id string) (*domain.BomNode, bool)
	pathTo(id string) []string
}

type forestView struct {
	forest domain.Forest
}

func (f forestView) find(id string) (*domain.BomNode, bool) { return FindByID(id, f.forest) }
func (f forestView) pathTo(id string) []string               { return FindPathToItem(id, f.forest) }

// ValidateMove checks whether the item sourceID may be re-parented under
// targetID. Checks run in order and stop at the first error: self-move,
// existence, cycle, kind compatibility. A depth warning is appended when the
// target sits at or beyond the threshold. The forest is never modified.
func (v *Validator) ValidateMove(sourceID, targetID string, forest domain.Forest) Result {
	requireForest("ValidateMove", forest)
	return v.validateMove(sourceID, targetID, forestView{forest: forest})
}

// ValidateMoveIndexed runs the same checks as ValidateMove against a
// prebuilt Index, for repeated checks over one large snapshot.
func (v *Validator) ValidateMoveIndexed(sourceID, targetID string, idx *Index) Result {
	if idx == nil {
		panic(&ContractError{Op: "ValidateMoveIndexed", Err: ErrNilIndex})
	}
	return v.validateMove(sourceID, targetID, idx)
}

func (v *Validator) validateMove(sourceID, targetID string, tree treeView) Result {
	res := newResult()

	if sourceID == targetID {
		res.addError(newIssue(CodeSelfReference, sourceID,
			"cannot move an item into itself (%q)", sourceID))
		return res
	}

	source, sourceOK := tree.find(sourceID)
	target, targetOK := tree.find(targetID)
	if !sourceOK {
		res.addError(newIssue(CodeNotFound, sourceID, "source item %q not found", sourceID))
	}
	if !targetOK {
		res.addError(newIssue(CodeNotFound, targetID, "target item %q not found", targetID))
	}
	if !res.IsValid {
		return res
	}

	targetPath := tree.pathTo(targetID)
	if slices.Contains(targetPath, sourceID) {
		res.addError(newIssue(CodeCycle, sourceID,
			"cannot move %q under %q: %q is inside the subtree of %q, the move would create a cycle",
			sourceID, targetID, targetID, sourceID))
		return res
	}

	if !v.policy.IsAllowedChild(target.Kind, source.Kind) {
		res.addError(newIssue(CodeTypeCompatibility, sourceID,
			"type incompatibility: %s %q cannot be placed under %s %q (%s)",
			source.Kind, sourceID, target.Kind, targetID, v.allowedHint(target.Kind)))
		return res
	}

	if depth := len(targetPath) - 1; depth >= v.depthThreshold {
		res.addWarning(newIssue(CodeDepth, targetID,
			"target %q is at depth %d (threshold %d); the resulting structure may be hard to manage",
			targetID, depth, v.depthThreshold))
	}

	return res
}

func (v *Validator) allowedHint(parent domain.NodeKind) string {
	allowed := v.policy.AllowedChildren(parent)
	if len(allowed) == 0 {
		return fmt.Sprintf("%s items cannot have children", parent)
	}
	names := make([]string, len(allowed))
	for i, k := range allowed {
		names[i] = string(k)
	}
	return "allowed: " + strings.Join(names, ", ")
}
