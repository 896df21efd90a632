package validation

import "github.com/djmisieq/chmurowy-system-mrp/internal/domain"

// FindByID returns the first node in pre-order whose ID matches id.
func FindByID(id string, forest domain.Forest) (*domain.BomNode, bool) {
	requireForest("FindByID", forest)

	var found *domain.BomNode
	walk("FindByID", forest, func(f frame) bool {
		if f.node != nil && f.node.ID == id {
			found = f.node
			return false
		}
		return true
	})
	return found, found != nil
}

// FindPathToItem returns the ids from a root down to the first node with the
// given id, both ends inclusive. It returns nil when id is absent.
func FindPathToItem(id string, forest domain.Forest) []string {
	requireForest("FindPathToItem", forest)

	var path, result []string
	walk("FindPathToItem", forest, func(f frame) bool {
		if f.node == nil {
			return true
		}
		// In pre-order the first f.depth entries are this node's ancestors.
		path = append(path[:f.depth], f.node.ID)
		if f.node.ID == id {
			result = append([]string(nil), path...)
			return false
		}
		return true
	})
	return result
}
