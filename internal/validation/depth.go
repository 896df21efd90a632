package validation

import "github.com/djmisieq/chmurowy-system-mrp/internal/domain"

// DefaultDepthThreshold is the depth at which structures draw a warning.
const DefaultDepthThreshold = 5

// DepthOf returns the number of edges between id and its root. Roots have
// depth 0; an absent id yields -1.
func DepthOf(id string, forest domain.Forest) int {
	return len(FindPathToItem(id, forest)) - 1
}
