package validation

import (
	"slices"

	"github.com/djmisieq/chmurowy-system-mrp/internal/domain"
)

// IsDescendant reports whether candidateAncestorID lies on the root path of
// potentialDescendantID. The path includes the descendant itself, so equal
// ids report true; ValidateMove rejects that case earlier as a self-move.
func IsDescendant(candidateAncestorID, potentialDescendantID string, forest domain.Forest) bool {
	return slices.Contains(FindPathToItem(potentialDescendantID, forest), candidateAncestorID)
}
