package domain

import "strings"

type NodeKind string

const (
	NodeAssembly    NodeKind = "assembly"
	NodeSubassembly NodeKind = "subassembly"
	NodePart        NodeKind = "part"
	NodeMaterial    NodeKind = "material"
)

// NodeKinds lists every kind from most to least composable.
var NodeKinds = []NodeKind{NodeAssembly, NodeSubassembly, NodePart, NodeMaterial}

// ValidNodeKinds is the canonical set of accepted node kind strings.
var ValidNodeKinds = map[string]bool{
	"assembly": true, "subassembly": true, "part": true, "material": true,
}

// Valid reports whether k is one of the known kinds.
func (k NodeKind) Valid() bool {
	return ValidNodeKinds[string(k)]
}

// Rank orders kinds by composability: 0 for assembly up to 3 for material.
// Unknown kinds rank after material.
func (k NodeKind) Rank() int {
	for i, known := range NodeKinds {
		if k == known {
			return i
		}
	}
	return len(NodeKinds)
}

// ParseNodeKind accepts a kind name in any letter case.
func ParseNodeKind(s string) (NodeKind, bool) {
	k := NodeKind(strings.ToLower(strings.TrimSpace(s)))
	return k, k.Valid()
}
