package validation

import (
	"testing"

	"github.com/djmisieq/chmurowy-system-mrp/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDefaultPolicy_IsAllowedChild(t *testing.T) {
	p := DefaultPolicy()

	const (
		A = domain.NodeAssembly
		S = domain.NodeSubassembly
		P = domain.NodePart
		M = domain.NodeMaterial
	)
	tests := []struct {
		parent, child domain.NodeKind
		want          bool
	}{
		{A, A, true}, {A, S, true}, {A, P, true}, {A, M, true},
		{S, A, false}, {S, S, false}, {S, P, true}, {S, M, true},
		{P, A, false}, {P, S, false}, {P, P, false}, {P, M, true},
		{M, A, false}, {M, S, false}, {M, P, false}, {M, M, false},
	}
	for _, tc := range tests {
		t.Run(string(tc.parent)+"/"+string(tc.child), func(t *testing.T) {
			assert.Equal(t, tc.want, p.IsAllowedChild(tc.parent, tc.child))
		})
	}
}

func TestDefaultPolicy_UnknownKinds(t *testing.T) {
	p := DefaultPolicy()
	assert.False(t, p.IsAllowedChild("widget", domain.NodePart))
	assert.False(t, p.IsAllowedChild(domain.NodeAssembly, "widget"))
}

func TestPolicy_AllowedChildrenOrderedByRank(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t,
		[]domain.NodeKind{domain.NodeAssembly, domain.NodeSubassembly, domain.NodePart, domain.NodeMaterial},
		p.AllowedChildren(domain.NodeAssembly))
	assert.Equal(t, []domain.NodeKind{domain.NodePart, domain.NodeMaterial}, p.AllowedChildren(domain.NodeSubassembly))
	assert.Empty(t, p.AllowedChildren(domain.NodeMaterial))
}

func TestPolicy_Kinds(t *testing.T) {
	assert.Equal(t, domain.NodeKinds, DefaultPolicy().Kinds())
}

func TestNewPolicy_CustomTableIsCopied(t *testing.T) {
	table := map[domain.NodeKind][]domain.NodeKind{
		domain.NodeSubassembly: {domain.NodeSubassembly, domain.NodePart},
	}
	p := NewPolicy(table)
	table[domain.NodeSubassembly][0] = domain.NodeMaterial

	assert.True(t, p.IsAllowedChild(domain.NodeSubassembly, domain.NodeSubassembly))
	assert.False(t, p.IsAllowedChild(domain.NodeSubassembly, domain.NodeMaterial))
	assert.False(t, p.IsAllowedChild(domain.NodeAssembly, domain.NodePart), "kinds missing from the table accept nothing")
}

func TestPolicy_TableRoundTrip(t *testing.T) {
	p := DefaultPolicy()
	rebuilt := NewPolicy(p.Table())
	for _, parent := range domain.NodeKinds {
		for _, child := range domain.NodeKinds {
			assert.Equal(t, p.IsAllowedChild(parent, child), rebuilt.IsAllowedChild(parent, child),
				"%s/%s", parent, child)
		}
	}
}
