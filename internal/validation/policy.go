package validation

import (
	"sort"

	"github.com/djmisieq/chmurowy-system-mrp/internal/domain"
)

// defaultAllowedChildren is the built-in compatibility table.
var defaultAllowedChildren = map[domain.NodeKind][]domain.NodeKind{
	domain.NodeAssembly:    {domain.NodeAssembly, domain.NodeSubassembly, domain.NodePart, domain.NodeMaterial},
	domain.NodeSubassembly: {domain.NodePart, domain.NodeMaterial},
	domain.NodePart:        {domain.NodeMaterial},
	domain.NodeMaterial:    {},
}

// Policy maps each parent kind to the set of kinds it may directly contain.
// A Policy is read-only once built and may be shared between goroutines.
type Policy struct {
	allowed map[domain.NodeKind]map[domain.NodeKind]bool
}

// NewPolicy builds a Policy from a parent kind -> allowed child kinds table.
// Kinds missing from the table accept no children.
func NewPolicy(table map[domain.NodeKind][]domain.NodeKind) Policy {
	allowed := make(map[domain.NodeKind]map[domain.NodeKind]bool, len(table))
	for parent, children := range table {
		set := make(map[domain.NodeKind]bool, len(children))
		for _, c := range children {
			set[c] = true
		}
		allowed[parent] = set
	}
	return Policy{allowed: allowed}
}

// DefaultPolicy returns the standard assembly > subassembly > part > material table.
func DefaultPolicy() Policy {
	return NewPolicy(defaultAllowedChildren)
}

// IsAllowedChild reports whether a child of kind child may sit directly under
// a parent of kind parent.
func (p Policy) IsAllowedChild(parent, child domain.NodeKind) bool {
	return p.allowed[parent][child]
}

// AllowedChildren lists the kinds parent may contain, most composable first.
func (p Policy) AllowedChildren(parent domain.NodeKind) []domain.NodeKind {
	set := p.allowed[parent]
	out := make([]domain.NodeKind, 0, len(set))
	for k, ok := range set {
		if ok {
			out = append(out, k)
		}
	}
	sortKinds(out)
	return out
}

// Kinds lists every parent kind the policy has a rule for.
func (p Policy) Kinds() []domain.NodeKind {
	out := make([]domain.NodeKind, 0, len(p.allowed))
	for k := range p.allowed {
		out = append(out, k)
	}
	sortKinds(out)
	return out
}

// Table returns a copy of the policy as a parent -> children table.
func (p Policy) Table() map[domain.NodeKind][]domain.NodeKind {
	out := make(map[domain.NodeKind][]domain.NodeKind, len(p.allowed))
	for _, k := range p.Kinds() {
		out[k] = p.AllowedChildren(k)
	}
	return out
}

func sortKinds(kinds []domain.NodeKind) {
	sort.Slice(kinds, func(i, j int) bool {
		ri, rj := kinds[i].Rank(), kinds[j].Rank()
		if ri != rj {
			return ri < rj
		}
		return kinds[i] < kinds[j]
	})
}
