package formatter

import (
	"strconv"
	"strings"

	"github.com/djmisieq/chmurowy-system-mrp/internal/validation"
)

// FormatPolicy renders the parent/child compatibility table of p together
// with the depth threshold the validator warns at.
func FormatPolicy(p validation.Policy, depthThreshold int) string {
	kinds := p.Kinds()
	rows := make([][]string, 0, len(kinds))
	for _, parent := range kinds {
		allowed := p.AllowedChildren(parent)
		cell := Dim("none (leaf)")
		if len(allowed) > 0 {
			names := make([]string, len(allowed))
			for i, k := range allowed {
				names[i] = KindColor(k).Render(string(k))
			}
			cell = strings.Join(names, Dim(", "))
		}
		rows = append(rows, []string{KindColor(parent).Render(string(parent)), cell})
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"PARENT", "ALLOWED CHILDREN"}, rows))
	b.WriteString("\n")
	b.WriteString(field("DEPTH", "warn at depth ≥ "+Bold(strconv.Itoa(depthThreshold))))
	return RenderBox("Compatibility policy", strings.TrimRight(b.String(), "\n"))
}
