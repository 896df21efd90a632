package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/djmisieq/chmurowy-system-mrp/internal/domain"
	"github.com/djmisieq/chmurowy-system-mrp/internal/validation"
)

// Tree-drawing characters.
const (
	treeBranch = "├── "
	treeLast   = "└── "
	treePipe   = "│   "
	treeSpace  = "    "
)

// ItemStatus marks a tree row that carries validation findings.
type ItemStatus string

const (
	StatusOK      ItemStatus = ""
	StatusError   ItemStatus = "error"
	StatusWarning ItemStatus = "warning"
)

// TreeItem is one row of a rendered BOM tree.
type TreeItem struct {
	ID     string
	Title  string
	Kind   domain.NodeKind
	Level  int    // 0 for roots
	IsLast bool   // last sibling at its level
	Guides []bool // per ancestor level below the root: true draws a pipe
	Status ItemStatus
}

// BuildTreeItems flattens forest into pre-order rows. Findings in res are
// attached to the rows whose id they name; errors win over warnings.
func BuildTreeItems(forest domain.Forest, res validation.Result) []TreeItem {
	status := make(map[string]ItemStatus, len(res.Errors)+len(res.Warnings))
	for _, w := range res.Warnings {
		status[w.NodeID] = StatusWarning
	}
	for _, e := range res.Errors {
		status[e.NodeID] = StatusError
	}

	type entry struct {
		node   *domain.BomNode
		level  int
		isLast bool
		guides []bool
	}

	var items []TreeItem
	stack := make([]entry, 0, len(forest))
	for i := len(forest) - 1; i >= 0; i-- {
		stack = append(stack, entry{node: forest[i], isLast: i == len(forest)-1})
	}

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.node == nil {
			continue
		}

		title := e.node.Name
		if title == "" {
			title = e.node.ID
		}
		items = append(items, TreeItem{
			ID:     e.node.ID,
			Title:  title,
			Kind:   e.node.Kind,
			Level:  e.level,
			IsLast: e.isLast,
			Guides: e.guides,
			Status: status[e.node.ID],
		})

		var childGuides []bool
		if e.level > 0 {
			childGuides = make([]bool, len(e.guides), len(e.guides)+1)
			copy(childGuides, e.guides)
			childGuides = append(childGuides, !e.isLast)
		}
		children := e.node.Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, entry{
				node:   children[i],
				level:  e.level + 1,
				isLast: i == len(children)-1,
				guides: childGuides,
			})
		}
	}
	return items
}

// RenderTree renders tree items with box-drawing connectors, a kind badge
// and a depth column aligned to the widest row.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return Dim("  (empty)") + "\n"
	}

	prefixes := make([]string, len(items))
	maxWidth := 0
	for i, item := range items {
		prefixes[i] = treePrefix(item)
		if w := lipgloss.Width(prefixes[i] + item.Title + " [" + string(item.Kind) + "]"); w > maxWidth {
			maxWidth = w
		}
	}

	var b strings.Builder
	for i, item := range items {
		title := item.Title
		switch {
		case item.Level == 0:
			title = Bold(title)
		case item.Status == StatusError:
			title = StyleRed.Render(title)
		}

		row := prefixes[i] + title + " " + KindColor(item.Kind).Render("["+string(item.Kind)+"]")
		pad := maxWidth - lipgloss.Width(row)
		if pad < 0 {
			pad = 0
		}
		b.WriteString("  ")
		b.WriteString(row)
		b.WriteString(strings.Repeat(" ", pad+2))
		b.WriteString(Dim(fmt.Sprintf("d%d", item.Level)))
		if item.ID != item.Title {
			b.WriteString(" " + Dim(item.ID))
		}
		switch item.Status {
		case StatusError:
			b.WriteString(" " + StyleRedBold.Render("✘"))
		case StatusWarning:
			b.WriteString(" " + StyleYellowBold.Render("▲"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func treePrefix(item TreeItem) string {
	if item.Level == 0 {
		return ""
	}
	var b strings.Builder
	for _, g := range item.Guides {
		if g {
			b.WriteString(StyleDim.Render(treePipe))
		} else {
			b.WriteString(treeSpace)
		}
	}
	if item.IsLast {
		b.WriteString(StyleDim.Render(treeLast))
	} else {
		b.WriteString(StyleDim.Render(treeBranch))
	}
	return b.String()
}
