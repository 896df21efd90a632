package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/djmisieq/chmurowy-system-mrp/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleRedBold    = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// KindColor returns the style used for a node kind badge.
func KindColor(kind domain.NodeKind) lipgloss.Style {
	switch kind {
	case domain.NodeAssembly:
		return StylePurple
	case domain.NodeSubassembly:
		return StyleBlue
	case domain.NodePart:
		return StyleGreen
	case domain.NodeMaterial:
		return StyleYellow
	default:
		return StyleRed
	}
}

// ValidityIndicator returns "● VALID" in green or "● INVALID" in red.
func ValidityIndicator(valid bool) string {
	if valid {
		return StyleGreen.Render("● VALID")
	}
	return StyleRed.Render("● INVALID")
}

// MoveIndicator returns "● ALLOWED" in green or "● BLOCKED" in red.
func MoveIndicator(allowed bool) string {
	if allowed {
		return StyleGreen.Render("● ALLOWED")
	}
	return StyleRed.Render("● BLOCKED")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
