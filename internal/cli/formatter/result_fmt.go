package formatter

import (
	"fmt"
	"strings"

	"github.com/djmisieq/chmurowy-system-mrp/internal/validation"
)

// ReportData holds everything needed to render one file's validation report.
type ReportData struct {
	Path         string
	Name         string
	NodeCount    int
	SchemaErrors []string
	Result       validation.Result
}

// MoveData holds everything needed to render a move check.
type MoveData struct {
	Path     string
	SourceID string
	TargetID string
	Result   validation.Result
}

// FormatReport renders a full-tree validation report inside a box.
func FormatReport(d ReportData) string {
	var b strings.Builder

	title := d.Path
	if d.Name != "" {
		title = d.Name
	}
	b.WriteString(Bold(title) + "\n")
	if d.Name != "" {
		b.WriteString(Dim(d.Path) + "\n")
	}
	b.WriteString("\n")

	valid := len(d.SchemaErrors) == 0 && d.Result.IsValid
	b.WriteString(field("STATUS", ValidityIndicator(valid)))
	b.WriteString(field("ITEMS", fmt.Sprintf("%d", d.NodeCount)))
	if len(d.SchemaErrors) > 0 {
		b.WriteString(field("SCHEMA", StyleRed.Render(Pluralize(len(d.SchemaErrors), "error", "errors"))))
	} else {
		b.WriteString(field("FINDINGS", summary(d.Result)))
	}

	if len(d.SchemaErrors) > 0 {
		b.WriteString("\n" + Header("Schema errors") + "\n")
		for _, msg := range d.SchemaErrors {
			b.WriteString("  " + StyleRed.Render("✘") + " " + msg + "\n")
		}
	}
	b.WriteString(issueSections(d.Result))

	return RenderBox("BOM validation", strings.TrimRight(b.String(), "\n"))
}

// FormatMove renders the outcome of a move check inside a box.
func FormatMove(d MoveData) string {
	var b strings.Builder

	b.WriteString(Bold(d.SourceID) + Dim(" → ") + Bold(d.TargetID) + "\n")
	b.WriteString(Dim(d.Path) + "\n\n")
	b.WriteString(field("STATUS", MoveIndicator(d.Result.IsValid)))
	b.WriteString(field("FINDINGS", summary(d.Result)))
	b.WriteString(issueSections(d.Result))

	return RenderBox("Move check", strings.TrimRight(b.String(), "\n"))
}

func summary(res validation.Result) string {
	errs := Pluralize(len(res.Errors), "error", "errors")
	warns := Pluralize(len(res.Warnings), "warning", "warnings")
	if len(res.Errors) > 0 {
		errs = StyleRed.Render(errs)
	}
	if len(res.Warnings) > 0 {
		warns = StyleYellow.Render(warns)
	}
	return errs + Dim(", ") + warns
}

func issueSections(res validation.Result) string {
	var b strings.Builder
	if len(res.Errors) > 0 {
		b.WriteString("\n" + Header("Errors") + "\n")
		b.WriteString(issueTable(res.Errors, StyleRed.Render))
	}
	if len(res.Warnings) > 0 {
		b.WriteString("\n" + Header("Warnings") + "\n")
		b.WriteString(issueTable(res.Warnings, StyleYellow.Render))
	}
	return b.String()
}

func issueTable(issues []validation.Issue, codeStyle func(...string) string) string {
	rows := make([][]string, 0, len(issues))
	for _, is := range issues {
		item := is.NodeID
		if item == "" {
			item = Dim("-")
		}
		rows = append(rows, []string{codeStyle(string(is.Code)), item, is.Message})
	}
	return RenderTable([]string{"CODE", "ITEM", "MESSAGE"}, rows)
}
