package cli

import (
	"fmt"

	"github.com/djmisieq/chmurowy-system-mrp/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTreeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tree FILE",
		Short: "Render a BOM file as a tree with kinds, depths and findings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Validation.ValidateFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(report.SchemaErrors) > 0 {
				fmt.Fprint(out, formatter.FormatReport(formatter.ReportData{
					Path:         report.Path,
					Name:         report.Name,
					SchemaErrors: report.SchemaErrors,
					Result:       report.Result,
				}))
				return fmt.Errorf("%w: %s has schema errors", ErrValidationFailed, report.Path)
			}

			title := report.Path
			if report.Name != "" {
				title = report.Name + " " + formatter.Dim(report.Path)
			}
			fmt.Fprintln(out, formatter.Bold(title))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.RenderTree(formatter.BuildTreeItems(report.Forest, report.Result)))
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("%s · %s · %s",
				formatter.Pluralize(report.NodeCount, "item", "items"),
				formatter.Pluralize(len(report.Result.Errors), "error", "errors"),
				formatter.Pluralize(len(report.Result.Warnings), "warning", "warnings"),
			)))
			return nil
		},
	}
}
