package cli

import (
	"encoding/json"
	"fmt"

	"github.com/djmisieq/chmurowy-system-mrp/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newValidateCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Validate the structure of one or more BOM files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			reports, err := app.Validation.ValidateFiles(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(reports); err != nil {
					return fmt.Errorf("encoding reports: %w", err)
				}
			} else {
				for _, r := range reports {
					fmt.Fprint(out, formatter.FormatReport(formatter.ReportData{
						Path:         r.Path,
						Name:         r.Name,
						NodeCount:    r.NodeCount,
						SchemaErrors: r.SchemaErrors,
						Result:       r.Result,
					}))
				}
			}

			invalid := 0
			for _, r := range reports {
				if !r.Valid() {
					invalid++
				}
			}
			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d files invalid", ErrValidationFailed, invalid, len(reports))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")

	return cmd
}
