package cli

import (
	"encoding/json"
	"fmt"

	"github.com/djmisieq/chmurowy-system-mrp/internal/bomfile"
	"github.com/djmisieq/chmurowy-system-mrp/internal/cli/formatter"
	"github.com/djmisieq/chmurowy-system-mrp/internal/service"
	"github.com/spf13/cobra"
)

func newMoveCmd(app *App) *cobra.Command {
	var (
		format string
		apply  bool
	)

	cmd := &cobra.Command{
		Use:   "move FILE SOURCE TARGET",
		Short: "Check whether SOURCE may be moved under TARGET",
		Long: "Check whether the item SOURCE may be moved under TARGET.\n\n" +
			"With --apply, a legal move prints the updated BOM in the input file's format.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			report, err := app.Validation.CheckMove(cmd.Context(), service.MoveRequest{
				Path:     args[0],
				SourceID: args[1],
				TargetID: args[2],
				Apply:    apply,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case apply && report.Result.IsValid:
				return bomfile.Encode(out, bomfile.FromForest(report.Name, report.Forest), report.Format)
			case format == "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return fmt.Errorf("encoding move report: %w", err)
				}
			default:
				fmt.Fprint(out, formatter.FormatMove(formatter.MoveData{
					Path:     report.Path,
					SourceID: report.SourceID,
					TargetID: report.TargetID,
					Result:   report.Result,
				}))
			}

			if !report.Result.IsValid {
				first := report.Result.Errors[0]
				return fmt.Errorf("%w: %s", ErrValidationFailed, first.Code)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&apply, "apply", false, "Print the BOM with the move applied when it is legal")

	return cmd
}
