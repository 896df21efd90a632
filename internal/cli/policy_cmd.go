package cli

import (
	"fmt"

	"github.com/djmisieq/chmurowy-system-mrp/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPolicyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Show the effective parent/child compatibility table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPolicy(app.validator.Policy(), app.validator.DepthThreshold()))
			return nil
		},
	}
}
