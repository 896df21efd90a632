package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/djmisieq/chmurowy-system-mrp/internal/config"
	"github.com/djmisieq/chmurowy-system-mrp/internal/service"
	"github.com/djmisieq/chmurowy-system-mrp/internal/validation"
	"github.com/spf13/cobra"
)

// ErrValidationFailed is returned when a checked BOM or move has errors.
var ErrValidationFailed = errors.New("validation failed")

// App holds the configuration and services used by CLI commands. The
// validation service is built once global flags have been applied.
type App struct {
	Config config.Config

	// LogOutput receives use-case logs when logging is enabled. Nil means
	// the command's stderr.
	LogOutput io.Writer

	Validation service.ValidationService
	validator  *validation.Validator
}

// NewRootCmd creates the top-level "bomcheck" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var (
		depthThreshold int
		policyPath     string
		verbose        bool
	)

	root := &cobra.Command{
		Use:           "bomcheck",
		Short:         "Structural validator for bill-of-materials trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("depth-threshold") {
				if depthThreshold < 1 {
					return fmt.Errorf("--depth-threshold must be positive, got %d", depthThreshold)
				}
				app.Config.DepthThreshold = depthThreshold
			}
			if flags.Changed("policy") {
				app.Config.PolicyPath = policyPath
			}
			if verbose {
				app.Config.LogUseCases = true
			}
			return app.wire(cmd)
		},
	}

	root.PersistentFlags().IntVar(&depthThreshold, "depth-threshold", validation.DefaultDepthThreshold, "Warn when an item sits at or below this depth")
	root.PersistentFlags().StringVar(&policyPath, "policy", "", "YAML file with the parent/child compatibility table")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log use cases to stderr")

	root.AddCommand(
		newValidateCmd(app),
		newMoveCmd(app),
		newTreeCmd(app),
		newPolicyCmd(app),
	)

	return root
}

// wire builds the validator and service from the effective configuration.
func (app *App) wire(cmd *cobra.Command) error {
	opts, err := app.Config.ValidatorOptions()
	if err != nil {
		return err
	}
	app.validator = validation.New(opts...)

	var observers []service.UseCaseObserver
	if app.Config.LogUseCases {
		w := app.LogOutput
		if w == nil {
			w = cmd.ErrOrStderr()
		}
		observers = append(observers, service.NewLogUseCaseObserver(w))
	}
	app.Validation = service.NewValidationService(app.validator, app.Config.Concurrency, observers...)
	return nil
}

func checkFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("unsupported --format %q (want text or json)", format)
	}
}
