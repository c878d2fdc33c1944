package up

import (
	"github.com/arthur-debert/dotstrap/internal/cli"
	"github.com/arthur-debert/dotstrap/pkg/bootstrap"
	"github.com/arthur-debert/dotstrap/pkg/logging"
	"github.com/arthur-debert/dotstrap/pkg/report"
	"github.com/spf13/cobra"
)

// NewCommand creates the up command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "up",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		RunE:    run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := logging.GetLogger("cmd.up")

	dryRun, _ := cmd.Flags().GetBool("dry-run")

	app, err := cli.NewApp(ctx)
	if err != nil {
		return err
	}

	logger.Info().
		Str("platform", app.Platform.String()).
		Str("dotfiles", app.Paths.DotfilesRoot()).
		Bool("dryRun", dryRun).
		Msg("Starting bootstrap")

	steps := bootstrap.Plan(app.Config, app.Platform)
	renderer := report.New(cmd.OutOrStdout())

	if dryRun {
		renderer.Plan(steps)
		return nil
	}

	if err := bootstrap.Preflight(ctx, app.Runner, app.Platform); err != nil {
		return err
	}

	result, err := bootstrap.Execute(ctx, steps, app.Deps())
	if err != nil {
		return err
	}

	renderer.Summary(result, app.Platform)
	return nil
}
