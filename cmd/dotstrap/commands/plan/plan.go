package plan

import (
	"github.com/arthur-debert/dotstrap/internal/cli"
	"github.com/arthur-debert/dotstrap/pkg/bootstrap"
	"github.com/arthur-debert/dotstrap/pkg/report"
	"github.com/spf13/cobra"
)

// NewCommand creates the plan command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "plan",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		RunE:    run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	app, err := cli.NewApp(cmd.Context())
	if err != nil {
		return err
	}

	steps := bootstrap.Plan(app.Config, app.Platform)
	report.New(cmd.OutOrStdout()).Plan(steps)
	return nil
}
