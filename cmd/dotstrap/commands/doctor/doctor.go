package doctor

import (
	"github.com/arthur-debert/dotstrap/internal/cli"
	"github.com/arthur-debert/dotstrap/pkg/bootstrap"
	"github.com/arthur-debert/dotstrap/pkg/errors"
	"github.com/arthur-debert/dotstrap/pkg/report"
	"github.com/spf13/cobra"
)

// NewCommand creates the doctor command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "doctor",
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

	checks := bootstrap.Checks(cmd.Context(), app.Runner, app.Platform)
	if ok := report.New(cmd.OutOrStdout()).Checks(checks); !ok {
		return errors.New(errors.ErrPrereqMissing, "some prerequisites are missing")
	}
	return nil
}
