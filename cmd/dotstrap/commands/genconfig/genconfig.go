package genconfig

import (
	"github.com/arthur-debert/dotstrap/internal/cli"
	"github.com/arthur-debert/dotstrap/pkg/config"
	"github.com/spf13/cobra"
)

// NewCommand creates the genconfig command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		RunE:    run,
	}

	cmd.Flags().Bool("effective", false, "Print the merged configuration this machine would use")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	effective, _ := cmd.Flags().GetBool("effective")

	if !effective {
		_, err := cmd.OutOrStdout().Write(config.DefaultTOML())
		return err
	}

	app, err := cli.NewApp(cmd.Context())
	if err != nil {
		return err
	}

	out, err := config.Dump(app.Config)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
