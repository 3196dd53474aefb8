package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eadf/vector-traits/internal/constants"
)

func installVersionCmd(app *App) {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Prints the version of the program",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", constants.CmdName, constants.Version)
			return nil
		},
	}

	app.cmd.AddCommand(versionCmd)
}
