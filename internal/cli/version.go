package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shhac/postie/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of postie-web",
		Args:  cobra.NoArgs,
		// Config is not needed to print the version
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "postie-web %s\n", version.Version)
		},
	}
}
