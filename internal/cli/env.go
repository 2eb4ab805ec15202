package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shhac/postie/internal/domain"
)

func newEnvCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Show or change saved base URLs",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get [environment]",
		Short: "Print saved base URLs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := opts.services()
			if err != nil {
				return err
			}
			saved := services.Environments.Saved()

			if len(args) == 1 {
				env, err := domain.ParseEnvironment(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), saved.Get(env))
				return nil
			}

			for _, env := range domain.Environments {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", env, saved.Get(env))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <environment> <base-url>",
		Short: "Save the base URL of an environment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := domain.ParseEnvironment(args[0])
			if err != nil {
				return err
			}
			services, err := opts.services()
			if err != nil {
				return err
			}
			return services.Environments.SaveFor(env, args[1])
		},
	})

	return cmd
}
