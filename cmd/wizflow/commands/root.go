// Package commands defines the CLI command structure and flag bindings.
//
// Command execution is delegated to handler functions in the handlers
// package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the wizflow CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "wizflow",
		Short:        "Run step-by-step wizards from declarative files",
		SilenceUsage: true,
	}

	cmd.AddCommand(Run())
	cmd.AddCommand(Validate())
	cmd.AddCommand(Graph())

	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
