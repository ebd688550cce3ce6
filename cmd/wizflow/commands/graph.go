package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/wizflow/cmd/wizflow/handlers"
)

// Graph returns the command that prints a wizard's step graph.
func Graph() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "graph <wizard-file>",
		Short: "Print the step graph of a wizard",
		Long: `Print every step of a wizard with its outgoing transitions.

Formats:
  text  one block per step (default)
  dot   Graphviz source, e.g. wizflow graph signup.yaml --format dot | dot -Tsvg`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeWizardFiles,
		RunE: func(_ *cobra.Command, args []string) error {
			return handlers.Graph(args[0], format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or dot")

	return cmd
}
