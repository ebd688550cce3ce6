package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/wizflow/cmd/wizflow/handlers"
)

// Validate returns the command that checks wizard files.
func Validate() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate <wizard-file>...",
		Short: "Check wizard files for errors",
		Long: `Check wizard files for errors without running them.

Reports every problem in a file: missing or duplicate step ids, unknown
next and goto targets, select fields without options, invalid patterns
and conditions on undeclared fields. Steps that cannot be reached from
the initial step are reported as warnings; --strict turns them into
errors.`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeWizardFiles,
		RunE: func(_ *cobra.Command, args []string) error {
			return handlers.Validate(args, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat unreachable steps as errors")

	return cmd
}
