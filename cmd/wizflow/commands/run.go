package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/wizflow/cmd/wizflow/handlers"
)

// Run returns the command that runs a wizard.
//
// Flags left unset fall back to the user settings file and WIZFLOW_*
// environment variables.
//
//	--output, -o: Result file path
//	--format, -f: Result format (yaml or json)
//	--locale, -l: Locale of the navigation labels
//	--plain: Use line prompts even on a terminal
//	--alt-screen: Run the terminal UI in the alternate screen
//	--metrics-file: Write navigation metrics in textfile format
//	--config, -c: Settings file
//	--verbose, -v: Log navigation to stderr
func Run() *cobra.Command {
	var opts handlers.RunOptions

	cmd := &cobra.Command{
		Use:   "run <wizard-file>",
		Short: "Run a wizard",
		Long: `Run the wizard declared in a YAML, JSON or TOML file.

On a terminal the wizard opens as an interactive UI:
  enter   submit the step and go to the next one
  ctrl+b  go back one step
  ctrl+c  quit without saving

Otherwise each field is asked on its own line. Type :back to return to
the previous step and :quit to stop.

The answers are written to the result file when the wizard finishes.

Examples:
  wizflow run signup.yaml
  wizflow run signup.yaml -o answers.json
  wizflow run signup.toml --plain < replies.txt`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeWizardFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.DefinitionPath = args[0]
			opts.AltScreenSet = cmd.Flags().Changed("alt-screen")
			return handlers.Run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Result file path (default from settings)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Result format: yaml or json (default from output extension)")
	cmd.Flags().StringVarP(&opts.Locale, "locale", "l", "", "Locale of the navigation labels")
	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "Use line prompts even on a terminal")
	cmd.Flags().BoolVar(&opts.AltScreen, "alt-screen", false, "Run the terminal UI in the alternate screen")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "Write navigation metrics to this file")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Settings file (default: $XDG_CONFIG_HOME/wizflow/config.toml)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log navigation to stderr")

	return cmd
}
