package commands

import "github.com/spf13/cobra"

// wizardFileExtensions are the definition formats the loader accepts.
var wizardFileExtensions = []string{"yaml", "yml", "json", "toml"}

// completeWizardFiles limits shell completion to wizard definition files.
func completeWizardFiles(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return wizardFileExtensions, cobra.ShellCompDirectiveFilterFileExt
}
