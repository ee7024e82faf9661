// Package cli implements the bootform command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is injected during build.
var Version = "dev"

// NewRootCommand builds the command tree. A nil prompter falls back to the
// terminal survey driver.
func NewRootCommand(prompter Prompter) *cobra.Command {
	if prompter == nil {
		prompter = NewSurveyPrompter()
	}
	root := &cobra.Command{
		Use:   "bootform",
		Short: "bootform renders Bootstrap 5 forms from YAML definitions",
		Long: `bootform renders static controls, custom controls and buttons with
Bootstrap 5 markup. Definitions describe the record and the ordered list of
controls; an optional config file sets the layout, grid columns, class
overrides and translations.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRenderCommand(prompter))
	root.AddCommand(newFieldsCommand())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
