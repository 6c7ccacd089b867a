package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// saveCmd captures the live session into a project.
var saveCmd = &cobra.Command{
	Use:   "save [name]",
	Short: "Save the current session under a project name",
	Long: `Capture the session's open files and working directory into a project.

With no argument, the active project is overwritten. A name that matches no
existing project creates a new one.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: projectNameCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		name := ""
		if len(args) == 1 {
			name = args[0]
		}

		result, err := eng.Save(cmd.Context(), name)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if result.Created {
			PrintSuccess(fmt.Sprintf("Created project %q (%d open files)", result.Name, result.FileCount))
		} else {
			PrintSuccess(fmt.Sprintf("Saved project %q (%d open files)", result.Name, result.FileCount))
		}
		printWarnings(result.Warnings)
		return nil
	},
}
