package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd removes a project from the registry.
var deleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a project",
	Long: `Remove a project from the registry.

With no argument, deletes the active project. The "default" project cannot
be deleted. Deleting the active project makes "default" active.`,
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

		result, err := eng.Delete(cmd.Context(), name)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess(fmt.Sprintf("Deleted project %q", result.Name))
		if result.WasActive {
			PrintInfo(fmt.Sprintf("Active project is now %q", result.NewActive))
		}
		printWarnings(result.Warnings)
		return nil
	},
}
