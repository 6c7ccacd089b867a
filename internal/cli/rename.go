package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// renameCmd renames a project.
var renameCmd = &cobra.Command{
	Use:   "rename [old] <new>",
	Short: "Rename a project",
	Long: `Rename a project.

With a single argument, the active project is renamed to it. With two
arguments, the first names the project to rename.`,
	Args:              cobra.RangeArgs(1, 2),
	ValidArgsFunction: projectNameCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		oldName, newName := "", args[0]
		if len(args) == 2 {
			oldName, newName = args[0], args[1]
		}

		result, err := eng.Rename(cmd.Context(), oldName, newName)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess(fmt.Sprintf("Renamed %q to %q", result.OldName, result.NewName))
		printWarnings(result.Warnings)
		return nil
	},
}
