package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/proj-cli/proj/internal/engine"
)

// loadCmd restores a project's session.
var loadCmd = &cobra.Command{
	Use:     "load [name]",
	Aliases: []string{"open"},
	Short:   "Restore a project's session",
	Long: `Close the current session and restore the named project's open files and
working directory. With no argument, loads "default".

If the named project is already active and the session has not drifted,
nothing happens. Files or directories that no longer exist are skipped with
a warning.`,
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

		result, err := eng.Load(cmd.Context(), name)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		printLoadResult(result)
		return nil
	},
}

// printLoadResult renders a LoadResult for human output.
func printLoadResult(result *engine.LoadResult) {
	if result.AlreadyActive {
		PrintInfo(fmt.Sprintf("%q is already active, no drift", result.Name))
		return
	}

	if result.SavedPrevious {
		PrintInfo("Saved the outgoing project before switching")
	}
	PrintSuccess(fmt.Sprintf("Loaded project %q (%d files opened)", result.Name, result.OpenedCount))
	for _, f := range result.MissingFiles {
		PrintWarning(fmt.Sprintf("Skipped missing file %s", f))
	}
	if result.MissingDir != "" {
		PrintWarning(fmt.Sprintf("Directory %s no longer exists; working directory unchanged", result.MissingDir))
	}
	printWarnings(result.Warnings)
}
