package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// closeCmd clears the live session.
var closeCmd = &cobra.Command{
	Use:   "close",
	Short: "Close the session, saving the active project if modified",
	Long: `Close every open file and reset the active project to "default".

If the session has drifted from the active project's snapshot, the project
is saved first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Close(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if result.Saved {
			PrintInfo(fmt.Sprintf("Saved modified project %q", result.SavedName))
		}
		PrintSuccess("Session closed")
		printWarnings(result.Warnings)
		return nil
	},
}
