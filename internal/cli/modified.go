package cli

import (
	"github.com/spf13/cobra"
)

// modifiedCmd reports whether the session has drifted from the active
// project's snapshot.
var modifiedCmd = &cobra.Command{
	Use:   "modified",
	Short: "Report whether the session has drifted from the active project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		modified, err := eng.Modified(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(map[string]bool{"modified": modified})
		}

		if modified {
			PrintInfo("true")
		} else {
			PrintInfo("false")
		}
		return nil
	},
}
