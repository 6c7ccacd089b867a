package cli

import (
	"github.com/spf13/cobra"
)

// activeCmd prints the active project's name.
var activeCmd = &cobra.Command{
	Use:   "active",
	Short: "Print the active project's name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		name, err := eng.Active(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(map[string]string{"active": name})
		}

		PrintInfo(name)
		return nil
	},
}
