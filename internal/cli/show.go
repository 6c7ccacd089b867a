package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// showCmd prints detailed information about a project.
var showCmd = &cobra.Command{
	Use:     "show [name]",
	Aliases: []string{"info"},
	Short:   "Show a project's stored snapshot",
	Long: `Display a project's working directory and open-file list.

With no argument, shows the active project.`,
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

		info, err := eng.Show(cmd.Context(), name)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(info)
		}

		PrintSection(info.Name)
		PrintLabelValue("Index", fmt.Sprintf("%d", info.Index))
		PrintLabelValue("Directory", info.ActiveDir)
		PrintLabelValue("Active", fmt.Sprintf("%t", info.Active))
		if len(info.OpenedFiles) == 0 {
			PrintLabelValue("Open files", "none")
			return nil
		}
		PrintLabelValue("Open files", strings.Join(info.OpenedFiles, ", "))
		return nil
	},
}
