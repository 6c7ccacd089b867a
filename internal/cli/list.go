package cli

import (
	"github.com/spf13/cobra"
)

// listCmd prints the grouped project listing.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects, grouped by name prefix",
	Long: `Display all projects in their hierarchical groups.

Projects named "parent:child" are listed under a PARENT heading; all other
projects appear first under the ungrouped heading. The active project and
its group heading are highlighted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.List(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if result.Total == 0 {
			PrintEmptyState("No projects found")
			return nil
		}

		for i, group := range result.Groups {
			if i > 0 {
				PrintInfo("")
			}
			PrintHeading(group.Heading, group.Active)
			for _, entry := range group.Entries {
				PrintProjectLine(entry.Index, entry.Name, entry.Active)
			}
		}
		return nil
	},
}
