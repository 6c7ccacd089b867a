package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/proj-cli/proj/internal/completion"
	"github.com/proj-cli/proj/internal/config"
	"github.com/proj-cli/proj/internal/engine"
	"github.com/proj-cli/proj/internal/fsops"
	"github.com/proj-cli/proj/internal/session"
	"github.com/proj-cli/proj/internal/state"
)

// newEngine creates a new engine with real implementations of all
// dependencies.
func newEngine() (*engine.Engine, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, err
	}
	if err := paths.EnsureDirectories(); err != nil {
		return nil, err
	}

	settings, err := config.LoadSettings(paths.Config)
	if err != nil {
		return nil, err
	}
	defaultDir, err := settings.ResolveDefaultDir()
	if err != nil {
		return nil, err
	}

	completionsPath := paths.Completions
	if settings.CompletionsPath != "" {
		completionsPath = settings.CompletionsPath
	}

	fs := fsops.NewRealFS()
	store := state.NewFileRegistryStore(fs, paths.Registry)
	sess := session.NewFileSession(fs, paths.Session)
	exporter := completion.NewFileExporter(fs, completionsPath)

	return engine.New(store, sess, exporter, defaultDir), nil
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printWarnings renders non-fatal warnings collected by an operation.
func printWarnings(warnings []string) {
	for _, w := range warnings {
		PrintWarning(w)
	}
}

// projectNameCompletion completes project-name arguments from the live
// registry.
func projectNameCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	eng, err := newEngine()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names, err := eng.Names(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
