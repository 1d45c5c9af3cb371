package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grapmap-dev/grapmap/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "grapmap",
		Short:   "GRAP financial statement generation from trial balances",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newRulesCommand())

	return rootCmd
}
