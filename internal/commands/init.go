package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/grapmap-dev/grapmap/internal/config"
	"github.com/grapmap-dev/grapmap/internal/rules"
)

func newInitCommand() *cobra.Command {
	var name string
	var entityType string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new grapmap project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, name, entityType)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "reporting entity name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&entityType, "entity-type", "public_entity", "entity type")

	return cmd
}

func runInit(cmd *cobra.Command, dir, name, entityType string) error {
	for _, d := range []string{"input", "reports"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write grapmap.yaml.
	cfg := config.Default(name, entityType)
	if err := config.Save(filepath.Join(dir, "grapmap.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the starter rule table so the mapping is reviewable and
	// versionable alongside the trial balances.
	if err := rules.Save(filepath.Join(dir, cfg.Rules.Path), rules.DefaultTable()); err != nil {
		return fmt.Errorf("writing rule table: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized grapmap project at %s\n", dir)
	return nil
}
