package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grapmap-dev/grapmap/internal/classifier"
	"github.com/grapmap-dev/grapmap/internal/rules"
)

func newRulesCommand() *cobra.Command {
	var rulesPath string

	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect the classification rule table",
	}
	rulesCmd.PersistentFlags().StringVar(&rulesPath, "rules", "", "rule table file (default: built-in table)")

	rulesCmd.AddCommand(newRulesListCommand(&rulesPath))
	rulesCmd.AddCommand(newRulesCheckCommand(&rulesPath))

	return rulesCmd
}

func newRulesListCommand(rulesPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rules in evaluation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := tableFromFlag(*rulesPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rule table version %s, %d rules\n", table.Version, len(table.Rules))
			for _, r := range table.Ordered() {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d  %-40s -> %s\n", r.Priority, r.Describe(), r.Code)
			}
			return nil
		},
	}
}

func newRulesCheckCommand(rulesPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check <label>",
		Short: "Show which rule a label classifies under",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := tableFromFlag(*rulesPath)
			if err != nil {
				return err
			}
			label := strings.Join(args, " ")
			rule, ok := classifier.New(table).Lookup(label)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%q is UNMAPPED (normalised: %q)\n", label, classifier.Normalize(label))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q -> %s (rule %s, priority %d)\n", label, rule.Code, rule.Describe(), rule.Priority)
			return nil
		},
	}
}

func tableFromFlag(path string) (*rules.Table, error) {
	if path == "" {
		return rules.DefaultTable(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("rule table %s: %w", path, err)
	}
	return rules.Load(path)
}
