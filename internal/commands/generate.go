package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/grapmap-dev/grapmap/internal/config"
	"github.com/grapmap-dev/grapmap/internal/ingest"
	"github.com/grapmap-dev/grapmap/internal/pipeline"
	"github.com/grapmap-dev/grapmap/internal/report"
	"github.com/grapmap-dev/grapmap/internal/rules"
	"github.com/grapmap-dev/grapmap/internal/statement"
)

func newGenerateCommand() *cobra.Command {
	var configPath string
	var rulesPath string
	var format string
	var outDir string

	cmd := &cobra.Command{
		Use:   "generate <trial-balance-file>",
		Short: "Generate GRAP financial statements from a trial balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], configPath, rulesPath, format, outDir)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "grapmap.yaml", "config file")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "rule table file (overrides config)")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or csv")
	cmd.Flags().StringVar(&outDir, "out", "", "write the report into this directory instead of stdout")

	return cmd
}

func runGenerate(cmd *cobra.Command, tbPath, configPath, rulesPath, format, outDir string) error {
	cfg := config.Default("", "public_entity")
	if _, err := os.Stat(configPath); err == nil {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	table, err := loadTable(rulesPath, cfg)
	if err != nil {
		return err
	}

	tolerance, err := decimal.NewFromString(cfg.Reporting.Tolerance)
	if err != nil {
		return fmt.Errorf("invalid tolerance %q in config: %w", cfg.Reporting.Tolerance, err)
	}

	engine, err := pipeline.New(table, statement.WithTolerance(tolerance))
	if err != nil {
		return err
	}

	parsed, err := ingest.DefaultRegistry().ParseFile(tbPath)
	if err != nil {
		return err
	}

	result := engine.Run(parsed.Rows, parsed.Rejects, parsed.Warnings)
	meta := report.Meta{
		Entity:    cfg.Entity.Name,
		PeriodEnd: periodEnd(cfg.Reporting.YearEnd, time.Now()),
	}

	out := cmd.OutOrStdout()
	if outDir != "" {
		name := report.ArtifactName("statements", formatExt(format), time.Now())
		f, err := os.Create(outDir + string(os.PathSeparator) + name)
		if err != nil {
			return fmt.Errorf("creating report file: %w", err)
		}
		defer f.Close()
		out = f
		defer fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", f.Name())
	}

	switch format {
	case "text":
		report.Render(out, result, meta)
	case "csv":
		if err := report.WriteCSV(out, result.Statement); err != nil {
			return fmt.Errorf("writing CSV report: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q (want text or csv)", format)
	}

	return nil
}

// loadTable picks the rule table: explicit flag first, then the
// config path when the file exists, else the built-in defaults.
func loadTable(rulesPath string, cfg *config.Config) (*rules.Table, error) {
	if rulesPath != "" {
		return rules.Load(rulesPath)
	}
	if cfg.Rules.Path != "" {
		if _, err := os.Stat(cfg.Rules.Path); err == nil {
			return rules.Load(cfg.Rules.Path)
		}
	}
	return rules.DefaultTable(), nil
}

// periodEnd formats the fiscal year end "MM-DD" as a report heading
// date, e.g. "31 March 2026".
func periodEnd(yearEnd string, now time.Time) string {
	t, err := time.Parse("01-02", yearEnd)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d %s %d", t.Day(), t.Month(), now.Year())
}

func formatExt(format string) string {
	if format == "csv" {
		return "csv"
	}
	return "txt"
}
