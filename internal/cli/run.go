package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hrops/hr-reportgen/internal/db"
	"github.com/hrops/hr-reportgen/internal/export"
	"github.com/hrops/hr-reportgen/internal/logging"
	"github.com/hrops/hr-reportgen/internal/pipeline"
)

var (
	runOutputDir string
	runSchema    string
	runNoChart   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the reporting pipeline and export the CSV bundles",
	Long: `Run the full reporting pipeline: load the employee fact table and
the four dimension source tables, build numeric-keyed dimensions, enrich the
fact table, derive temporal features, compute the monthly attrition summary,
and export the showcase and powerbi bundles plus the trend chart.

A missing or unreadable dimension table degrades to an empty dimension; an
empty fact table aborts the run.

Example:
  hr-reportgen run --connection "postgres://..." --output-dir output`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runOutputDir, "output-dir", "",
		"directory for the showcase and powerbi bundles")
	runCmd.Flags().StringVar(&runSchema, "schema", "",
		"database schema holding the source tables")
	runCmd.Flags().BoolVar(&runNoChart, "no-chart", false,
		"skip rendering the attrition trend chart")
}

func runRun(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if runOutputDir != "" {
		cfg.Run.OutputDir = runOutputDir
	}
	if runSchema != "" {
		cfg.Schema = runSchema
	}
	if runNoChart {
		cfg.Run.Chart = false
	}

	if err := cfg.ValidateRun(); err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	loader := db.NewLoader(pool, cfg.Schema)

	fact := loader.Employees(ctx)
	if len(fact) == 0 {
		return fmt.Errorf("fact table is empty; pipeline cannot continue")
	}
	logging.Info().Int("rows", len(fact)).Msg("Fact table loaded")

	tables := pipeline.Tables{
		Fact:        fact,
		Departments: loader.Keys(ctx, db.DeptTable, db.DeptColumn),
		Positions:   loader.Keys(ctx, db.PositionTable, db.PositionColumn),
		Managers:    loader.Keys(ctx, db.ManagerTable, db.ManagerColumn),
		Races:       loader.Keys(ctx, db.RaceTable, db.RaceColumn),
	}

	result, err := pipeline.Run(tables)
	if err != nil {
		return err
	}

	showcaseDir := filepath.Join(cfg.Run.OutputDir, "showcase")
	powerbiDir := filepath.Join(cfg.Run.OutputDir, "powerbi")
	for _, dir := range []string{showcaseDir, powerbiDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := export.WriteShowcase(showcaseDir, result.Enriched, result.Monthly); err != nil {
		return err
	}
	if err := export.WritePowerBI(powerbiDir, result.Clean); err != nil {
		return err
	}

	if cfg.Run.Chart {
		if len(result.Monthly) == 0 {
			logging.Warn().Msg("No monthly summary rows; skipping trend chart")
		} else {
			chartPath := filepath.Join(showcaseDir, export.ChartFile)
			if err := export.AttritionTrendChart(chartPath, result.Monthly); err != nil {
				return err
			}
		}
	}

	logging.Info().
		Str("showcase", showcaseDir).
		Str("powerbi", powerbiDir).
		Msg("Pipeline completed")
	return nil
}
