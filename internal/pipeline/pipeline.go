package pipeline

import (
	"github.com/hrops/hr-reportgen/internal/logging"
	"github.com/hrops/hr-reportgen/internal/model"
)

// Tables holds the raw warehouse tables the pipeline consumes. Dimension
// slices carry the natural-key column values only; an empty slice means the
// table was missing or unreadable.
type Tables struct {
	Fact        []model.Employee
	Departments []string
	Positions   []string
	Managers    []string
	Races       []string
}

// CleanBundle is the star-schema output for the BI tool.
type CleanBundle struct {
	Departments []model.DimensionEntry
	Positions   []model.DimensionEntry
	Managers    []model.DimensionEntry
	Races       []model.DimensionEntry
	Fact        []model.FactRow
	Monthly     []model.MonthlyFactRow
}

// Result holds every table one pipeline run produces.
type Result struct {
	Dimensions Dimensions
	Enriched   []model.EnrichedRow
	Monthly    []model.MonthlySummary
	Clean      CleanBundle
}

// Run executes the transform stages in order: dimension building, the
// enrichment join, temporal feature derivation, the monthly rollup, and
// star-schema cleaning. Each stage produces a new table; nothing is mutated
// in place. The only fatal condition past this point is the strict attrition
// flag cast.
func Run(tables Tables) (*Result, error) {
	dims := Dimensions{
		Departments: BuildDimension(tables.Departments),
		Positions:   BuildDimension(tables.Positions),
		Managers:    BuildDimension(tables.Managers),
		Races:       BuildDimension(tables.Races),
	}
	logging.Info().
		Int("departments", len(dims.Departments)).
		Int("positions", len(dims.Positions)).
		Int("managers", len(dims.Managers)).
		Int("races", len(dims.Races)).
		Msg("Dimension tables built")

	enriched := Enrich(tables.Fact, dims)
	logging.Info().Int("rows", len(enriched)).Msg("Enriched analytics table created")

	enriched, err := DeriveFeatures(enriched)
	if err != nil {
		return nil, err
	}
	logging.Info().Int("rows", len(enriched)).Msg("Temporal features derived")

	monthly := MonthlyRollup(enriched)
	logging.Info().Int("months", len(monthly)).Msg("Monthly attrition summary calculated")

	clean := CleanBundle{
		Departments: CleanDimension(dims.Departments),
		Positions:   CleanDimension(dims.Positions),
		Managers:    CleanDimension(dims.Managers),
		Races:       CleanDimension(dims.Races),
		Fact:        CleanFact(enriched),
		Monthly:     CleanMonthly(monthly),
	}
	logging.Info().
		Int("fact_rows", len(clean.Fact)).
		Int("monthly_rows", len(clean.Monthly)).
		Msg("Star-schema bundle cleaned")

	return &Result{
		Dimensions: dims,
		Enriched:   enriched,
		Monthly:    monthly,
		Clean:      clean,
	}, nil
}
