package pipeline

import (
	"github.com/hrops/hr-reportgen/internal/model"
)

// sentinel is the placeholder the upstream SQL pipeline writes for missing
// categorical data. The BI bundle must never contain it.
const sentinel = "Unknown"

// CleanDimension removes entries whose natural key is the sentinel or the
// NULL stand-in. Dimension cleaning is a row filter, not a substitution: a
// dimension row with any missing value is dropped outright.
func CleanDimension(entries []model.DimensionEntry) []model.DimensionEntry {
	clean := make([]model.DimensionEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Name == sentinel || entry.Name == "" {
			continue
		}
		clean = append(clean, entry)
	}
	return clean
}

// CleanFact produces the BI fact table from the enriched rows: the
// natural-key text columns now redundant with dimension identifiers are
// dropped, the sentinel is nulled across the remaining text columns, rows
// with a missing race description are removed, and finally rows missing any
// required field are removed.
//
// The race rule is deliberately stricter than the generic required-field
// list; the two policies are kept separate on purpose.
func CleanFact(rows []model.EnrichedRow) []model.FactRow {
	clean := make([]model.FactRow, 0, len(rows))
	for _, row := range rows {
		f := model.FactRow{
			EmployeeID:          row.EmployeeID,
			RaceDesc:            scrub(row.RaceDesc),
			Gender:              scrub(row.Gender),
			Salary:              row.Salary,
			DateOfBirth:         row.DateOfBirth,
			DateOfHire:          row.DateOfHire,
			DateOfTermination:   row.DateOfTermination,
			PerformanceCategory: scrub(row.PerformanceCategory),
			AttritionFlag:       scrub(row.AttritionFlag),
			DepartmentID:        row.DepartmentID,
			PositionID:          row.PositionID,
			ManagerID:           row.ManagerID,
			RaceID:              row.RaceID,
			EventDate:           row.EventDate,
			EventYear:           row.EventYear,
			EventMonth:          scrub(row.EventMonth),
			TenureDays:          row.TenureDays,
			TenureBucket:        scrub(row.TenureBucket),
			IsTerminated:        row.IsTerminated,
		}

		// Race data quality is mandatory when the column is present.
		if f.RaceDesc == nil {
			continue
		}

		if f.EmployeeID == nil || f.DepartmentID == nil || f.PositionID == nil ||
			f.Gender == nil || f.Salary == nil || f.DateOfHire == nil ||
			f.PerformanceCategory == nil {
			continue
		}

		clean = append(clean, f)
	}
	return clean
}

// CleanMonthly selects the BI columns from the monthly summary and renames
// the month key. Summary rows are fully populated by construction, so the
// any-null drop never fires here, but the mapping keeps the selection
// explicit.
func CleanMonthly(summaries []model.MonthlySummary) []model.MonthlyFactRow {
	clean := make([]model.MonthlyFactRow, 0, len(summaries))
	for _, s := range summaries {
		clean = append(clean, model.MonthlyFactRow{
			Month:            s.EventMonth,
			EmployeesStart:   s.EmployeesStart,
			EmployeesLeft:    s.EmployeesLeft,
			AttritionRate:    s.AttritionRate,
			AttritionPercent: s.AttritionPercent,
			Rolling3mPct:     s.Rolling3mPct,
		})
	}
	return clean
}

// scrub replaces the sentinel with nil.
func scrub(s *string) *string {
	if s != nil && *s == sentinel {
		return nil
	}
	return s
}
