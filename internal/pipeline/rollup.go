package pipeline

import (
	"sort"

	"github.com/hrops/hr-reportgen/internal/model"
)

// rollingWindow is the trailing window length for the rolling attrition
// average. The window is defined over present rows, not calendar months: a
// missing month is simply not a row.
const rollingWindow = 3

// MonthlyRollup groups enriched rows by (event year, event month) and
// computes the organization-level attrition summary: distinct employees with
// an event in the month, departures, attrition rate and percent, and a
// trailing 3-month rolling average over the month-sorted series.
//
// Rows with no derivable event month are excluded from the rollup entirely.
func MonthlyRollup(rows []model.EnrichedRow) []model.MonthlySummary {
	type group struct {
		year      int
		employees map[int64]struct{}
		left      int
	}
	groups := make(map[string]*group)

	for _, row := range rows {
		if row.EventMonth == nil || row.EventYear == nil {
			continue
		}
		g, ok := groups[*row.EventMonth]
		if !ok {
			g = &group{year: *row.EventYear, employees: make(map[int64]struct{})}
			groups[*row.EventMonth] = g
		}
		// Distinct count skips null identifiers, matching the count of
		// distinct non-null keys.
		if row.EmployeeID != nil {
			g.employees[*row.EmployeeID] = struct{}{}
		}
		if row.IsTerminated != nil {
			g.left += *row.IsTerminated
		}
	}

	summaries := make([]model.MonthlySummary, 0, len(groups))
	for month, g := range groups {
		s := model.MonthlySummary{
			EventYear:      g.year,
			EventMonth:     month,
			EmployeesStart: len(g.employees),
			EmployeesLeft:  g.left,
		}
		// Guard the empty-month division; a month can have departures
		// without any distinct identifiers.
		if s.EmployeesStart > 0 {
			s.AttritionRate = float64(s.EmployeesLeft) / float64(s.EmployeesStart)
		}
		s.AttritionPercent = s.AttritionRate * 100
		summaries = append(summaries, s)
	}

	// Lexical sort is chronological because months are zero-padded
	// "YYYY-MM".
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].EventMonth < summaries[j].EventMonth
	})

	for i := range summaries {
		start := i - rollingWindow + 1
		if start < 0 {
			start = 0
		}
		var sum float64
		for j := start; j <= i; j++ {
			sum += summaries[j].AttritionPercent
		}
		summaries[i].Rolling3mPct = sum / float64(i-start+1)
	}

	return summaries
}
