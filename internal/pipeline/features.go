package pipeline

import (
	"fmt"
	"time"

	"github.com/hrops/hr-reportgen/internal/model"
)

// Tenure bucket edges in days. Buckets are half-open: (-1, 180], (180, 365],
// (365, 1095], (1095, +inf). Values at or below the lowest edge get no label.
const (
	tenureEdgeLow = -1
	tenureEdge6mo = 180
	tenureEdge1yr = 365
	tenureEdge3yr = 1095
)

// DeriveFeatures parses the raw date columns and derives the temporal
// columns on a copy of the input: event date (termination, falling back to
// hire), event year/month, tenure in days, the tenure bucket, and the 0/1
// termination indicator.
//
// Date parse failures are silent and leave nil. The attrition flag cast is
// strict: a missing or out-of-domain value fails the run.
func DeriveFeatures(rows []model.EnrichedRow) ([]model.EnrichedRow, error) {
	out := make([]model.EnrichedRow, len(rows))
	for i, row := range rows {
		row.DateOfBirth = parseDatePtr(row.DateOfBirthRaw)
		row.DateOfHire = parseDatePtr(row.DateOfHireRaw)
		row.DateOfTermination = parseDatePtr(row.DateOfTerminationRaw)

		// An employee is "active" only by the absence of a termination
		// date.
		row.EventDate = row.DateOfTermination
		if row.EventDate == nil {
			row.EventDate = row.DateOfHire
		}

		if row.EventDate != nil {
			year := row.EventDate.Year()
			month := row.EventDate.Format("2006-01")
			row.EventYear = &year
			row.EventMonth = &month
		}

		if row.EventDate != nil && row.DateOfHire != nil {
			days := wholeDays(*row.DateOfHire, *row.EventDate)
			row.TenureDays = &days
			row.TenureBucket = tenureBucket(days)
		}

		if row.AttritionFlag == nil {
			return nil, fmt.Errorf("employee %s: attrition flag is null", employeeRef(row.EmployeeID))
		}
		terminated, err := model.ParseAttritionFlag(*row.AttritionFlag)
		if err != nil {
			return nil, fmt.Errorf("employee %s: %w", employeeRef(row.EmployeeID), err)
		}
		row.IsTerminated = &terminated

		out[i] = row
	}
	return out, nil
}

func parseDatePtr(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	return model.ParseDate(*raw)
}

// wholeDays counts calendar days from a to b; negative when b precedes a.
func wholeDays(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

func tenureBucket(days int) *string {
	var label string
	switch {
	case days <= tenureEdgeLow:
		return nil
	case days <= tenureEdge6mo:
		label = "<6 months"
	case days <= tenureEdge1yr:
		label = "6-12 months"
	case days <= tenureEdge3yr:
		label = "1-3 years"
	default:
		label = "3+ years"
	}
	return &label
}

func employeeRef(id *int64) string {
	if id == nil {
		return "<unknown>"
	}
	return fmt.Sprint(*id)
}
