// Package model defines the row types that flow through the reporting
// pipeline. Nullable columns are pointer fields; nil means SQL NULL or an
// unparsable value.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Employee is one raw row of the employee fact table as loaded from the
// warehouse. Date and flag columns are kept as raw text; parsing them is the
// job of the temporal feature deriver.
type Employee struct {
	EmployeeID          *int64
	Department          *string
	Position            *string
	ManagerName         *string
	RaceDesc            *string
	Gender              *string
	Salary              *float64
	DateOfBirth         *string
	DateOfHire          *string
	DateOfTermination   *string
	PerformanceCategory *string
	AttritionFlag       *string
}

// DimensionEntry is one row of a dimension table: a deduplicated natural key
// and a synthetic 1-based identifier assigned in first-seen order. Name ""
// represents a NULL natural key. Identifiers are stable only within a run.
type DimensionEntry struct {
	Name string
	ID   int
}

// EnrichedRow is one employee row after dimension joins and temporal feature
// derivation. Join misses leave the dimension pointers nil.
type EnrichedRow struct {
	EmployeeID           *int64
	Department           *string
	Position             *string
	ManagerName          *string
	RaceDesc             *string
	Gender               *string
	Salary               *float64
	DateOfBirthRaw       *string
	DateOfHireRaw        *string
	DateOfTerminationRaw *string
	PerformanceCategory  *string
	AttritionFlag        *string

	DepartmentName *string
	DepartmentID   *int
	PositionTitle  *string
	PositionID     *int
	ManagerID      *int
	RaceName       *string
	RaceID         *int

	DateOfBirth       *time.Time
	DateOfHire        *time.Time
	DateOfTermination *time.Time
	EventDate         *time.Time
	EventYear         *int
	EventMonth        *string
	TenureDays        *int
	TenureBucket      *string
	IsTerminated      *int
}

// MonthlySummary is one row of the organization-level monthly attrition
// rollup. Exactly one row exists per observed (year, month).
type MonthlySummary struct {
	EventYear        int
	EventMonth       string
	EmployeesStart   int
	EmployeesLeft    int
	AttritionRate    float64
	AttritionPercent float64
	Rolling3mPct     float64
}

// FactRow is one row of the cleaned BI fact table: the enriched row minus the
// natural-key text columns that are redundant with the dimension identifiers.
type FactRow struct {
	EmployeeID          *int64
	RaceDesc            *string
	Gender              *string
	Salary              *float64
	DateOfBirth         *time.Time
	DateOfHire          *time.Time
	DateOfTermination   *time.Time
	PerformanceCategory *string
	AttritionFlag       *string
	DepartmentID        *int
	PositionID          *int
	ManagerID           *int
	RaceID              *int
	EventDate           *time.Time
	EventYear           *int
	EventMonth          *string
	TenureDays          *int
	TenureBucket        *string
	IsTerminated        *int
}

// MonthlyFactRow is one row of the cleaned monthly attrition fact table.
type MonthlyFactRow struct {
	Month            string
	EmployeesStart   int
	EmployeesLeft    int
	AttritionRate    float64
	AttritionPercent float64
	Rolling3mPct     float64
}

// dateLayouts are the formats accepted for warehouse date columns, tried in
// order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseDate parses a warehouse date value. Unparsable or empty input yields
// nil, never an error.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// ParseAttritionFlag converts an attrition flag value to 0 or 1. Values
// outside the accepted true-like/false-like set are an error; callers treat
// that as fatal for the run rather than coercing silently.
func ParseAttritionFlag(s string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "1":
		return 1, nil
	case "false", "f", "0":
		return 0, nil
	}
	return 0, fmt.Errorf("attrition flag %q is not a boolean value", s)
}
