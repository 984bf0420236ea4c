package pipeline

import (
	"testing"
	"time"

	"github.com/hrops/hr-reportgen/internal/model"
)

func TestCleanDimension(t *testing.T) {
	entries := []model.DimensionEntry{
		{Name: "Sales", ID: 1},
		{Name: "Unknown", ID: 2},
		{Name: "", ID: 3},
		{Name: "IT", ID: 4},
	}

	clean := CleanDimension(entries)
	if len(clean) != 2 {
		t.Fatalf("got %d entries, want 2", len(clean))
	}
	if clean[0].Name != "Sales" || clean[1].Name != "IT" {
		t.Errorf("unexpected surviving entries: %+v", clean)
	}
	// Identifiers are preserved, not reassigned.
	if clean[1].ID != 4 {
		t.Errorf("IT id = %d, want 4", clean[1].ID)
	}
}

func cleanableRow() model.EnrichedRow {
	hire := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	return model.EnrichedRow{
		EmployeeID:          i64Ptr(1),
		Department:          strPtr("Sales"),
		RaceDesc:            strPtr("White"),
		Gender:              strPtr("F"),
		Salary:              f64Ptr(65000),
		PerformanceCategory: strPtr("Fully Meets"),
		AttritionFlag:       strPtr("false"),
		DepartmentID:        intPtr(1),
		PositionID:          intPtr(1),
		ManagerID:           intPtr(1),
		RaceID:              intPtr(1),
		DateOfHire:          &hire,
	}
}

func TestCleanFactKeepsCompleteRows(t *testing.T) {
	clean := CleanFact([]model.EnrichedRow{cleanableRow()})
	if len(clean) != 1 {
		t.Fatalf("got %d rows, want 1", len(clean))
	}
}

func TestCleanFactDropsSentinelRace(t *testing.T) {
	row := cleanableRow()
	row.RaceDesc = strPtr("Unknown")

	clean := CleanFact([]model.EnrichedRow{row})
	if len(clean) != 0 {
		t.Fatalf("got %d rows, want 0 (sentinel race must be dropped)", len(clean))
	}
}

func TestCleanFactRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.EnrichedRow)
	}{
		{"missing employee id", func(r *model.EnrichedRow) { r.EmployeeID = nil }},
		{"missing department id", func(r *model.EnrichedRow) { r.DepartmentID = nil }},
		{"missing position id", func(r *model.EnrichedRow) { r.PositionID = nil }},
		{"missing gender", func(r *model.EnrichedRow) { r.Gender = nil }},
		{"sentinel gender", func(r *model.EnrichedRow) { r.Gender = strPtr("Unknown") }},
		{"missing salary", func(r *model.EnrichedRow) { r.Salary = nil }},
		{"missing hire date", func(r *model.EnrichedRow) { r.DateOfHire = nil }},
		{"missing performance", func(r *model.EnrichedRow) { r.PerformanceCategory = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := cleanableRow()
			tt.mutate(&row)

			clean := CleanFact([]model.EnrichedRow{row})
			if len(clean) != 0 {
				t.Errorf("got %d rows, want 0", len(clean))
			}
		})
	}
}

func TestCleanFactOptionalFieldsMayBeNil(t *testing.T) {
	// Manager and race ids are not on the required list; a join miss there
	// survives cleaning.
	row := cleanableRow()
	row.ManagerID = nil
	row.RaceID = nil
	row.DateOfTermination = nil

	clean := CleanFact([]model.EnrichedRow{row})
	if len(clean) != 1 {
		t.Fatalf("got %d rows, want 1", len(clean))
	}
}

func TestCleanMonthly(t *testing.T) {
	summaries := []model.MonthlySummary{
		{
			EventYear:        2023,
			EventMonth:       "2023-04",
			EmployeesStart:   10,
			EmployeesLeft:    2,
			AttritionRate:    0.2,
			AttritionPercent: 20,
			Rolling3mPct:     15,
		},
	}

	clean := CleanMonthly(summaries)
	if len(clean) != 1 {
		t.Fatalf("got %d rows, want 1", len(clean))
	}
	row := clean[0]
	if row.Month != "2023-04" {
		t.Errorf("Month = %s, want 2023-04", row.Month)
	}
	if row.EmployeesStart != 10 || row.EmployeesLeft != 2 {
		t.Errorf("counts = %d/%d, want 10/2", row.EmployeesStart, row.EmployeesLeft)
	}
	if row.Rolling3mPct != 15 {
		t.Errorf("Rolling3mPct = %f, want 15", row.Rolling3mPct)
	}
}
