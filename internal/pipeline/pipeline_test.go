package pipeline

import (
	"testing"

	"github.com/hrops/hr-reportgen/internal/model"
)

func strPtr(s string) *string   { return &s }
func i64Ptr(n int64) *int64     { return &n }
func intPtr(n int) *int         { return &n }
func f64Ptr(f float64) *float64 { return &f }

func employee(id int64, dept, pos, mgr, race, hire, term string) model.Employee {
	e := model.Employee{
		EmployeeID:          i64Ptr(id),
		Department:          strPtr(dept),
		Position:            strPtr(pos),
		ManagerName:         strPtr(mgr),
		RaceDesc:            strPtr(race),
		Gender:              strPtr("F"),
		Salary:              f64Ptr(65000),
		DateOfHire:          strPtr(hire),
		PerformanceCategory: strPtr("Fully Meets"),
		AttritionFlag:       strPtr("false"),
	}
	if term != "" {
		e.DateOfTermination = strPtr(term)
		e.AttritionFlag = strPtr("true")
	}
	return e
}

// Three employees hired in consecutive months, one terminated in April.
// The April summary row must count exactly the terminated employee: "start"
// counts distinct employees with an event in the month, not hires.
func TestRunEndToEnd(t *testing.T) {
	tables := Tables{
		Fact: []model.Employee{
			employee(1, "Sales", "Account Executive", "Pat Reed", "White", "2023-01-01", "2023-04-01"),
			employee(2, "Sales", "Account Executive", "Pat Reed", "Asian", "2023-02-01", ""),
			employee(3, "IT", "Engineer", "Sam Hale", "Black or African American", "2023-03-01", ""),
		},
		Departments: []string{"Sales", "IT"},
		Positions:   []string{"Account Executive", "Engineer"},
		Managers:    []string{"Pat Reed", "Sam Hale"},
		Races:       []string{"White", "Asian", "Black or African American"},
	}

	result, err := Run(tables)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(result.Enriched) != len(tables.Fact) {
		t.Errorf("Enriched rows = %d, want %d", len(result.Enriched), len(tables.Fact))
	}

	var april *model.MonthlySummary
	for i := range result.Monthly {
		if result.Monthly[i].EventMonth == "2023-04" {
			april = &result.Monthly[i]
		}
	}
	if april == nil {
		t.Fatal("No summary row for 2023-04")
	}
	if april.EmployeesStart != 1 {
		t.Errorf("2023-04 employees_start = %d, want 1", april.EmployeesStart)
	}
	if april.EmployeesLeft != 1 {
		t.Errorf("2023-04 employees_left = %d, want 1", april.EmployeesLeft)
	}
	if april.AttritionPercent != 100 {
		t.Errorf("2023-04 attrition_percent = %f, want 100", april.AttritionPercent)
	}

	// One event month per employee: February, March, April.
	if len(result.Monthly) != 3 {
		t.Errorf("Monthly rows = %d, want 3", len(result.Monthly))
	}

	// All keys matched, no sentinels: the clean fact keeps every row.
	if len(result.Clean.Fact) != 3 {
		t.Errorf("Clean fact rows = %d, want 3", len(result.Clean.Fact))
	}
	if len(result.Clean.Departments) != 2 {
		t.Errorf("Clean departments = %d, want 2", len(result.Clean.Departments))
	}
	if len(result.Clean.Monthly) != 3 {
		t.Errorf("Clean monthly rows = %d, want 3", len(result.Clean.Monthly))
	}
}

func TestRunBadAttritionFlagIsFatal(t *testing.T) {
	e := employee(1, "Sales", "Account Executive", "Pat Reed", "White", "2023-01-01", "")
	e.AttritionFlag = strPtr("maybe")

	_, err := Run(Tables{Fact: []model.Employee{e}})
	if err == nil {
		t.Fatal("Expected error for out-of-domain attrition flag, got nil")
	}
}
