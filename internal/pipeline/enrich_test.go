package pipeline

import (
	"testing"

	"github.com/hrops/hr-reportgen/internal/model"
)

func TestEnrichNeverDropsRows(t *testing.T) {
	fact := []model.Employee{
		employee(1, "Sales", "Account Executive", "Pat Reed", "White", "2023-01-01", ""),
		employee(2, "Nonexistent", "Nonexistent", "Nobody", "Nonexistent", "2023-02-01", ""),
		{EmployeeID: i64Ptr(3), AttritionFlag: strPtr("false")},
	}
	dims := Dimensions{
		Departments: BuildDimension([]string{"Sales"}),
		Positions:   BuildDimension([]string{"Account Executive"}),
		Managers:    BuildDimension([]string{"Pat Reed"}),
		Races:       BuildDimension([]string{"White"}),
	}

	rows := Enrich(fact, dims)
	if len(rows) != len(fact) {
		t.Fatalf("Enrich returned %d rows, want %d", len(rows), len(fact))
	}
}

func TestEnrichMatches(t *testing.T) {
	fact := []model.Employee{
		employee(1, "IT", "Engineer", "Sam Hale", "Asian", "2023-01-01", ""),
	}
	dims := Dimensions{
		Departments: BuildDimension([]string{"Sales", "IT"}),
		Positions:   BuildDimension([]string{"Engineer"}),
		Managers:    BuildDimension([]string{"Pat Reed", "Sam Hale"}),
		Races:       BuildDimension([]string{"White", "Asian"}),
	}

	row := Enrich(fact, dims)[0]

	if row.DepartmentID == nil || *row.DepartmentID != 2 {
		t.Errorf("DepartmentID = %v, want 2", row.DepartmentID)
	}
	if row.DepartmentName == nil || *row.DepartmentName != "IT" {
		t.Errorf("DepartmentName = %v, want IT", row.DepartmentName)
	}
	if row.PositionID == nil || *row.PositionID != 1 {
		t.Errorf("PositionID = %v, want 1", row.PositionID)
	}
	if row.ManagerID == nil || *row.ManagerID != 2 {
		t.Errorf("ManagerID = %v, want 2", row.ManagerID)
	}
	if row.RaceID == nil || *row.RaceID != 2 {
		t.Errorf("RaceID = %v, want 2", row.RaceID)
	}
	if row.RaceName == nil || *row.RaceName != "Asian" {
		t.Errorf("RaceName = %v, want Asian", row.RaceName)
	}
}

func TestEnrichJoinMissLeavesNil(t *testing.T) {
	fact := []model.Employee{
		employee(1, "Sales", "Engineer", "Pat Reed", "White", "2023-01-01", ""),
	}
	dims := Dimensions{
		Departments: BuildDimension([]string{"IT"}),
	}

	row := Enrich(fact, dims)[0]

	if row.DepartmentID != nil || row.DepartmentName != nil {
		t.Error("Expected nil department columns on join miss")
	}
	// Empty dimensions behave like all-miss, not an error.
	if row.PositionID != nil || row.ManagerID != nil || row.RaceID != nil {
		t.Error("Expected nil dimension columns for empty dimensions")
	}
	// The source columns survive the join untouched.
	if row.Department == nil || *row.Department != "Sales" {
		t.Errorf("Department = %v, want Sales", row.Department)
	}
}

func TestEnrichNullKeyNeverMatches(t *testing.T) {
	fact := []model.Employee{
		{EmployeeID: i64Ptr(1), AttritionFlag: strPtr("false")},
	}
	// Dimension built from a NULL stand-in key.
	dims := Dimensions{
		Departments: BuildDimension([]string{""}),
	}

	row := Enrich(fact, dims)[0]
	if row.DepartmentID != nil {
		t.Error("nil natural key must not join to the NULL stand-in entry")
	}
}
