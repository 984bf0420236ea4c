package pipeline

import (
	"github.com/hrops/hr-reportgen/internal/model"
)

// Dimensions holds the four dimension tables used to enrich the fact table.
type Dimensions struct {
	Departments []model.DimensionEntry
	Positions   []model.DimensionEntry
	Managers    []model.DimensionEntry
	Races       []model.DimensionEntry
}

// Enrich left-joins each employee row against the four dimension tables on
// exact, case-sensitive string match. Rows are never dropped or duplicated:
// the output has one row per input row, with nil dimension columns where no
// match exists. An empty dimension simply leaves its columns nil everywhere.
func Enrich(fact []model.Employee, dims Dimensions) []model.EnrichedRow {
	depts := keyIndex(dims.Departments)
	positions := keyIndex(dims.Positions)
	managers := keyIndex(dims.Managers)
	races := keyIndex(dims.Races)

	rows := make([]model.EnrichedRow, 0, len(fact))
	for _, e := range fact {
		row := model.EnrichedRow{
			EmployeeID:           e.EmployeeID,
			Department:           e.Department,
			Position:             e.Position,
			ManagerName:          e.ManagerName,
			RaceDesc:             e.RaceDesc,
			Gender:               e.Gender,
			Salary:               e.Salary,
			DateOfBirthRaw:       e.DateOfBirth,
			DateOfHireRaw:        e.DateOfHire,
			DateOfTerminationRaw: e.DateOfTermination,
			PerformanceCategory:  e.PerformanceCategory,
			AttritionFlag:        e.AttritionFlag,
		}

		if d, ok := lookup(depts, e.Department); ok {
			row.DepartmentName = &d.Name
			row.DepartmentID = &d.ID
		}
		if p, ok := lookup(positions, e.Position); ok {
			row.PositionTitle = &p.Name
			row.PositionID = &p.ID
		}
		if m, ok := lookup(managers, e.ManagerName); ok {
			row.ManagerID = &m.ID
		}
		if r, ok := lookup(races, e.RaceDesc); ok {
			row.RaceName = &r.Name
			row.RaceID = &r.ID
		}

		rows = append(rows, row)
	}
	return rows
}

// keyIndex builds a natural-key lookup map. Keys are unique per dimension,
// so the join cardinality is 1:0-or-1. The NULL stand-in key never matches.
func keyIndex(entries []model.DimensionEntry) map[string]model.DimensionEntry {
	index := make(map[string]model.DimensionEntry, len(entries))
	for _, entry := range entries {
		if entry.Name == "" {
			continue
		}
		index[entry.Name] = entry
	}
	return index
}

func lookup(index map[string]model.DimensionEntry, key *string) (model.DimensionEntry, bool) {
	if key == nil {
		return model.DimensionEntry{}, false
	}
	entry, ok := index[*key]
	return entry, ok
}
