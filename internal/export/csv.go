// Package export writes the pipeline outputs: the showcase and powerbi CSV
// bundles and the attrition trend chart.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hrops/hr-reportgen/internal/logging"
	"github.com/hrops/hr-reportgen/internal/model"
	"github.com/hrops/hr-reportgen/internal/pipeline"
)

// Output file names.
const (
	ShowcaseFile       = "hr_analytics_showcase.csv"
	MonthlySummaryFile = "monthly_summary_showcase.csv"
	DimDepartmentsFile = "dim_departments.csv"
	DimPositionsFile   = "dim_positions.csv"
	DimManagersFile    = "dim_managers.csv"
	DimRaceFile        = "dim_race.csv"
	FactFile           = "fact_hr_clean.csv"
	FactMonthlyFile    = "fact_attrition_monthly.csv"
	ChartFile          = "org_attrition_trend.png"
)

var showcaseHeader = []string{
	"employee_id", "department", "position", "manager_name", "racedesc",
	"gender", "salary", "date_of_birth", "date_of_hire", "date_of_termination",
	"performance_category", "attrition_flag",
	"department_name", "department_id", "position_title", "position_id",
	"manager_id", "race_name", "race_id",
	"event_date", "event_year", "event_month", "tenure_days", "tenure_bucket",
	"is_terminated",
}

var monthlySummaryHeader = []string{
	"event_year", "event_month", "employees_start", "employees_left",
	"attrition_rate", "attrition_percent", "attrition_rolling3m_pct",
}

var factHeader = []string{
	"employee_id", "racedesc", "gender", "salary", "date_of_birth",
	"date_of_hire", "date_of_termination", "performance_category",
	"attrition_flag", "department_id", "position_id", "manager_id", "race_id",
	"event_date", "event_year", "event_month", "tenure_days", "tenure_bucket",
	"is_terminated",
}

var factMonthlyHeader = []string{
	"month", "employees_start", "employees_left",
	"attrition_rate", "attrition_percent", "attrition_rolling3m_pct",
}

// WriteShowcase writes the full enriched analytics table and the monthly
// summary into dir.
func WriteShowcase(dir string, enriched []model.EnrichedRow, monthly []model.MonthlySummary) error {
	records := make([][]string, 0, len(enriched))
	for _, row := range enriched {
		records = append(records, []string{
			fmtInt64(row.EmployeeID),
			fmtStr(row.Department),
			fmtStr(row.Position),
			fmtStr(row.ManagerName),
			fmtStr(row.RaceDesc),
			fmtStr(row.Gender),
			fmtFloatPtr(row.Salary),
			fmtDate(row.DateOfBirth),
			fmtDate(row.DateOfHire),
			fmtDate(row.DateOfTermination),
			fmtStr(row.PerformanceCategory),
			fmtStr(row.AttritionFlag),
			fmtStr(row.DepartmentName),
			fmtInt(row.DepartmentID),
			fmtStr(row.PositionTitle),
			fmtInt(row.PositionID),
			fmtInt(row.ManagerID),
			fmtStr(row.RaceName),
			fmtInt(row.RaceID),
			fmtDate(row.EventDate),
			fmtInt(row.EventYear),
			fmtStr(row.EventMonth),
			fmtInt(row.TenureDays),
			fmtStr(row.TenureBucket),
			fmtInt(row.IsTerminated),
		})
	}
	if err := writeCSV(filepath.Join(dir, ShowcaseFile), showcaseHeader, records); err != nil {
		return err
	}

	records = records[:0]
	for _, s := range monthly {
		records = append(records, []string{
			strconv.Itoa(s.EventYear),
			s.EventMonth,
			strconv.Itoa(s.EmployeesStart),
			strconv.Itoa(s.EmployeesLeft),
			fmtFloat(s.AttritionRate),
			fmtFloat(s.AttritionPercent),
			fmtFloat(s.Rolling3mPct),
		})
	}
	return writeCSV(filepath.Join(dir, MonthlySummaryFile), monthlySummaryHeader, records)
}

// WritePowerBI writes the cleaned star-schema bundle into dir.
func WritePowerBI(dir string, bundle pipeline.CleanBundle) error {
	dims := []struct {
		file    string
		nameCol string
		idCol   string
		entries []model.DimensionEntry
	}{
		{DimDepartmentsFile, "department_name", "department_id", bundle.Departments},
		{DimPositionsFile, "position_title", "position_id", bundle.Positions},
		{DimManagersFile, "manager_name", "manager_id", bundle.Managers},
		{DimRaceFile, "race_name", "race_id", bundle.Races},
	}
	for _, dim := range dims {
		records := make([][]string, 0, len(dim.entries))
		for _, entry := range dim.entries {
			records = append(records, []string{entry.Name, strconv.Itoa(entry.ID)})
		}
		header := []string{dim.nameCol, dim.idCol}
		if err := writeCSV(filepath.Join(dir, dim.file), header, records); err != nil {
			return err
		}
	}

	records := make([][]string, 0, len(bundle.Fact))
	for _, f := range bundle.Fact {
		records = append(records, []string{
			fmtInt64(f.EmployeeID),
			fmtStr(f.RaceDesc),
			fmtStr(f.Gender),
			fmtFloatPtr(f.Salary),
			fmtDate(f.DateOfBirth),
			fmtDate(f.DateOfHire),
			fmtDate(f.DateOfTermination),
			fmtStr(f.PerformanceCategory),
			fmtStr(f.AttritionFlag),
			fmtInt(f.DepartmentID),
			fmtInt(f.PositionID),
			fmtInt(f.ManagerID),
			fmtInt(f.RaceID),
			fmtDate(f.EventDate),
			fmtInt(f.EventYear),
			fmtStr(f.EventMonth),
			fmtInt(f.TenureDays),
			fmtStr(f.TenureBucket),
			fmtInt(f.IsTerminated),
		})
	}
	if err := writeCSV(filepath.Join(dir, FactFile), factHeader, records); err != nil {
		return err
	}

	records = records[:0]
	for _, m := range bundle.Monthly {
		records = append(records, []string{
			m.Month,
			strconv.Itoa(m.EmployeesStart),
			strconv.Itoa(m.EmployeesLeft),
			fmtFloat(m.AttritionRate),
			fmtFloat(m.AttritionPercent),
			fmtFloat(m.Rolling3mPct),
		})
	}
	return writeCSV(filepath.Join(dir, FactMonthlyFile), factMonthlyHeader, records)
}

func writeCSV(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	logging.Info().Str("file", path).Int("rows", len(records)).Msg("Exported")
	return nil
}

func fmtStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func fmtInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func fmtInt64(n *int64) string {
	if n == nil {
		return ""
	}
	return strconv.FormatInt(*n, 10)
}

func fmtFloatPtr(f *float64) string {
	if f == nil {
		return ""
	}
	return fmtFloat(*f)
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}
