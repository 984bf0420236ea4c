package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hrops/hr-reportgen/internal/logging"
)

// insertBatchSize is the number of fact rows queued per batch round trip.
const insertBatchSize = 200

// Categorical pools for the demo warehouse. "Unknown" is the sentinel the
// upstream pipeline writes for missing data; the reporting pipeline is
// expected to clean it out, so the demo data must contain it.
var (
	departments = []string{
		"Production", "IT/IS", "Sales", "Software Engineering",
		"Admin Offices", "Executive Office", "Unknown",
	}
	positions = []string{
		"Production Technician I", "Production Technician II",
		"Area Sales Manager", "IT Support", "Software Engineer",
		"Database Administrator", "Network Engineer", "Accountant I",
		"Sr. Accountant", "Production Manager", "BI Developer",
	}
	races = []string{
		"White", "Black or African American", "Asian",
		"American Indian or Alaska Native", "Two or more races", "Hispanic",
		"Unknown",
	}
	performanceCategories = []string{
		"Exceeds", "Fully Meets", "Needs Improvement", "PIP",
	}
)

// employeeRecord is one generated fact row. Pointer fields are nullable.
type employeeRecord struct {
	ID            int
	Department    string
	Position      string
	ManagerName   string
	RaceDesc      string
	Gender        *string
	Salary        float64
	DateOfBirth   time.Time
	DateOfHire    time.Time
	Termination   *time.Time
	Performance   *string
	AttritionFlag bool
}

// Generator produces demo warehouse data.
type Generator struct {
	faker    *gofakeit.Faker
	managers []string
}

// NewGenerator creates a Generator. A zero seed uses the current time, so
// runs are reproducible only when a seed is given.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	f := gofakeit.New(seed)

	managers := make([]string, 0, 13)
	for i := 0; i < 12; i++ {
		managers = append(managers, f.FirstName()+" "+f.LastName())
	}
	managers = append(managers, "Unknown")

	return &Generator{faker: f, managers: managers}
}

// Generate fills the warehouse with dimension rows and count employee fact
// rows.
func (g *Generator) Generate(ctx context.Context, pool *pgxpool.Pool, schema string, count int) error {
	dims := []struct {
		table  string
		column string
		values []string
	}{
		{"dim_department", "department", departments},
		{"dim_position", "position", positions},
		{"dim_manager", "manager_name", g.managers},
		{"dim_race", "race_name", races},
	}
	for _, dim := range dims {
		sql := fmt.Sprintf("INSERT INTO %s.%s (%s) VALUES ($1)", schema, dim.table, dim.column)
		for _, value := range dim.values {
			if _, err := pool.Exec(ctx, sql, value); err != nil {
				return fmt.Errorf("failed to insert into %s: %w", dim.table, err)
			}
		}
		logging.Info().Str("table", dim.table).Int("rows", len(dim.values)).Msg("Dimension seeded")
	}

	insertSQL := fmt.Sprintf(`
        INSERT INTO %s.fact_employee_clean
            (employee_id, department, position, manager_name, racedesc, gender,
             salary, date_of_birth, date_of_hire, date_of_termination,
             performance_category, attrition_flag)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `, schema)

	batch := &pgx.Batch{}
	for i := 1; i <= count; i++ {
		e := g.employee(i)
		batch.Queue(insertSQL,
			e.ID, e.Department, e.Position, e.ManagerName, e.RaceDesc,
			e.Gender, e.Salary, e.DateOfBirth, e.DateOfHire, e.Termination,
			e.Performance, e.AttritionFlag,
		)

		if batch.Len() >= insertBatchSize || i == count {
			if err := pool.SendBatch(ctx, batch).Close(); err != nil {
				return fmt.Errorf("failed to insert employees: %w", err)
			}
			batch = &pgx.Batch{}
		}
	}

	logging.Info().Int("rows", count).Msg("Employee fact table seeded")
	return nil
}

// employee generates one fact row. Roughly a quarter of employees are
// terminated, and a few percent carry missing or sentinel values so the
// cleaning rules have something to do.
func (g *Generator) employee(id int) employeeRecord {
	hire := g.faker.DateRange(
		time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	)
	birth := g.faker.DateRange(
		time.Date(1958, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC),
	)

	e := employeeRecord{
		ID:          id,
		Department:  g.pick(departments),
		Position:    g.pick(positions),
		ManagerName: g.pick(g.managers),
		RaceDesc:    g.pick(races),
		Salary:      g.faker.Price(38000, 160000),
		DateOfBirth: truncateDay(birth),
		DateOfHire:  truncateDay(hire),
	}

	if g.faker.Number(1, 100) > 2 {
		gender := g.faker.RandomString([]string{"M", "F"})
		e.Gender = &gender
	}
	if g.faker.Number(1, 100) > 3 {
		perf := g.pick(performanceCategories)
		e.Performance = &perf
	}

	if g.faker.Number(1, 100) <= 25 {
		term := truncateDay(e.DateOfHire.AddDate(0, 0, g.faker.Number(30, 2000)))
		e.Termination = &term
		e.AttritionFlag = true
	}

	return e
}

func (g *Generator) pick(values []string) string {
	return values[g.faker.Number(0, len(values)-1)]
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
