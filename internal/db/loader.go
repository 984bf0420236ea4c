package db

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/hrops/hr-reportgen/internal/logging"
	"github.com/hrops/hr-reportgen/internal/model"
)

// Source table names within the warehouse schema.
const (
	FactTable      = "fact_employee_clean"
	DeptTable      = "dim_department"
	PositionTable  = "dim_position"
	ManagerTable   = "dim_manager"
	RaceTable      = "dim_race"
	DeptColumn     = "department"
	PositionColumn = "position"
	ManagerColumn  = "manager_name"
	RaceColumn     = "race_name"
)

// Querier is the subset of pgxpool.Pool the loader needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Loader reads raw tables from the warehouse. Every load degrades to an
// empty result on failure; only the caller decides whether emptiness is
// fatal.
type Loader struct {
	db     Querier
	schema string
}

// NewLoader creates a Loader reading from the given schema.
func NewLoader(db Querier, schema string) *Loader {
	return &Loader{db: db, schema: schema}
}

// Employees loads the employee fact table. On any query or scan failure the
// error is logged and an empty slice returned.
func (l *Loader) Employees(ctx context.Context) []model.Employee {
	logging.Info().Str("table", l.qualified(FactTable)).Msg("Loading table")

	rows, err := l.db.Query(ctx, fmt.Sprintf("SELECT * FROM %s", l.qualified(FactTable)))
	if err != nil {
		logging.Warn().Err(err).Str("table", FactTable).Msg("Failed to load table")
		return nil
	}
	defer rows.Close()

	cols := make([]string, 0, len(rows.FieldDescriptions()))
	for _, fd := range rows.FieldDescriptions() {
		cols = append(cols, fd.Name)
	}

	var employees []model.Employee
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			logging.Warn().Err(err).Str("table", FactTable).Msg("Failed to scan row")
			return nil
		}

		var e model.Employee
		for i, col := range cols {
			v := values[i]
			if v == nil {
				continue
			}
			switch col {
			case "employee_id":
				e.EmployeeID = asInt64(v)
			case "department":
				e.Department = asString(v)
			case "position":
				e.Position = asString(v)
			case "manager_name":
				e.ManagerName = asString(v)
			case "racedesc":
				e.RaceDesc = asString(v)
			case "gender":
				e.Gender = asString(v)
			case "salary":
				e.Salary = asFloat64(v)
			case "date_of_birth":
				e.DateOfBirth = asString(v)
			case "date_of_hire":
				e.DateOfHire = asString(v)
			case "date_of_termination":
				e.DateOfTermination = asString(v)
			case "performance_category":
				e.PerformanceCategory = asString(v)
			case "attrition_flag":
				e.AttritionFlag = asString(v)
			}
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		logging.Warn().Err(err).Str("table", FactTable).Msg("Failed to read table")
		return nil
	}

	return employees
}

// Keys loads the natural-key column of a dimension source table. SQL NULLs
// are returned as empty strings so the dimension builder still sees the row.
// On failure the error is logged and an empty slice returned.
func (l *Loader) Keys(ctx context.Context, table, column string) []string {
	logging.Info().Str("table", l.qualified(table)).Msg("Loading table")

	rows, err := l.db.Query(ctx, fmt.Sprintf("SELECT %s FROM %s", column, l.qualified(table)))
	if err != nil {
		logging.Warn().Err(err).Str("table", table).Msg("Failed to load table")
		return nil
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key *string
		if err := rows.Scan(&key); err != nil {
			logging.Warn().Err(err).Str("table", table).Msg("Failed to scan row")
			return nil
		}
		if key == nil {
			keys = append(keys, "")
		} else {
			keys = append(keys, *key)
		}
	}
	if err := rows.Err(); err != nil {
		logging.Warn().Err(err).Str("table", table).Msg("Failed to read table")
		return nil
	}

	return keys
}

func (l *Loader) qualified(table string) string {
	return l.schema + "." + table
}

// asString renders a scanned value as text. Dates come back from pgx as
// time.Time; they are rendered in the layout the temporal deriver parses.
func asString(v any) *string {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case []byte:
		s = string(t)
	case bool:
		s = strconv.FormatBool(t)
	case time.Time:
		s = t.Format(time.DateOnly)
	case int16:
		s = strconv.FormatInt(int64(t), 10)
	case int32:
		s = strconv.FormatInt(int64(t), 10)
	case int64:
		s = strconv.FormatInt(t, 10)
	default:
		s = fmt.Sprint(t)
	}
	return &s
}

func asInt64(v any) *int64 {
	var n int64
	switch t := v.(type) {
	case int16:
		n = int64(t)
	case int32:
		n = int64(t)
	case int64:
		n = t
	case float64:
		n = int64(t)
	case pgtype.Numeric:
		iv, err := t.Int64Value()
		if err != nil || !iv.Valid {
			return nil
		}
		n = iv.Int64
	case string:
		parsed, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return nil
		}
		n = parsed
	default:
		return nil
	}
	return &n
}

func asFloat64(v any) *float64 {
	var f float64
	switch t := v.(type) {
	case float32:
		f = float64(t)
	case float64:
		f = t
	case int16:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case pgtype.Numeric:
		fv, err := t.Float64Value()
		if err != nil || !fv.Valid {
			return nil
		}
		f = fv.Float64
	case string:
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	return &f
}
