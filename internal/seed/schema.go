// Package seed creates and populates a demo HR warehouse so the reporting
// pipeline has source tables to read. It stands in for the upstream SQL
// pipeline that produces these tables in a real deployment.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema SQL for the HR warehouse source tables. The fact table mirrors the
// cleaned employee snapshot the upstream SQL pipeline emits; dimension
// tables carry a single natural-key column each.
const createSchemaSQL = `
CREATE SCHEMA IF NOT EXISTS %[1]s;

CREATE TABLE IF NOT EXISTS %[1]s.dim_department (
    department  VARCHAR(60)
);

CREATE TABLE IF NOT EXISTS %[1]s.dim_position (
    position    VARCHAR(80)
);

CREATE TABLE IF NOT EXISTS %[1]s.dim_manager (
    manager_name VARCHAR(80)
);

CREATE TABLE IF NOT EXISTS %[1]s.dim_race (
    race_name   VARCHAR(80)
);

CREATE TABLE IF NOT EXISTS %[1]s.fact_employee_clean (
    employee_id          INTEGER PRIMARY KEY,
    department           VARCHAR(60),
    position             VARCHAR(80),
    manager_name         VARCHAR(80),
    racedesc             VARCHAR(80),
    gender               VARCHAR(10),
    salary               NUMERIC(10,2),
    date_of_birth        DATE,
    date_of_hire         DATE,
    date_of_termination  DATE,
    performance_category VARCHAR(40),
    attrition_flag       BOOLEAN NOT NULL
);
`

// CreateSchema creates the warehouse schema and source tables.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool, schema string) error {
	if _, err := pool.Exec(ctx, fmt.Sprintf(createSchemaSQL, schema)); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// DropSchema drops the warehouse schema and everything in it.
func DropSchema(ctx context.Context, pool *pgxpool.Pool, schema string) error {
	if _, err := pool.Exec(ctx, fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schema)); err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	return nil
}
