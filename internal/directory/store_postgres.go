// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/worklane/internal/platform/database/schema"
	"github.com/taibuivan/worklane/internal/platform/dberr"
	"github.com/taibuivan/worklane/pkg/pagination"
)

// PostgresEmployeeStore implements [EmployeeStore] using pgx.
type PostgresEmployeeStore struct {
	pool *pgxpool.Pool
}

// NewPostgresEmployeeStore creates a new Postgres implementation for the
// staff directory.
func NewPostgresEmployeeStore(pool *pgxpool.Pool) *PostgresEmployeeStore {
	return &PostgresEmployeeStore{pool: pool}
}

/*
List retrieves one page of staff.employee rows ordered by name.

Parameters:
  - context: context.Context
  - params: pagination.Params

Returns:
  - []Employee: The requested page
  - int: Total row count for pagination metadata
  - error: Classified database execution failure
*/
func (store *PostgresEmployeeStore) List(context context.Context, params pagination.Params) ([]Employee, int, error) {
	table := schema.StaffEmployee

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table.Table)
	var total int
	if err := store.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Classify(err, "Employee")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s ASC, %s ASC
		LIMIT $1 OFFSET $2`,
		strings.Join(table.Columns(), ", "),
		table.Table,
		table.Name, table.ID,
	)

	rows, err := store.pool.Query(context, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Classify(err, "Employee")
	}
	defer rows.Close()

	employees := make([]Employee, 0, params.Limit)
	for rows.Next() {
		var employee Employee
		if err := rows.Scan(
			&employee.ID,
			&employee.Name,
			&employee.Department,
			&employee.Email,
			&employee.CreatedAt,
			&employee.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Classify(err, "Employee")
		}
		employees = append(employees, employee)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Classify(err, "Employee")
	}

	return employees, total, nil
}

/*
Create inserts a new staff.employee row.

Parameters:
  - context: context.Context
  - employee: *Employee (CreatedAt and UpdatedAt are populated on return)

Returns:
  - error: Classified insert failures
*/
func (store *PostgresEmployeeStore) Create(context context.Context, employee *Employee) error {
	table := schema.StaffEmployee
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		table.Table,
		strings.Join(table.Columns(), ", "),
	)

	now := time.Now()
	_, err := store.pool.Exec(context, query,
		employee.ID,
		employee.Name,
		employee.Department,
		employee.Email,
		now,
		now,
	)
	if err != nil {
		return dberr.Classify(err, "Employee")
	}

	employee.CreatedAt = now
	employee.UpdatedAt = now
	return nil
}

/*
FindByID retrieves a single staff.employee row.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Employee: Hydrated entry
  - error: apperr.NotFound or classified database execution failure
*/
func (store *PostgresEmployeeStore) FindByID(context context.Context, id string) (*Employee, error) {
	table := schema.StaffEmployee
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1`,
		strings.Join(table.Columns(), ", "),
		table.Table,
		table.ID,
	)

	employee := &Employee{}
	err := store.pool.QueryRow(context, query, id).Scan(
		&employee.ID,
		&employee.Name,
		&employee.Department,
		&employee.Email,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Classify(err, "Employee")
	}

	return employee, nil
}
