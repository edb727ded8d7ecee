// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package directory implements the staff directory: the read-heavy roster of
employees backing the company-wide people search.

# Architecture

The directory is a classic cache-aside read path:

  - Postgres holds the canonical employee rows (staff.employee).
  - Redis caches rendered listing pages with a short TTL.
  - Writes invalidate every cached page before returning.

The directory intentionally exposes a much smaller view of a person than
the identity domain: name, department, and contact email. Identity accounts
and directory entries are linked organizationally, not by foreign key, so
either side can exist without the other (contractors appear in the
directory without accounts, service accounts sign in without a directory
entry).
*/
package directory

import "time"

// Employee is a public directory entry.
type Employee struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Department string    `json:"department,omitempty"`
	Email      string    `json:"email,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldName       = "name"
	FieldDepartment = "department"
	FieldEmail      = "email"
	FieldEmployees  = "employees"
	FieldPagination = "pagination"
)
