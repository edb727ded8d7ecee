// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// StaffEmployeeTable represents the 'staff.employee' table
type StaffEmployeeTable struct {
	Table      string
	ID         string
	Name       string
	Department string
	Email      string
	CreatedAt  string
	UpdatedAt  string
}

// StaffEmployee is the schema definition for staff.employee
var StaffEmployee = StaffEmployeeTable{
	Table:      "staff.employee",
	ID:         "id",
	Name:       "name",
	Department: "department",
	Email:      "email",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}

func (t StaffEmployeeTable) Columns() []string {
	return []string{t.ID, t.Name, t.Department, t.Email, t.CreatedAt, t.UpdatedAt}
}
