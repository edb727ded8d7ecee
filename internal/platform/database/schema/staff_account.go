// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema centralizes the physical table and column names of the
// Worklane database so that queries never hard-code identifiers.
package schema

// StaffAccountTable represents the 'staff.account' table
type StaffAccountTable struct {
	Table          string
	ID             string
	Identifier     string
	CredentialHash string
	DisplayName    string
	Email          string
	Phone          string
	Address        string
	BirthDate      string
	Gender         string
	Position       string
	Job            string
	Department     string
	WorkType       string
	StartDate      string
	QuitDate       string
	IsActive       string
	CreatedAt      string
	UpdatedAt      string
}

// StaffAccount is the schema definition for staff.account
var StaffAccount = StaffAccountTable{
	Table:          "staff.account",
	ID:             "id",
	Identifier:     "identifier",
	CredentialHash: "credentialhash",
	DisplayName:    "displayname",
	Email:          "email",
	Phone:          "phone",
	Address:        "address",
	BirthDate:      "birthdate",
	Gender:         "gender",
	Position:       "position",
	Job:            "job",
	Department:     "department",
	WorkType:       "worktype",
	StartDate:      "startdate",
	QuitDate:       "quitdate",
	IsActive:       "isactive",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
}

func (t StaffAccountTable) Columns() []string {
	return []string{
		t.ID, t.Identifier, t.CredentialHash, t.DisplayName, t.Email, t.Phone, t.Address,
		t.BirthDate, t.Gender, t.Position, t.Job, t.Department, t.WorkType,
		t.StartDate, t.QuitDate, t.IsActive, t.CreatedAt, t.UpdatedAt,
	}
}
