// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package identity implements the account and session management core.

It defines the Account entity and the logic for signup, identifier
availability, and login with session-token issuance.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no
transport dependencies and encapsulate all business rules related to staff
identity:

  - Uniqueness: exactly one Account per canonical identifier, enforced by
    the storage layer's UNIQUE constraint.
  - One-way credentials: the credential hash is produced and checked only
    by the sec package; it is never serialized, logged, or compared with ==.
  - Activation gating: a missing or false activation flag blocks login
    regardless of credential correctness.
*/
package identity

import "time"

// # Domain Entities

// Account represents a registered staff member of the Worklane directory.
//
// Identifier is the user-chosen login handle, stored in canonical form and
// immutable after creation. ID is the surrogate storage key; the two are
// deliberately distinct so the handle never doubles as a foreign key.
type Account struct {
	ID             string `json:"id"`
	Identifier     string `json:"identifier"`
	CredentialHash string `json:"-"` // Explicitly omitted from JSON for security.

	DisplayName string     `json:"display_name"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Address     string     `json:"address,omitempty"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	Gender      string     `json:"gender,omitempty"`

	// Role attributes: descriptive, not invariant-bearing.
	Position   string     `json:"position,omitempty"`
	Job        string     `json:"job,omitempty"`
	Department string     `json:"department,omitempty"`
	WorkType   string     `json:"work_type,omitempty"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	QuitDate   *time.Time `json:"quit_date,omitempty"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionResult represents a successfully established login session.
//
// The token is ephemeral and never persisted server-side; it reaches the
// caller only through the session cookie, never the JSON body.
type SessionResult struct {
	Token     string
	ExpiresAt time.Time
	Account   *Account
}

// # Field Identifiers

// Global field names for validation and payload mapping in the identity domain.
const (
	FieldIdentifier  = "identifier"
	FieldSecret      = "secret"
	FieldDisplayName = "display_name"
	FieldEmail       = "email"
	FieldBirthDate   = "birth_date"
	FieldGender      = "gender"
	FieldStartDate   = "start_date"
	FieldActive      = "active"
)
