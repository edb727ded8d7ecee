// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/worklane/internal/platform/apperr"
	"github.com/taibuivan/worklane/internal/platform/database/schema"
	"github.com/taibuivan/worklane/internal/platform/dberr"
)

// # Repository Implementation

// PostgresAccountStore implements [AccountStore] using pgx.
//
// The staff.account table carries a UNIQUE constraint on the identifier
// column; [dberr.Classify] translates its violation into the duplicate
// error so concurrent signups for the same identifier yield exactly one
// winner.
type PostgresAccountStore struct {
	pool *pgxpool.Pool
}

// NewPostgresAccountStore creates a new Postgres implementation for
// identity persistence.
func NewPostgresAccountStore(pool *pgxpool.Pool) *PostgresAccountStore {
	return &PostgresAccountStore{pool: pool}
}

// # AccountStore Methods

/*
ExistsByIdentifier performs a cheap existence check on staff.account.

Parameters:
  - context: context.Context
  - canonicalID: string (already normalized)

Returns:
  - bool: true iff a row holds the identifier, regardless of activation
  - error: Classified database execution failure
*/
func (store *PostgresAccountStore) ExistsByIdentifier(context context.Context, canonicalID string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.StaffAccount.Table, schema.StaffAccount.Identifier)

	var exists bool
	if err := store.pool.QueryRow(context, query, canonicalID).Scan(&exists); err != nil {
		return false, dberr.Classify(err, "Account")
	}

	return exists, nil
}

/*
Create inserts a new account row with store-assigned timestamps.

Description: The INSERT races freely with concurrent signups; the UNIQUE
constraint on the identifier column decides the winner and every loser
receives DuplicateIdentifier.

Parameters:
  - context: context.Context
  - account: *Account (CreatedAt and UpdatedAt are populated on return)

Returns:
  - error: apperr.DuplicateIdentifier or classified insert failures
*/
func (store *PostgresAccountStore) Create(context context.Context, account *Account) error {
	table := schema.StaffAccount
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		table.Table,
		strings.Join(table.Columns(), ", "),
	)

	now := time.Now()
	_, err := store.pool.Exec(context, query,
		account.ID,
		account.Identifier,
		account.CredentialHash,
		account.DisplayName,
		account.Email,
		account.Phone,
		account.Address,
		account.BirthDate,
		account.Gender,
		account.Position,
		account.Job,
		account.Department,
		account.WorkType,
		account.StartDate,
		account.QuitDate,
		account.IsActive,
		now,
		now,
	)

	if err != nil {
		return dberr.Classify(err, "Account")
	}

	account.CreatedAt = now
	account.UpdatedAt = now
	return nil
}

/*
FindByIdentifier retrieves the full account row for credential verification.

Description: The activation column is nullable for rows imported from the
legacy HR system; NULL is read as inactive so unmigrated accounts fail
closed at login.

Parameters:
  - context: context.Context
  - canonicalID: string

Returns:
  - *Account: Hydrated entity including the credential hash
  - error: apperr.NotFound or classified database execution failure
*/
func (store *PostgresAccountStore) FindByIdentifier(context context.Context, canonicalID string) (*Account, error) {
	table := schema.StaffAccount
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1`,
		strings.Join(table.Columns(), ", "),
		table.Table,
		table.Identifier,
	)

	account := &Account{}
	var isActive pgtype.Bool
	err := store.pool.QueryRow(context, query, canonicalID).Scan(
		&account.ID,
		&account.Identifier,
		&account.CredentialHash,
		&account.DisplayName,
		&account.Email,
		&account.Phone,
		&account.Address,
		&account.BirthDate,
		&account.Gender,
		&account.Position,
		&account.Job,
		&account.Department,
		&account.WorkType,
		&account.StartDate,
		&account.QuitDate,
		&isActive,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err != nil {
		return nil, dberr.Classify(err, "Account")
	}

	account.IsActive = isActive.Valid && isActive.Bool
	return account, nil
}

/*
SetActive flips the activation flag of an account.

Parameters:
  - context: context.Context
  - canonicalID: string
  - active: bool

Returns:
  - error: apperr.NotFound when no row matches, or classified update failures
*/
func (store *PostgresAccountStore) SetActive(context context.Context, canonicalID string, active bool) error {
	table := schema.StaffAccount
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		table.Table, table.IsActive, table.UpdatedAt, table.Identifier)

	tag, err := store.pool.Exec(context, query, canonicalID, active)
	if err != nil {
		return dberr.Classify(err, "Account")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Account")
	}

	return nil
}
