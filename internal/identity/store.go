// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

import "context"

// # Account Data Access

// AccountStore defines the data access contract the identity core depends on.
//
// # Concurrency Guarantee
//
// Implementations must make Create atomic with respect to identifier
// uniqueness: two concurrent Create calls for the same identifier result in
// at most one success, with the loser failing as a duplicate. An
// application-level existence check is advisory only; the real guarantee
// comes from a storage-level unique constraint, because multiple service
// instances may run concurrently.
type AccountStore interface {

	/*
		ExistsByIdentifier reports whether an account with the canonical
		identifier exists, regardless of its activation state.

		Parameters:
		  - context: context.Context
		  - canonicalID: string

		Returns:
		  - bool: Existence flag
		  - error: Database retrieval failures
	*/
	ExistsByIdentifier(context context.Context, canonicalID string) (bool, error)

	/*
		Create persists a brand-new account. Fails with
		apperr.DuplicateIdentifier when the identifier is already taken
		(unique-constraint violation); never partially inserts.

		Parameters:
		  - context: context.Context
		  - account: *Account

		Returns:
		  - error: Duplicate or persistence failures
	*/
	Create(context context.Context, account *Account) error

	/*
		FindByIdentifier returns the account with the canonical identifier.

		Parameters:
		  - context: context.Context
		  - canonicalID: string

		Returns:
		  - *Account: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByIdentifier(context context.Context, canonicalID string) (*Account, error)

	/*
		SetActive updates only the activation flag of an account.

		Parameters:
		  - context: context.Context
		  - canonicalID: string
		  - active: bool

		Returns:
		  - error: apperr.NotFound or persistence failures
	*/
	SetActive(context context.Context, canonicalID string, active bool) error
}
