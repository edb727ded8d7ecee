// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/worklane/internal/platform/apperr"
)

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation (SQLSTATE 23505).
//
// The identity core relies on this classification: the duplicate-identifier
// guarantee is enforced by the storage layer's UNIQUE constraint, and this
// is how the violation surfaces to the service.
func IsUniqueViolation(err error) bool {
	var pgError *pgconn.PgError
	return errors.As(err, &pgError) && pgError.Code == pgerrcode.UniqueViolation
}

// IsNotFound reports whether err means the queried row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsUnavailable reports whether err indicates the database could not be
// reached in time (deadline exceeded, cancellation, connection failure).
func IsUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	var connectError *pgconn.ConnectError
	return errors.As(err, &connectError)
}

// Classify wraps a database error into a meaningful [apperr.AppError],
// hiding internal database details from the client. Store implementations
// call it on every failed query so that services only ever see
// application errors.
func Classify(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case IsNotFound(err):
		return apperr.NotFound(resource)
	case IsUniqueViolation(err):
		return apperr.DuplicateIdentifier()
	case IsUnavailable(err):
		return apperr.Unavailable(err)
	default:
		return apperr.Internal(err)
	}
}
