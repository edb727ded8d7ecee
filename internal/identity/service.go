// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/taibuivan/worklane/internal/platform/apperr"
	"github.com/taibuivan/worklane/internal/platform/dberr"
	"github.com/taibuivan/worklane/internal/platform/sec"
	"github.com/taibuivan/worklane/pkg/identifier"

	"github.com/google/uuid"
)

// # Contracts & Types

// TokenIssuer defines the contract for creating signed session tokens.
type TokenIssuer interface {
	// Issue creates a signed session token string for the given account.
	//
	// # Parameters
	//   - subjectID: The surrogate ID of the account.
	//   - displayName: The display claim carried alongside the subject.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed token string, or an err if signing fails.
	Issue(subjectID, displayName string, timeToLive time.Duration) (string, error)
}

// Service implements the identity use cases: signup, availability, login.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, signup,
// or login logic must be reviewed by the security team.
type Service struct {
	accountStore AccountStore
	tokenIssuer  TokenIssuer
}

// NewService constructs a new identity [Service] with necessary dependencies.
func NewService(store AccountStore, issuer TokenIssuer) *Service {
	return &Service{
		accountStore: store,
		tokenIssuer:  issuer,
	}
}

// # Signup Flow

// SignupInput holds the data required to enroll a new staff member.
type SignupInput struct {
	Identifier  string
	Secret      string
	DisplayName string
	Email       string
	Phone       string
	Address     string
	BirthDate   *time.Time
	Gender      string
	Position    string
	Job         string
	Department  string
	WorkType    string
	StartDate   *time.Time
}

/*
Signup validates, hashes, and persists a brand new account.

Description: Canonicalizes the identifier, hashes the secret, and persists
the account with the activation flag set. Timestamps are set by the store
on creation.

Parameters:
  - context: context.Context
  - input: SignupInput

Returns:
  - *Account: Created entity (credential hash never reaches the transport layer)
  - err: DuplicateIdentifier, ValidationError, Unavailable, or storage errors
*/
func (service *Service) Signup(context context.Context, input SignupInput) (*Account, error) {

	// Required fields are enforced here as well as at the handler so the
	// service is safe to call from any entry point.
	canonicalID := identifier.Normalize(input.Identifier)
	if canonicalID == "" || input.Secret == "" || input.DisplayName == "" {
		return nil, apperr.ValidationError("Identifier, secret, and display name are required")
	}
	if !identifier.IsValid(canonicalID) {
		return nil, apperr.ValidationError("Identifier must be 3-30 characters: lowercase letters, digits, dots, underscores, hyphens")
	}

	// Advisory pre-check for a friendly error. The storage-level unique
	// constraint remains the real guarantee against concurrent signups.
	exists, err := service.existsByIdentifier(context, canonicalID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.DuplicateIdentifier()
	}

	// Prevent storing plain-text secrets. Default cost is used for balance
	// between security and CPU utilization during enrollment spikes.
	credentialHash, err := sec.HashSecret(input.Secret)
	if err != nil {
		if errors.Is(err, sec.ErrInvalidSecret) {
			return nil, apperr.ValidationError("Secret must be between 1 and 72 bytes")
		}
		return nil, fmt.Errorf("identity_service_hash_failed: %w", err)
	}

	// Construct the new Account. Time-sortable ID to prevent PG index fragmentation.
	account := &Account{
		ID:             newAccountID(),
		Identifier:     canonicalID,
		CredentialHash: credentialHash,
		DisplayName:    input.DisplayName,
		Email:          input.Email,
		Phone:          input.Phone,
		Address:        input.Address,
		BirthDate:      input.BirthDate,
		Gender:         input.Gender,
		Position:       input.Position,
		Job:            input.Job,
		Department:     input.Department,
		WorkType:       input.WorkType,
		StartDate:      input.StartDate,
		IsActive:       true,
	}

	storeCtx, cancel := service.boundedContext(context)
	defer cancel()

	if err := service.accountStore.Create(storeCtx, account); err != nil {
		return nil, service.classify(err, "identity_service_signup_failed")
	}

	return account, nil
}

/*
CheckIdentifierAvailable reports whether an identifier can still be claimed.

Description: Thin existence query over the canonical form. The answer is
identical for active and inactive accounts, so availability never leaks
activation state.

Parameters:
  - context: context.Context
  - rawIdentifier: string

Returns:
  - bool: true iff no account holds the identifier
  - err: Unavailable or storage errors
*/
func (service *Service) CheckIdentifierAvailable(context context.Context, rawIdentifier string) (bool, error) {
	canonicalID := identifier.Normalize(rawIdentifier)
	if canonicalID == "" {
		return false, apperr.ValidationError("Identifier is required")
	}

	exists, err := service.existsByIdentifier(context, canonicalID)
	if err != nil {
		return false, err
	}

	return !exists, nil
}

// # Login Flow

/*
Login validates credentials and issues a session token.

Description: A single atomic decision with no side effects beyond token
issuance — no failed-attempt counters, no retry states.

State machine, terminal outcomes:
  - Unknown identifier → AuthenticationFailed (merged with wrong-secret to
    resist identifier enumeration).
  - Known, inactive (or activation flag absent) → AccountDisabled.
  - Known, active, secret mismatch → AuthenticationFailed.
  - Known, active, secret match → session token bound to (ID, DisplayName).

Parameters:
  - context: context.Context
  - rawIdentifier: string
  - secret: string

Returns:
  - *SessionResult: Token, expiry, and the account (hash never serialized)
  - err: AuthenticationFailed, AccountDisabled, Unavailable, or internal failures
*/
func (service *Service) Login(context context.Context, rawIdentifier, secret string) (*SessionResult, error) {
	canonicalID := identifier.Normalize(rawIdentifier)

	storeCtx, cancel := service.boundedContext(context)
	defer cancel()

	account, err := service.accountStore.FindByIdentifier(storeCtx, canonicalID)
	if err != nil {
		// Unknown identifier collapses into the generic credential failure.
		if dberr.IsNotFound(err) {
			return nil, apperr.AuthenticationFailed()
		}
		if appError := apperr.As(err); appError != nil && appError.Code == "NOT_FOUND" {
			return nil, apperr.AuthenticationFailed()
		}
		return nil, service.classify(err, "identity_service_login_lookup_failed")
	}

	// Activation gate runs before credential verification: a deactivated
	// account fails closed even with the correct secret.
	if !account.IsActive {
		return nil, apperr.AccountDisabled()
	}

	if !sec.VerifySecret(secret, account.CredentialHash) {
		return nil, apperr.AuthenticationFailed()
	}

	token, err := service.tokenIssuer.Issue(account.ID, account.DisplayName, SessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("identity_service_token_issue_failed: %w", err)
	}

	return &SessionResult{
		Token:     token,
		ExpiresAt: time.Now().Add(SessionTokenTTL),
		Account:   account,
	}, nil
}

// # Activation Management

/*
SetActive toggles the activation flag of an account.

Description: HR tooling entry point. Deactivation blocks login on the next
attempt; already-issued session tokens expire by time only (stateless
design, no server-side revocation).

Parameters:
  - context: context.Context
  - rawIdentifier: string
  - active: bool

Returns:
  - err: NotFound, Unavailable, or persistence failures
*/
func (service *Service) SetActive(context context.Context, rawIdentifier string, active bool) error {
	canonicalID := identifier.Normalize(rawIdentifier)

	storeCtx, cancel := service.boundedContext(context)
	defer cancel()

	if err := service.accountStore.SetActive(storeCtx, canonicalID, active); err != nil {
		return service.classify(err, "identity_service_set_active_failed")
	}

	return nil
}

// # Internal Helpers

// existsByIdentifier runs the bounded existence query.
func (service *Service) existsByIdentifier(context context.Context, canonicalID string) (bool, error) {
	storeCtx, cancel := service.boundedContext(context)
	defer cancel()

	exists, err := service.accountStore.ExistsByIdentifier(storeCtx, canonicalID)
	if err != nil {
		return false, service.classify(err, "identity_service_exists_failed")
	}
	return exists, nil
}

// boundedContext derives the deadline applied to every store round-trip.
func (service *Service) boundedContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, BackendTimeout)
}

// classify passes typed domain errors through untouched, converts backend
// unavailability (deadline hit, connection refused) into UNAVAILABLE, and
// wraps everything else for the caller to log.
func (service *Service) classify(err error, action string) error {
	if apperr.IsAppError(err) {
		return err
	}
	if dberr.IsUnavailable(err) {
		return apperr.Unavailable(err)
	}
	return fmt.Errorf("%s: %w", action, err)
}

// newAccountID returns a time-sortable UUIDv7 string, falling back to v4.
func newAccountID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
