// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/worklane/internal/identity"
	"github.com/taibuivan/worklane/internal/platform/apperr"
	"github.com/taibuivan/worklane/internal/platform/sec"
)

// # Test Doubles

// memoryAccountStore is an in-memory [identity.AccountStore] whose Create
// enforces identifier uniqueness under a single mutex, mirroring the
// database's unique constraint.
type memoryAccountStore struct {
	mu       sync.Mutex
	accounts map[string]*identity.Account

	// failWith, when set, is returned from every method to simulate an
	// unreachable backend.
	failWith error
}

func newMemoryAccountStore() *memoryAccountStore {
	return &memoryAccountStore{accounts: make(map[string]*identity.Account)}
}

func (store *memoryAccountStore) ExistsByIdentifier(_ context.Context, canonicalID string) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.failWith != nil {
		return false, store.failWith
	}
	_, ok := store.accounts[canonicalID]
	return ok, nil
}

func (store *memoryAccountStore) Create(_ context.Context, account *identity.Account) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.failWith != nil {
		return store.failWith
	}
	if _, ok := store.accounts[account.Identifier]; ok {
		return apperr.DuplicateIdentifier()
	}
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now
	copied := *account
	store.accounts[account.Identifier] = &copied
	return nil
}

func (store *memoryAccountStore) FindByIdentifier(_ context.Context, canonicalID string) (*identity.Account, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.failWith != nil {
		return nil, store.failWith
	}
	account, ok := store.accounts[canonicalID]
	if !ok {
		return nil, apperr.NotFound("Account")
	}
	copied := *account
	return &copied, nil
}

func (store *memoryAccountStore) SetActive(_ context.Context, canonicalID string, active bool) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.failWith != nil {
		return store.failWith
	}
	account, ok := store.accounts[canonicalID]
	if !ok {
		return apperr.NotFound("Account")
	}
	account.IsActive = active
	return nil
}

// staticTokenIssuer records the last issuance and returns a fixed token.
type staticTokenIssuer struct {
	token        string
	lastSubject  string
	lastDisplay  string
	lastLifetime time.Duration
	err          error
}

func (issuer *staticTokenIssuer) Issue(subjectID, displayName string, timeToLive time.Duration) (string, error) {
	issuer.lastSubject = subjectID
	issuer.lastDisplay = displayName
	issuer.lastLifetime = timeToLive
	return issuer.token, issuer.err
}

func newTestService(store *memoryAccountStore, issuer *staticTokenIssuer) *identity.Service {
	if issuer == nil {
		issuer = &staticTokenIssuer{token: "token-1"}
	}
	return identity.NewService(store, issuer)
}

func validSignup() identity.SignupInput {
	return identity.SignupInput{
		Identifier:  "alice.w",
		Secret:      "correct-horse-battery",
		DisplayName: "Alice Watanabe",
		Email:       "alice@example.com",
		Department:  "Engineering",
	}
}

// # Signup

/*
TestService_Signup_Success verifies the happy path: the account is created
active, the secret is stored only in hashed form, and a surrogate ID is
assigned.
*/
func TestService_Signup_Success(t *testing.T) {
	store := newMemoryAccountStore()
	service := newTestService(store, nil)

	account, err := service.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	assert.NotEmpty(t, account.ID)
	assert.Equal(t, "alice.w", account.Identifier)
	assert.True(t, account.IsActive)
	assert.False(t, account.CreatedAt.IsZero())

	// The plaintext secret must never be persisted.
	stored, err := store.FindByIdentifier(context.Background(), "alice.w")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse-battery", stored.CredentialHash)
	assert.True(t, sec.VerifySecret("correct-horse-battery", stored.CredentialHash))
}

/*
TestService_Signup_DuplicateIdentifier verifies that a taken identifier is
rejected with the typed duplicate error and leaves the original untouched.
*/
func TestService_Signup_DuplicateIdentifier(t *testing.T) {
	store := newMemoryAccountStore()
	service := newTestService(store, nil)

	first, err := service.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	input := validSignup()
	input.DisplayName = "Impostor"
	_, err = service.Signup(context.Background(), input)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "DUPLICATE_IDENTIFIER", appError.Code)

	stored, err := store.FindByIdentifier(context.Background(), "alice.w")
	require.NoError(t, err)
	assert.Equal(t, first.DisplayName, stored.DisplayName)
}

/*
TestService_Signup_IdentifierNormalization verifies that identifiers are
canonicalized before storage and matching: case and surrounding whitespace
never create a distinct account.
*/
func TestService_Signup_IdentifierNormalization(t *testing.T) {
	store := newMemoryAccountStore()
	service := newTestService(store, nil)

	input := validSignup()
	input.Identifier = "  Alice.W  "
	account, err := service.Signup(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "alice.w", account.Identifier)

	_, err = service.Signup(context.Background(), validSignup())
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "DUPLICATE_IDENTIFIER", appError.Code)
}

/*
TestService_Signup_ValidationFailures covers the required-field and
identifier-shape guards.
*/
func TestService_Signup_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*identity.SignupInput)
	}{
		{"missing_identifier", func(in *identity.SignupInput) { in.Identifier = "" }},
		{"missing_secret", func(in *identity.SignupInput) { in.Secret = "" }},
		{"missing_display_name", func(in *identity.SignupInput) { in.DisplayName = "" }},
		{"identifier_too_short", func(in *identity.SignupInput) { in.Identifier = "ab" }},
		{"identifier_bad_chars", func(in *identity.SignupInput) { in.Identifier = "alice!w" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(newMemoryAccountStore(), nil)
			input := validSignup()
			tt.mutate(&input)

			_, err := service.Signup(context.Background(), input)
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		})
	}
}

/*
TestService_Signup_ConcurrentSameIdentifier races many signups for one
identifier and asserts exactly one winner; every loser gets the duplicate
error.
*/
func TestService_Signup_ConcurrentSameIdentifier(t *testing.T) {
	store := newMemoryAccountStore()
	service := newTestService(store, nil)

	const attempts = 16
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Signup(context.Background(), validSignup())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	winners, losers := 0, 0
	for err := range results {
		if err == nil {
			winners++
			continue
		}
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "DUPLICATE_IDENTIFIER", appError.Code)
		losers++
	}

	assert.Equal(t, 1, winners)
	assert.Equal(t, attempts-1, losers)
}

// # Availability

/*
TestService_CheckIdentifierAvailable verifies availability reporting and
its opacity: an inactive account still makes its identifier unavailable.
*/
func TestService_CheckIdentifierAvailable(t *testing.T) {
	store := newMemoryAccountStore()
	service := newTestService(store, nil)

	available, err := service.CheckIdentifierAvailable(context.Background(), "alice.w")
	require.NoError(t, err)
	assert.True(t, available)

	_, err = service.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	available, err = service.CheckIdentifierAvailable(context.Background(), "Alice.W")
	require.NoError(t, err)
	assert.False(t, available)

	// Deactivation must not change the answer.
	require.NoError(t, service.SetActive(context.Background(), "alice.w", false))
	available, err = service.CheckIdentifierAvailable(context.Background(), "alice.w")
	require.NoError(t, err)
	assert.False(t, available)
}

// # Login

/*
TestService_Login exercises the full login state machine with one account
seeded through Signup.
*/
func TestService_Login(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		secret     string
		deactivate bool
		wantCode   string
	}{
		{"unknown_identifier", "nobody", "correct-horse-battery", false, "AUTHENTICATION_FAILED"},
		{"wrong_secret", "alice.w", "incorrect", false, "AUTHENTICATION_FAILED"},
		{"disabled_account", "alice.w", "correct-horse-battery", true, "ACCOUNT_DISABLED"},
		{"disabled_wrong_secret", "alice.w", "incorrect", true, "ACCOUNT_DISABLED"},
		{"success", "alice.w", "correct-horse-battery", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemoryAccountStore()
			issuer := &staticTokenIssuer{token: "signed-token"}
			service := newTestService(store, issuer)

			created, err := service.Signup(context.Background(), validSignup())
			require.NoError(t, err)
			if tt.deactivate {
				require.NoError(t, service.SetActive(context.Background(), created.Identifier, false))
			}

			session, err := service.Login(context.Background(), tt.identifier, tt.secret)

			if tt.wantCode != "" {
				appError := apperr.As(err)
				require.NotNil(t, appError)
				assert.Equal(t, tt.wantCode, appError.Code)
				assert.Nil(t, session)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "signed-token", session.Token)
			assert.Equal(t, created.ID, issuer.lastSubject)
			assert.Equal(t, created.DisplayName, issuer.lastDisplay)
			assert.Equal(t, identity.SessionTokenTTL, issuer.lastLifetime)
			assert.WithinDuration(t, time.Now().Add(identity.SessionTokenTTL), session.ExpiresAt, 5*time.Second)
		})
	}
}

/*
TestService_Login_CaseInsensitiveIdentifier verifies the login lookup uses
the canonical identifier form.
*/
func TestService_Login_CaseInsensitiveIdentifier(t *testing.T) {
	service := newTestService(newMemoryAccountStore(), &staticTokenIssuer{token: "tok"})

	_, err := service.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	session, err := service.Login(context.Background(), "ALICE.W", "correct-horse-battery")
	require.NoError(t, err)
	assert.Equal(t, "alice.w", session.Account.Identifier)
}

// # Backend Failures

/*
TestService_BackendUnavailable verifies that deadline and connectivity
failures surface as UNAVAILABLE instead of leaking raw driver errors.
*/
func TestService_BackendUnavailable(t *testing.T) {
	store := newMemoryAccountStore()
	store.failWith = context.DeadlineExceeded
	service := newTestService(store, nil)

	_, err := service.Signup(context.Background(), validSignup())
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "UNAVAILABLE", appError.Code)

	_, err = service.CheckIdentifierAvailable(context.Background(), "alice.w")
	appError = apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "UNAVAILABLE", appError.Code)

	_, err = service.Login(context.Background(), "alice.w", "secret123")
	appError = apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "UNAVAILABLE", appError.Code)
}

// # Activation

/*
TestService_SetActive verifies activation toggling and the unknown-account
error.
*/
func TestService_SetActive(t *testing.T) {
	store := newMemoryAccountStore()
	service := newTestService(store, nil)

	err := service.SetActive(context.Background(), "ghost", false)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "NOT_FOUND", appError.Code)

	_, err = service.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	require.NoError(t, service.SetActive(context.Background(), "alice.w", false))
	account, err := store.FindByIdentifier(context.Background(), "alice.w")
	require.NoError(t, err)
	assert.False(t, account.IsActive)

	require.NoError(t, service.SetActive(context.Background(), "alice.w", true))
	account, err = store.FindByIdentifier(context.Background(), "alice.w")
	require.NoError(t, err)
	assert.True(t, account.IsActive)
}
