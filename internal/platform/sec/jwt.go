// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and session token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via the identity package's TokenIssuer interface.
package sec

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// # Verification Failure Taxonomy

// Typed verification failures. Callers distinguish them with [errors.Is];
// no other error detail is part of the contract.
var (
	// ErrTokenMalformed means the presented string is not a parseable token.
	ErrTokenMalformed = errors.New("sec: token malformed")

	// ErrTokenSignatureInvalid means the token was not signed by this service.
	ErrTokenSignatureInvalid = errors.New("sec: token signature invalid")

	// ErrTokenExpired means the token was valid once but its lifetime has passed.
	ErrTokenExpired = errors.New("sec: token expired")
)

// SessionClaims represents the payload embedded inside a session token.
//
// # Why custom claims?
//
// By embedding the account ID and display name directly inside the token,
// protected endpoints can reconstruct the active user context WITHOUT a
// server-side session table lookup. The token is fully self-contained.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the payload small.
	SubjectID   string `json:"uid"`
	DisplayName string `json:"dnm"`
}

// TokenService handles generation and verification of session tokens using RS256.
//
// The signing key is process-wide state: loaded once at startup, immutable
// thereafter, safe for concurrent reads.
type TokenService struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	issuer     string
}

// NewTokenService creates a new TokenService.
// It reads RSA keys from the provided filesystem paths.
func NewTokenService(privateKeyPath, publicKeyPath, issuer string) (*TokenService, error) {
	privateKeyData, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to read private key from %s: %w", privateKeyPath, err)
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privateKeyData)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to parse private key: %w", err)
	}

	publicKeyData, err := os.ReadFile(publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to read public key from %s: %w", publicKeyPath, err)
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyData)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to parse public key: %w", err)
	}

	return &TokenService{
		privateKey: privateKey,
		publicKey:  publicKey,
		issuer:     issuer,
	}, nil
}

// Issue creates a new signed session token for an account.
//
// # Parameters
//   - subjectID: The account's surrogate ID.
//   - displayName: The human display claim carried alongside the subject.
//   - timeToLive: The duration before the token expires.
func (service *TokenService) Issue(subjectID, displayName string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		SubjectID:   subjectID,
		DisplayName: displayName,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signedToken, err := token.SignedString(service.privateKey)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and expiry of a session token string.
//
// On failure it returns exactly one of [ErrTokenMalformed],
// [ErrTokenSignatureInvalid], or [ErrTokenExpired] in the error chain.
func (service *TokenService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.publicKey, nil
	})

	if err != nil {
		return nil, classifyTokenError(err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: unexpected claims type", ErrTokenMalformed)
	}

	return claims, nil
}

// classifyTokenError maps golang-jwt parse failures onto the package's
// typed verification errors, preserving the original cause in the chain.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %w", ErrTokenSignatureInvalid, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
}
