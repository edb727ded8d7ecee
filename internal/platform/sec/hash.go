// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Input policy for the credential hasher. bcrypt silently operates on at
// most 72 bytes, so anything longer would verify against a truncated
// secret; we reject it instead.
const maxSecretBytes = 72

// ErrInvalidSecret is returned by [HashSecret] for an empty or overlong plaintext.
var ErrInvalidSecret = errors.New("sec: secret must be between 1 and 72 bytes")

// HashSecret hashes a plain-text secret using the bcrypt algorithm.
//
// Each call incorporates a fresh random salt, so hashing the same secret
// twice yields different outputs. Verification must therefore always go
// through [VerifySecret], never a string comparison.
func HashSecret(plainTextSecret string) (string, error) {
	if len(plainTextSecret) == 0 || len(plainTextSecret) > maxSecretBytes {
		return "", ErrInvalidSecret
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextSecret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash secret: %w", err)
	}
	return string(hashedBytes), nil
}

// VerifySecret compares a plain-text secret with its hashed version.
//
// The underlying digest comparison is constant-time, so the answer does not
// leak where a mismatch occurs.
func VerifySecret(plainTextSecret, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextSecret))
	return err == nil
}
