// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/worklane/internal/platform/sec"
)

/*
TestHashSecret_NonInvertible verifies the hash never equals the plaintext
and round-trips through VerifySecret.
*/
func TestHashSecret_NonInvertible(t *testing.T) {
	secrets := []string{"Pw123!", "correct horse battery staple", "비밀번호123"}

	for _, secret := range secrets {
		hash, err := sec.HashSecret(secret)
		require.NoError(t, err)

		assert.NotEqual(t, secret, hash)
		assert.True(t, sec.VerifySecret(secret, hash))
	}
}

/*
TestHashSecret_SaltedPerCall verifies that two hashes of the same secret
differ (per-call random salt) while both still verify.
*/
func TestHashSecret_SaltedPerCall(t *testing.T) {
	const secret = "Pw123!"

	first, err := sec.HashSecret(secret)
	require.NoError(t, err)

	second, err := sec.HashSecret(secret)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, sec.VerifySecret(secret, first))
	assert.True(t, sec.VerifySecret(secret, second))
}

/*
TestHashSecret_InputPolicy checks the rejection rules for empty and
overlong plaintext.
*/
func TestHashSecret_InputPolicy(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		wantErr bool
	}{
		{"empty", "", true},
		{"single_byte", "x", false},
		{"exactly_72_bytes", strings.Repeat("a", 72), false},
		{"over_72_bytes", strings.Repeat("a", 73), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sec.HashSecret(tt.secret)

			if tt.wantErr {
				assert.ErrorIs(t, err, sec.ErrInvalidSecret)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

/*
TestVerifySecret_WrongSecret verifies a mismatching plaintext is rejected.
*/
func TestVerifySecret_WrongSecret(t *testing.T) {
	hash, err := sec.HashSecret("correct")
	require.NoError(t, err)

	assert.False(t, sec.VerifySecret("wrong", hash))
	assert.False(t, sec.VerifySecret("", hash))
	assert.False(t, sec.VerifySecret("correct ", hash))
}
