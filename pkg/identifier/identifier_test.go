// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/worklane/pkg/identifier"
)

/*
TestNormalize verifies canonicalization of raw handles.
*/
func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"already_canonical", "jdoe", "jdoe"},
		{"uppercase", "JDoe", "jdoe"},
		{"surrounding_whitespace", "  jdoe \t", "jdoe"},
		{"fullwidth_compatibility", "ｊｄｏｅ", "jdoe"},
		{"mixed", " ＪDoe.01 ", "jdoe.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, identifier.Normalize(tt.raw))
		})
	}
}

/*
TestIsValid verifies the accepted canonical shape.
*/
func TestIsValid(t *testing.T) {
	tests := []struct {
		name      string
		canonical string
		valid     bool
	}{
		{"simple", "jdoe", true},
		{"with_separators", "j.doe_01-x", true},
		{"min_length", "abc", true},
		{"too_short", "ab", false},
		{"too_long", "abcdefghijklmnopqrstuvwxyz01234", false},
		{"leading_separator", ".jdoe", false},
		{"uppercase_not_canonical", "JDoe", false},
		{"space_inside", "j doe", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, identifier.IsValid(tt.canonical))
		})
	}
}
