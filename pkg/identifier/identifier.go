// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package identifier canonicalizes user-chosen login handles.
//
// # Why normalize?
//
// Identifiers are globally unique, but Unicode gives the same visible handle
// many byte representations (full-width letters, compatibility forms, case
// variants). Uniqueness is only meaningful over a canonical form, so every
// identifier is normalized once at the service boundary before any
// existence check, insert, or lookup.
package identifier

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// validPattern is the accepted canonical shape: starts with a letter or
// digit, then letters, digits, dots, underscores, or hyphens; 3–30 runes.
var validPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]{2,29}$`)

// Normalize converts a raw user-supplied handle into its canonical form.
//
// # Transformation Pipeline
//
// 1. Trims surrounding whitespace.
// 2. Applies Unicode NFKC normalization (folds compatibility variants:
// full-width "ｊｄｏｅ" → "jdoe").
// 3. Lowercases.
func Normalize(raw string) string {
	canonical := strings.TrimSpace(raw)
	canonical = norm.NFKC.String(canonical)
	return strings.ToLower(canonical)
}

// IsValid reports whether an already-normalized identifier has the accepted
// canonical shape.
func IsValid(canonical string) bool {
	return validPattern.MatchString(canonical)
}
