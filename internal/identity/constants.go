// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

import "time"

// # Identity Constraints

const (
	// SessionTokenTTL is the fixed lifetime of a session token, measured
	// from issuance. The cookie Max-Age mirrors this value in seconds.
	SessionTokenTTL = 24 * time.Hour

	// MinSecretLength is the minimum accepted plaintext secret length.
	MinSecretLength = 8

	// BackendTimeout bounds every store round-trip made by the service.
	// A deadline hit surfaces to callers as UNAVAILABLE rather than
	// hanging the request.
	BackendTimeout = 5 * time.Second
)
