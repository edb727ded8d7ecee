// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, cookie settings, and cross-cutting keys that are
shared between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Security: JWT issuer and session cookie configuration.
  - JSON Fields: Shared payload key names.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "worklane-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in session tokens.
	AuthIssuer = "worklane.internal"

	// SessionCookieName is the cookie that carries the session token.
	// The name is part of the public contract with the frontend.
	SessionCookieName = "auth_token"

	// SessionCookiePath scopes the cookie to the whole service.
	SessionCookiePath = "/"

	// SessionCookieMaxAge matches the 24h token lifetime, in seconds.
	SessionCookieMaxAge = 86400
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldSuccess   = "success"
	FieldData      = "data"
	FieldMessage   = "message"
	FieldCode      = "code"
	FieldDetails   = "details"
	FieldUser      = "user"
	FieldAvailable = "available"
	FieldStatus    = "status"
	FieldChecks    = "checks"
)

// # Database Schemas

const (
	SchemaStaff = "staff"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixEmployeePage = "directory:employees:page:"
)
