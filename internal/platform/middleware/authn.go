// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"strings"

	"github.com/taibuivan/worklane/internal/platform/apperr"
	"github.com/taibuivan/worklane/internal/platform/constants"
	"github.com/taibuivan/worklane/internal/platform/ctxutil"
	"github.com/taibuivan/worklane/internal/platform/respond"
	"github.com/taibuivan/worklane/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify session tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the sec package's
// concrete TokenService, allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	Verify(tokenStr string) (*sec.SessionClaims, error)
}

// Authenticate extracts and verifies the session token from the request.
//
// # Flow
//  1. Look for 'Authorization: Bearer <token>', then the auth_token cookie.
//  2. If neither is present, the request proceeds as anonymous.
//  3. If present, verify the token via [TokenVerifier].
//  4. Inject [*sec.SessionClaims] into the request context for downstream use.
//
// # Failure Handling
//
// The two token sources fail differently. A malformed or invalid
// Authorization header is an explicit client claim and is rejected with
// 401. The auth_token cookie, however, is attached by the browser to every
// request for up to 24 hours, including the login request itself: a stale
// cookie (expired, or signed with a rotated key) must not block re-login.
// A cookie that fails verification is therefore expired and the request
// proceeds as anonymous; protected routes still 401 via [RequireAuth].
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			tokenStr, fromHeader, err := extractToken(request)
			if err != nil {
				respond.Error(writer, request, err)
				return
			}

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if tokenStr == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Token Verification ─────────────────────────────────────────
			claims, err := verifier.Verify(tokenStr)
			if err != nil {
				if fromHeader {
					respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
					return
				}

				// Stale session cookie: clear it and continue anonymous so the
				// client can reach the login endpoint and mint a fresh one.
				http.SetCookie(writer, expiredSessionCookie())
				next.ServeHTTP(writer, request)
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithSessionUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetSessionUser(request.Context())
		if claims == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// extractToken resolves the bearer credential from the Authorization header
// or, failing that, from the session cookie the login endpoint sets.
// fromHeader reports which source supplied the token.
func extractToken(request *http.Request) (token string, fromHeader bool, err error) {
	authHeader := request.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return "", true, apperr.Unauthorized("Invalid authorization format")
		}
		return parts[1], true, nil
	}

	cookie, cookieErr := request.Cookie(constants.SessionCookieName)
	if cookieErr != nil || cookie.Value == "" {
		return "", false, nil
	}
	return cookie.Value, false, nil
}

// expiredSessionCookie returns an auth_token cookie with Max-Age=0 so the
// client drops its stale copy. Attributes must match the login cookie for
// browsers to treat it as the same cookie.
func expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     constants.SessionCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}
