// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/worklane/internal/platform/ctxutil"
	"github.com/taibuivan/worklane/internal/platform/middleware"
	"github.com/taibuivan/worklane/internal/platform/sec"
)

type stubVerifier struct {
	accepted string
}

func (verifier *stubVerifier) Verify(tokenStr string) (*sec.SessionClaims, error) {
	if tokenStr == verifier.accepted {
		return &sec.SessionClaims{SubjectID: "account-1"}, nil
	}
	return nil, sec.ErrTokenSignatureInvalid
}

// echoClaims reports whether claims reached the handler context.
func echoClaims(sawClaims *bool) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		*sawClaims = ctxutil.GetSessionUser(request.Context()) != nil
		writer.WriteHeader(http.StatusOK)
	})
}

/*
TestAuthenticate covers the token sources and failure handling of the
session middleware: bearer header, session cookie, anonymous passthrough,
rejection of invalid header tokens, and anonymous degradation for stale
cookies.
*/
func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		cookie         string
		wantStatus     int
		wantClaims     bool
		wantCookieGone bool
	}{
		{"anonymous_passes_through", "", "", http.StatusOK, false, false},
		{"valid_bearer_header", "Bearer good-token", "", http.StatusOK, true, false},
		{"bearer_case_insensitive", "bearer good-token", "", http.StatusOK, true, false},
		{"valid_session_cookie", "", "good-token", http.StatusOK, true, false},
		{"header_wins_over_cookie", "Bearer good-token", "stale-token", http.StatusOK, true, false},
		{"invalid_header_token_rejected", "Bearer bad-token", "", http.StatusUnauthorized, false, false},
		{"stale_cookie_degrades_to_anonymous", "", "bad-token", http.StatusOK, false, true},
		{"malformed_header_rejected", "good-token", "", http.StatusUnauthorized, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sawClaims := false
			handler := middleware.Authenticate(&stubVerifier{accepted: "good-token"})(echoClaims(&sawClaims))

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				request.AddCookie(&http.Cookie{Name: "auth_token", Value: tt.cookie})
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantClaims, sawClaims)

			// A rejected cookie must be expired so the client drops it.
			clearedCookie := false
			for _, cookie := range recorder.Result().Cookies() {
				if cookie.Name == "auth_token" && cookie.Value == "" && cookie.MaxAge < 0 {
					clearedCookie = true
				}
			}
			assert.Equal(t, tt.wantCookieGone, clearedCookie)
		})
	}
}

/*
TestRequireAuth verifies that the guard blocks anonymous requests and
admits authenticated ones.
*/
func TestRequireAuth(t *testing.T) {
	sawClaims := false
	guarded := middleware.RequireAuth(echoClaims(&sawClaims))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	guarded.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	claims := &sec.SessionClaims{SubjectID: "account-1"}
	request = httptest.NewRequest(http.MethodGet, "/", nil)
	request = request.WithContext(ctxutil.WithSessionUser(request.Context(), claims))
	recorder = httptest.NewRecorder()
	guarded.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, sawClaims)
}
