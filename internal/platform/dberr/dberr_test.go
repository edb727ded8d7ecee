// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/worklane/internal/platform/apperr"
	"github.com/taibuivan/worklane/internal/platform/dberr"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{
			name:       "no_rows_becomes_not_found",
			err:        pgx.ErrNoRows,
			wantCode:   "NOT_FOUND",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unique_violation_becomes_duplicate",
			err:        &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			wantCode:   "DUPLICATE_IDENTIFIER",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "deadline_becomes_unavailable",
			err:        context.DeadlineExceeded,
			wantCode:   "UNAVAILABLE",
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "cancellation_becomes_unavailable",
			err:        context.Canceled,
			wantCode:   "UNAVAILABLE",
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "unknown_becomes_internal",
			err:        errors.New("column does not exist"),
			wantCode:   "INTERNAL_ERROR",
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			classified := dberr.Classify(testCase.err, "Account")

			appError := apperr.As(classified)
			require.NotNil(t, appError, "every database failure must surface as an application error")
			assert.Equal(t, testCase.wantCode, appError.Code)
			assert.Equal(t, testCase.wantStatus, appError.HTTPStatus)
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	assert.NoError(t, dberr.Classify(nil, "Account"))
}

func TestClassify_NotFoundMessageNamesResource(t *testing.T) {
	appError := apperr.As(dberr.Classify(pgx.ErrNoRows, "Employee"))

	require.NotNil(t, appError)
	assert.Equal(t, "Employee not found", appError.Message)
}

func TestClassify_InternalKeepsCause(t *testing.T) {
	cause := errors.New("relation does not exist")

	appError := apperr.As(dberr.Classify(cause, "Account"))

	require.NotNil(t, appError)
	assert.ErrorIs(t, appError, cause)
}
