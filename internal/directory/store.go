// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"context"

	"github.com/taibuivan/worklane/pkg/pagination"
)

// EmployeeStore defines the persistence contract for directory entries.
type EmployeeStore interface {
	/*
		List retrieves one page of directory entries ordered by name.

		Parameters:
		  - context: context.Context
		  - params: pagination.Params

		Returns:
		  - []Employee: The requested page
		  - int: Total number of entries across all pages
		  - error: Retrieval failures
	*/
	List(context context.Context, params pagination.Params) ([]Employee, int, error)

	/*
		Create inserts a new directory entry with store-assigned timestamps.

		Parameters:
		  - context: context.Context
		  - employee: *Employee

		Returns:
		  - error: Insert failures
	*/
	Create(context context.Context, employee *Employee) error

	/*
		FindByID retrieves a single directory entry.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Employee: The entry
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByID(context context.Context, id string) (*Employee, error)
}
