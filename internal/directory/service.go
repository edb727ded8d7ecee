// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taibuivan/worklane/internal/platform/apperr"
	"github.com/taibuivan/worklane/internal/platform/dberr"
	"github.com/taibuivan/worklane/pkg/pagination"
)

// PageCache defines the read-path cache the service consults before the
// store. [RedisEmployeeCache] is the production implementation.
type PageCache interface {
	GetPage(context context.Context, params pagination.Params) ([]Employee, int, bool, error)
	SetPage(context context.Context, params pagination.Params, employees []Employee, total int) error
	Invalidate(context context.Context) error
}

// Service implements the directory use cases: paged listing and roster
// maintenance.
type Service struct {
	employeeStore EmployeeStore
	pageCache     PageCache
	logger        *slog.Logger
}

// NewService constructs a new directory [Service].
//
// The cache may be nil; the service then reads straight from the store.
func NewService(store EmployeeStore, cache PageCache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		employeeStore: store,
		pageCache:     cache,
		logger:        logger,
	}
}

/*
List returns one page of the directory plus pagination metadata.

Description: Cache-aside read. Cache failures only cost the round-trip to
Postgres; they are logged and never surfaced to the caller.

Parameters:
  - context: context.Context
  - params: pagination.Params

Returns:
  - []Employee: The requested page
  - pagination.Meta: Page metadata for the response envelope
  - error: Unavailable or storage errors
*/
func (service *Service) List(context context.Context, params pagination.Params) ([]Employee, pagination.Meta, error) {
	if service.pageCache != nil {
		employees, total, found, err := service.pageCache.GetPage(context, params)
		if err != nil {
			service.logger.WarnContext(context, "directory_cache_read_failed", slog.String("error", err.Error()))
		}
		if found {
			return employees, pagination.NewMeta(params.Page, params.Limit, total), nil
		}
	}

	employees, total, err := service.employeeStore.List(context, params)
	if err != nil {
		return nil, pagination.Meta{}, service.classify(err, "directory_service_list_failed")
	}

	if service.pageCache != nil {
		if err := service.pageCache.SetPage(context, params, employees, total); err != nil {
			service.logger.WarnContext(context, "directory_cache_write_failed", slog.String("error", err.Error()))
		}
	}

	return employees, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// CreateInput holds the data for a new directory entry.
type CreateInput struct {
	Name       string
	Department string
	Email      string
}

/*
Create adds a new directory entry and invalidates the listing cache.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Employee: The created entry
  - error: ValidationError, Unavailable, or storage errors
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Employee, error) {
	if input.Name == "" {
		return nil, apperr.ValidationError("Name is required")
	}

	employee := &Employee{
		ID:         newEmployeeID(),
		Name:       input.Name,
		Department: input.Department,
		Email:      input.Email,
	}

	if err := service.employeeStore.Create(context, employee); err != nil {
		return nil, service.classify(err, "directory_service_create_failed")
	}

	// Invalidation after commit: a reader may still see the old page for
	// one round-trip, never a phantom entry for a failed insert.
	if service.pageCache != nil {
		if err := service.pageCache.Invalidate(context); err != nil {
			service.logger.WarnContext(context, "directory_cache_invalidate_failed", slog.String("error", err.Error()))
		}
	}

	return employee, nil
}

/*
Get returns a single directory entry.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Employee: The entry
  - error: NotFound, Unavailable, or storage errors
*/
func (service *Service) Get(context context.Context, id string) (*Employee, error) {
	employee, err := service.employeeStore.FindByID(context, id)
	if err != nil {
		return nil, service.classify(err, "directory_service_get_failed")
	}
	return employee, nil
}

// classify mirrors the identity service's backend-error handling.
func (service *Service) classify(err error, action string) error {
	if apperr.IsAppError(err) {
		return err
	}
	if dberr.IsUnavailable(err) {
		return apperr.Unavailable(err)
	}
	return fmt.Errorf("%s: %w", action, err)
}

// newEmployeeID returns a time-sortable UUIDv7 string, falling back to v4.
func newEmployeeID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
