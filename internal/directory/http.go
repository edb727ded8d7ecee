// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/worklane/internal/platform/constants"
	"github.com/taibuivan/worklane/internal/platform/middleware"
	requestutil "github.com/taibuivan/worklane/internal/platform/request"
	"github.com/taibuivan/worklane/internal/platform/respond"
	"github.com/taibuivan/worklane/internal/platform/validate"
	"github.com/taibuivan/worklane/pkg/pagination"
)

// Handler implements the directory HTTP endpoints.
type Handler struct {
	directoryService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{directoryService: service}
}

// Routes returns a [chi.Router] configured with directory-specific routes.
//
// # Endpoints
//   - GET  /      : Lists directory entries (paginated, authenticated).
//   - GET  /{id}  : Returns a single entry (authenticated).
//   - POST /      : Adds a directory entry (authenticated).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// The whole directory is internal data: every route needs a session.
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Post("/", handler.create)

	return router
}

// list handles GET /api/v1/employees requests.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	employees, meta, err := handler.directoryService.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.Fields{
		FieldEmployees:  employees,
		FieldPagination: meta,
	})
}

// get handles GET /api/v1/employees/{id} requests.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	employee, err := handler.directoryService.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.Fields{
		constants.FieldData: employee,
	})
}

// createRequest represents the JSON payload for a new directory entry.
type createRequest struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Email      string `json:"email"`
}

// create handles POST /api/v1/employees requests.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, 100).
		MaxLen(FieldDepartment, input.Department, 100)
	if input.Email != "" {
		validator.Email(FieldEmail, input.Email)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	employee, err := handler.directoryService.Create(request.Context(), CreateInput{
		Name:       input.Name,
		Department: input.Department,
		Email:      input.Email,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, respond.Fields{
		constants.FieldData: employee,
	})
}
