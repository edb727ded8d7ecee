// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/worklane/internal/platform/constants"
	"github.com/taibuivan/worklane/internal/platform/ctxutil"
	"github.com/taibuivan/worklane/internal/platform/middleware"
	requestutil "github.com/taibuivan/worklane/internal/platform/request"
	"github.com/taibuivan/worklane/internal/platform/respond"
	"github.com/taibuivan/worklane/internal/platform/validate"
)

// Handler implements identity-related HTTP endpoints.
//
// # Scope
//
// This handler manages the staff lifecycle entry points: enrollment,
// identifier availability checks, session establishment, and activation
// management. It contains no business logic; every decision is delegated
// to the [Service].
type Handler struct {
	identityService *Service

	// secureCookies marks the session cookie Secure. Enabled in production,
	// left off in development so plain-HTTP local testing keeps working.
	secureCookies bool
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service, secureCookies bool) *Handler {
	return &Handler{
		identityService: service,
		secureCookies:   secureCookies,
	}
}

// Routes returns a [chi.Router] configured with identity-specific routes.
//
// # Endpoints
//   - POST  /                            : Enrolls a new staff account.
//   - GET   /{identifier}/availability   : Reports whether an identifier is free.
//   - POST  /session                     : Authenticates and sets the session cookie.
//   - PATCH /{identifier}/activation     : Toggles the activation flag (authenticated).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.signup)
	router.Get("/{identifier}/availability", handler.checkAvailability)
	router.Post("/session", handler.login)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Patch("/{identifier}/activation", handler.setActivation)
	})

	return router
}

// signupRequest represents the JSON payload expected for staff enrollment.
type signupRequest struct {
	Identifier  string `json:"identifier"`
	Secret      string `json:"secret"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	BirthDate   string `json:"birth_date"`
	Gender      string `json:"gender"`
	Position    string `json:"position"`
	Job         string `json:"job"`
	Department  string `json:"department"`
	WorkType    string `json:"work_type"`
	StartDate   string `json:"start_date"`
}

// signup handles POST /api/v1/identities requests.
//
// # Parameters
//   - writer: The HTTP response constructor.
//   - request: The incoming HTTP request payload.
//
// # Returns
//   - Writes HTTP 200 OK on success with the created account.
//   - Writes HTTP 400 Bad Request if validation fails or the identifier is taken.
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input signupRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	validator := &validate.Validator{}
	validator.
		Required(FieldIdentifier, input.Identifier).
		MaxLen(FieldIdentifier, input.Identifier, 30).
		Required(FieldSecret, input.Secret).
		MinLen(FieldSecret, input.Secret, MinSecretLength).
		Required(FieldDisplayName, input.DisplayName).
		MaxLen(FieldDisplayName, input.DisplayName, 100).
		Date(FieldBirthDate, input.BirthDate).
		Date(FieldStartDate, input.StartDate).
		OneOf(FieldGender, input.Gender, "MALE", "FEMALE")
	if input.Email != "" {
		validator.Email(FieldEmail, input.Email)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	// Service handles uniqueness checks and credential hashing; the store's
	// unique constraint backs the duplicate error under concurrency.
	account, err := handler.identityService.Signup(request.Context(), SignupInput{
		Identifier:  input.Identifier,
		Secret:      input.Secret,
		DisplayName: input.DisplayName,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		BirthDate:   parseDate(input.BirthDate),
		Gender:      input.Gender,
		Position:    input.Position,
		Job:         input.Job,
		Department:  input.Department,
		WorkType:    input.WorkType,
		StartDate:   parseDate(input.StartDate),
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.OK(writer, respond.Fields{
		constants.FieldData: account,
	})
}

// checkAvailability handles GET /api/v1/identities/{identifier}/availability.
//
// # Parameters
//   - writer: The HTTP response constructor.
//   - request: The incoming HTTP request payload.
//
// # Returns
//   - Writes HTTP 200 OK with {"success": true, "available": bool}.
//
// The answer is the same for active and inactive accounts so this public
// endpoint cannot be used to discover activation state.
func (handler *Handler) checkAvailability(writer http.ResponseWriter, request *http.Request) {
	rawIdentifier := requestutil.Param(request, FieldIdentifier)

	available, err := handler.identityService.CheckIdentifierAvailable(request.Context(), rawIdentifier)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.Fields{
		constants.FieldAvailable: available,
	})
}

// loginRequest represents the JSON payload expected for authentication.
type loginRequest struct {
	Identifier string `json:"identifier"`
	Secret     string `json:"secret"`
}

// login handles POST /api/v1/identities/session requests.
//
// # Parameters
//   - writer: The HTTP response constructor.
//   - request: The incoming HTTP request payload.
//
// # Returns
//   - Writes HTTP 200 OK on success with the account profile and the
//     auth_token session cookie.
//   - Writes HTTP 401 Unauthorized for bad credentials.
//   - Writes HTTP 400 Bad Request for a deactivated account.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	if input.Identifier == "" || input.Secret == "" {
		respond.Error(writer, request, validate.RequiredError("identifier/secret", "are required"))
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	session, err := handler.identityService.Login(request.Context(), input.Identifier, input.Secret)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	// The token travels only in the cookie. The body carries the profile so
	// the frontend can render the signed-in state without a second request.
	http.SetCookie(writer, handler.sessionCookie(session.Token))

	respond.OK(writer, respond.Fields{
		constants.FieldUser: session.Account,
	})
}

// activationRequest represents the JSON payload for toggling activation.
type activationRequest struct {
	Active *bool `json:"active"`
}

// setActivation handles PATCH /api/v1/identities/{identifier}/activation.
//
// # Parameters
//   - writer: The HTTP response constructor.
//   - request: The incoming HTTP request payload (requires a valid session).
//
// # Returns
//   - Writes HTTP 200 OK on success.
//   - Writes HTTP 401 Unauthorized without a valid session.
//   - Writes HTTP 404 Not Found for an unknown identifier.
func (handler *Handler) setActivation(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Session Verification ───────────────────────────────────────────

	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Payload Extraction ─────────────────────────────────────────────

	var input activationRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input.Active == nil {
		respond.Error(writer, request, validate.RequiredError(FieldActive, "is required"))
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	rawIdentifier := requestutil.Param(request, FieldIdentifier)
	if err := handler.identityService.SetActive(request.Context(), rawIdentifier, *input.Active); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Activation changes are audited with the acting account.
	ctxutil.GetLogger(request.Context()).Info("account_activation_changed",
		slog.String("actor_account_id", claims.SubjectID),
		slog.String("identifier", rawIdentifier),
		slog.Bool("active", *input.Active),
	)

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.OK(writer, respond.Fields{
		FieldActive: *input.Active,
	})
}

// sessionCookie builds the auth_token cookie for an issued session token.
//
// # Contract
//
// HttpOnly and SameSite=Strict are fixed: the token must never be readable
// from frontend scripts, and cross-site requests must not carry it. Max-Age
// mirrors the 24h token lifetime so browser and token expire together.
func (handler *Handler) sessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     constants.SessionCookiePath,
		MaxAge:   constants.SessionCookieMaxAge,
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteStrictMode,
	}
}

// parseDate converts a validated YYYY-MM-DD string to a time pointer.
// Empty or unparseable input maps to nil.
func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &parsed
}
