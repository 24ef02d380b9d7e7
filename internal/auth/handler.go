package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/devconnector/auth-api/internal/httputil"
	"github.com/devconnector/auth-api/internal/logging"
)

// Handler contains HTTP handlers for the user auth endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// IdentityResponse is the explicit allow-list of user fields exposed on the
// wire. Register returns it in full; Current returns the id/name subset.
type IdentityResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatarUrl"`
}

// LoginResponse carries the bearer token envelope the frontend stores.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// CurrentResponse is the private current-user payload.
type CurrentResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Register handles POST /api/users/register.
// Validation failures and duplicate emails return 400 with a field-keyed
// error map; success returns the created identity.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid registration request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	if errs, ok := ValidateRegister(req); !ok {
		logger.Warn("registration failed: validation error")
		httputil.RespondFieldErrors(w, errs, http.StatusBadRequest)
		return
	}

	logger = logger.WithFields(map[string]any{"email": req.Email})

	newUser, err := h.service.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			logger.Warn("registration failed: email already exists")
			httputil.RespondFieldErrors(w, httputil.FieldErrors{"email": "Email already exists"}, http.StatusBadRequest)
			return
		}
		logger.Error("registration failed: internal error", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to register user", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("user registered successfully", "user_id", newUser.ID)

	httputil.RespondJSON(w, IdentityResponse{
		ID:        newUser.ID,
		Name:      newUser.Name,
		Email:     newUser.Email,
		AvatarURL: newUser.AvatarURL,
	}, http.StatusCreated)
}

// Login handles POST /api/users/login.
// Unknown email and wrong password both answer 404 with their field error;
// that is the contract existing clients key on, not REST semantics.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req LoginInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid login request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	if errs, ok := ValidateLogin(req); !ok {
		logger.Warn("login failed: validation error")
		httputil.RespondFieldErrors(w, errs, http.StatusBadRequest)
		return
	}

	logger = logger.WithFields(map[string]any{"email": req.Email})

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			logger.Warn("login failed: user not found")
			httputil.RespondFieldErrors(w, httputil.FieldErrors{"email": "User not found"}, http.StatusNotFound)
			return
		}
		if errors.Is(err, ErrPasswordIncorrect) {
			logger.Warn("login failed: password incorrect")
			httputil.RespondFieldErrors(w, httputil.FieldErrors{"password": "Password incorrect"}, http.StatusNotFound)
			return
		}
		logger.Error("login failed: internal error", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to login", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("user logged in successfully")

	httputil.RespondJSON(w, LoginResponse{
		Success: true,
		Token:   "Bearer " + token,
	}, http.StatusOK)
}

// Current handles GET /api/users/current (private). The auth gate has
// already resolved the identity into the request context.
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	currentUser, ok := GetCurrentUserFromContext(r.Context())
	if !ok {
		// Only reachable if the route was wired without RequireAuth
		logger.Error("current user missing from context")
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	httputil.RespondJSON(w, CurrentResponse{
		ID:   currentUser.ID,
		Name: currentUser.Name,
	}, http.StatusOK)
}

// Test handles GET /api/users/test, a public liveness probe for the route group.
func (h *Handler) Test(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, map[string]string{"msg": "Users Works"}, http.StatusOK)
}
