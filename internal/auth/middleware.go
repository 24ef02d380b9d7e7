package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/devconnector/auth-api/internal/httputil"
	"github.com/devconnector/auth-api/internal/logging"
	"github.com/devconnector/auth-api/internal/user"
)

// ContextKey is a type for context keys to avoid collisions
type ContextKey string

const (
	UserIDContextKey      ContextKey = "user_id"
	CurrentUserContextKey ContextKey = "current_user"
)

// Middleware gates private routes. A request is either rejected with 401
// before the downstream handler runs, or reaches it with the resolved
// identity attached to the context. No per-request state survives the
// request.
type Middleware struct {
	tokenService TokenService
	store        user.Store
}

func NewMiddleware(tokenService TokenService, store user.Store) *Middleware {
	return &Middleware{tokenService: tokenService, store: store}
}

// RequireAuth validates the bearer token and resolves the identity it names.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := logging.GetLoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			httputil.RespondErrorWithCode(w, "invalid authorization header format", httputil.CodeInvalidAuthHeader, http.StatusUnauthorized)
			return
		}

		claims, err := m.tokenService.VerifyToken(parts[1])
		if err != nil {
			if errors.Is(err, ErrExpiredToken) {
				logger.Warn("rejected expired token")
				httputil.RespondErrorWithCode(w, "token has expired", httputil.CodeTokenExpired, http.StatusUnauthorized)
				return
			}
			logger.Warn("rejected invalid token")
			httputil.RespondErrorWithCode(w, "invalid token", httputil.CodeInvalidToken, http.StatusUnauthorized)
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			httputil.RespondErrorWithCode(w, "invalid token", httputil.CodeInvalidToken, http.StatusUnauthorized)
			return
		}

		// Resolve against the store rather than trusting the claims; a
		// token for a deleted user is as unauthenticated as a forged one.
		currentUser, err := m.store.GetByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				logger.Warn("rejected token for unknown user", "user_id", userID)
				httputil.RespondErrorWithCode(w, "invalid token", httputil.CodeInvalidToken, http.StatusUnauthorized)
				return
			}
			logger.Error("failed to resolve user", "error", err.Error())
			httputil.RespondErrorWithCode(w, "internal server error", httputil.CodeInternalError, http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDContextKey, userID)
		ctx = context.WithValue(ctx, CurrentUserContextKey, currentUser)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext extracts the user ID from the request context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(uuid.UUID)
	return userID, ok
}

// GetCurrentUserFromContext extracts the resolved user from the request context
func GetCurrentUserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(CurrentUserContextKey).(*user.User)
	return u, ok
}
