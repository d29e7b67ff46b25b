package middleware

import (
	"context"
	"net/http"
	"strings"

	"voltedge/internal/models"
	"voltedge/internal/service"
)

type contextKey string

const currentUserKey contextKey = "currentUser"

// TokenValidator is the token contract needed by the middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (*service.Claims, error)
}

// UserResolver resolves the token subject to a live user record.
type UserResolver interface {
	UserByEmail(email string) (*models.User, error)
}

// Auth validates a bearer token and attaches the resolved user to the
// request context. Missing, malformed, expired tokens and vanished users
// all produce the same 401.
func Auth(tokens TokenValidator, users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w)
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				unauthorized(w)
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimSpace(parts[1]))
			if err != nil {
				unauthorized(w)
				return
			}

			user, err := users.UserByEmail(claims.Email())
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), currentUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects non-admin users. It must run after Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			unauthorized(w)
			return
		}
		if !user.IsAdmin() {
			http.Error(w, "admin privileges required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFromContext retrieves the authenticated user from request context.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(currentUserKey).(*models.User)
	return user, ok
}

// Chain applies middlewares right to left around the handler.
func Chain(handler http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	http.Error(w, "invalid or expired token", http.StatusUnauthorized)
}
