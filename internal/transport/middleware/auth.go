package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/gearguard-backend/pkg/ctxutil"
)

const (
	bearerChallenge       = `Bearer realm="gearguard"`
	invalidTokenChallenge = `Bearer realm="gearguard", error="invalid_token"`
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Auth puts the user behind a bearer token on the request context.
// Requests without a bearer token stay anonymous and RequireAuth decides
// whether that is acceptable. A token that fails verification is rejected
// here, on every route.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := validator.ValidateToken(r.Context(), token)
			switch {
			case err == nil:
				next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), userID)))
			case errors.Is(err, context.Canceled):
				// Client went away mid-request; nobody is left to answer.
			default:
				unauthorized(w, invalidTokenChallenge)
			}
		})
	}
}

// RequireAuth rejects requests that carry no authenticated user.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			unauthorized(w, bearerChallenge)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter, challenge string) {
	w.Header().Set("WWW-Authenticate", challenge)
	writeError(w, http.StatusUnauthorized, "Unauthorized")
}

// extractBearerToken returns the credential of an "Authorization: Bearer"
// header. The scheme is case-insensitive.
func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
