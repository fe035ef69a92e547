package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avelasco/gymtrack/internal/jwt"
	"github.com/avelasco/gymtrack/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type contextKey struct{}

var principalKey = contextKey{}

// AuthMiddleware verifies the credential cookie and injects the principal
// into the request context. Missing or invalid credentials end the request
// with 401 before any handler runs.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "No autenticado"})
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Token inválido"})
				return
			}

			ctx = context.WithValue(ctx, principalKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ContextWithPrincipal returns a context carrying the given principal, as the
// middleware would have produced it.
func ContextWithPrincipal(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, principalKey, claims)
}

// PrincipalFromContext returns the verified principal, or nil outside the
// auth middleware.
func PrincipalFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(principalKey).(*jwt.Claims)
	return claims
}
