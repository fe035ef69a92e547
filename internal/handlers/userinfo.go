package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avelasco/gymtrack/internal/logger"
	"github.com/avelasco/gymtrack/internal/middlewares"
	"github.com/avelasco/gymtrack/internal/models"
	"github.com/avelasco/gymtrack/internal/services"
)

// ProfileByEmailReader defines the interface that the profile service must implement.
type ProfileByEmailReader interface {
	ProfileByEmail(ctx context.Context, email string) (*models.UserProfile, error)
}

// ErrorResponse represents an error response carrying an error string
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewUserInfoHandler returns an HTTP handler serving a user's public profile.
// The caller's own profile is returned; admins may query another user with
// the email parameter.
// @Summary User profile lookup
// @Description Returns a public profile. The email query parameter is honored for admins only.
// @Tags users
// @Produce json
// @Param email query string false "Target email (admin only)"
// @Success 200 {object} models.UserProfile "Public profile"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /userinfo [get]
// @Security BearerAuth
func NewUserInfoHandler(svc ProfileByEmailReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		principal := middlewares.PrincipalFromContext(r.Context())
		if principal == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "No autenticado"})
			return
		}

		email := principal.Email
		if q := r.URL.Query().Get("email"); q != "" && principal.IsAdmin {
			email = q
		}

		profile, err := svc.ProfileByEmail(r.Context(), email)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Usuario no encontrado"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Error interno"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}
