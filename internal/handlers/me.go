package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/avelasco/gymtrack/internal/logger"
	"github.com/avelasco/gymtrack/internal/middlewares"
	"github.com/avelasco/gymtrack/internal/models"
	"github.com/avelasco/gymtrack/internal/services"
)

// ProfileReader defines the interface that the profile service must implement.
type ProfileReader interface {
	Profile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
}

// NewMeHandler returns an HTTP handler serving the caller's public profile.
// @Summary Current user profile
// @Description Returns the public profile of the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} models.UserProfile "Public profile"
// @Failure 401 {object} handlers.MessageResponse "Not authenticated"
// @Failure 404 {object} handlers.MessageResponse "User not found"
// @Router /me [get]
// @Security BearerAuth
func NewMeHandler(svc ProfileReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		principal := middlewares.PrincipalFromContext(r.Context())
		if principal == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MessageResponse{Message: "No autenticado"})
			return
		}

		profile, err := svc.Profile(r.Context(), principal.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MessageResponse{Message: "Usuario no encontrado"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MessageResponse{Message: "Error interno"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}
