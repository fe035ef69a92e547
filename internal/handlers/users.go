package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avelasco/gymtrack/internal/logger"
	"github.com/avelasco/gymtrack/internal/middlewares"
	"github.com/avelasco/gymtrack/internal/models"
)

// UserProfileLister defines the interface that the user service must implement.
type UserProfileLister interface {
	List(ctx context.Context) ([]models.UserProfile, error)
}

// NewListUsersHandler returns an HTTP handler listing all registered users.
// Admin only.
// @Summary List users
// @Description Returns the public profiles of all registered users
// @Tags users
// @Produce json
// @Success 200 {array} models.UserProfile "Users"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ErrorResponse "Not an admin"
// @Router /users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserProfileLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		principal := middlewares.PrincipalFromContext(r.Context())
		if principal == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "No autenticado"})
			return
		}
		if !principal.IsAdmin {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Solo administradores"})
			return
		}

		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Error interno"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(users)
	}
}
