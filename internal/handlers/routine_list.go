package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/avelasco/gymtrack/internal/logger"
	"github.com/avelasco/gymtrack/internal/middlewares"
	"github.com/avelasco/gymtrack/internal/models"
)

// RoutineLister defines the interface that the routine service must implement.
type RoutineLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.RoutineDB, error)
}

// NewListRoutinesHandler returns an HTTP handler listing the caller's
// routines with their full exercise/set trees.
// @Summary List routines
// @Tags routines
// @Produce json
// @Success 200 {array} models.RoutineDB "Routines"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /routine [get]
// @Security BearerAuth
func NewListRoutinesHandler(svc RoutineLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		principal := middlewares.PrincipalFromContext(r.Context())
		if principal == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "No autenticado"})
			return
		}

		routines, err := svc.List(r.Context(), principal.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Error interno"})
			return
		}
		if routines == nil {
			routines = []models.RoutineDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(routines)
	}
}
