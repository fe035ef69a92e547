package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/avelasco/gymtrack/internal/logger"
	"github.com/avelasco/gymtrack/internal/middlewares"
	"github.com/avelasco/gymtrack/internal/services"
)

// RoutineUpdater defines the interface that the routine service must implement.
type RoutineUpdater interface {
	Update(ctx context.Context, userID, routineID uuid.UUID, name string, description *string) error
}

// UpdateRoutineRequest represents the JSON body for renaming a routine
// swagger:model UpdateRoutineRequest
type UpdateRoutineRequest struct {
	// Routine id
	// required: true
	ID uuid.UUID `json:"id"`

	// New name
	// required: true
	Name string `json:"name"`

	// New description
	Description *string `json:"description"`
}

// NewUpdateRoutineHandler returns an HTTP handler renaming or redescribing a
// routine. A routine owned by another user responds not-found; existence is
// never leaked.
// @Summary Rename a routine
// @Tags routines
// @Accept json
// @Produce json
// @Param updateRoutineRequest body handlers.UpdateRoutineRequest true "Routine rename"
// @Success 200 {object} handlers.SuccessResponse "Updated"
// @Failure 400 {object} handlers.ErrorResponse "Missing id or name"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Not owned or absent"
// @Router /routine [put]
// @Security BearerAuth
func NewUpdateRoutineHandler(svc RoutineUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		principal := middlewares.PrincipalFromContext(r.Context())
		if principal == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "No autenticado"})
			return
		}

		var req UpdateRoutineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == uuid.Nil || req.Name == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Faltan datos"})
			return
		}

		if err := svc.Update(r.Context(), principal.UserID, req.ID, req.Name, req.Description); err != nil {
			switch {
			case errors.Is(err, services.ErrRoutineDataMissing):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Faltan datos"})
			case errors.Is(err, services.ErrRoutineNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Rutina no encontrada"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Error interno"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SuccessResponse{Success: true})
	}
}
