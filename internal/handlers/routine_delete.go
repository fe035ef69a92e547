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

// RoutineDeleter defines the interface that the routine service must implement.
type RoutineDeleter interface {
	Delete(ctx context.Context, userID, routineID uuid.UUID) error
}

// DeleteRoutineRequest represents the JSON body for routine deletion
// swagger:model DeleteRoutineRequest
type DeleteRoutineRequest struct {
	// Routine id
	// required: true
	ID uuid.UUID `json:"id"`
}

// SuccessResponse represents a bare success response
// swagger:model SuccessResponse
type SuccessResponse struct {
	// default: true
	Success bool `json:"success"`
}

// NewDeleteRoutineHandler returns an HTTP handler deleting a routine and its
// nested exercises and sets. A routine owned by another user responds
// not-found.
// @Summary Delete a routine
// @Tags routines
// @Accept json
// @Produce json
// @Param deleteRoutineRequest body handlers.DeleteRoutineRequest true "Routine id"
// @Success 200 {object} handlers.SuccessResponse "Deleted"
// @Failure 400 {object} handlers.ErrorResponse "Missing id"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Not owned or absent"
// @Router /routine [delete]
// @Security BearerAuth
func NewDeleteRoutineHandler(svc RoutineDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		principal := middlewares.PrincipalFromContext(r.Context())
		if principal == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "No autenticado"})
			return
		}

		var req DeleteRoutineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == uuid.Nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Faltan datos"})
			return
		}

		if err := svc.Delete(r.Context(), principal.UserID, req.ID); err != nil {
			if errors.Is(err, services.ErrRoutineNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Rutina no encontrada"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Error interno"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SuccessResponse{Success: true})
	}
}
