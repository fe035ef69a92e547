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

// RoutineCreator defines the interface that the routine service must implement.
type RoutineCreator interface {
	Create(ctx context.Context, userID uuid.UUID, name string, description *string, exercises []models.NewRoutineExercise) (*models.RoutineDB, error)
}

// CreateRoutineRequest represents the JSON body for routine creation
// swagger:model CreateRoutineRequest
type CreateRoutineRequest struct {
	// Routine name
	// required: true
	// default: Pierna lunes
	Name string `json:"name"`

	// Optional description
	Description *string `json:"description"`

	// Ordered exercise list; submission order becomes the stored order
	// required: true
	Exercises []models.NewRoutineExercise `json:"exercises"`
}

// NewCreateRoutineHandler returns an HTTP handler for routine creation.
// @Summary Create a routine
// @Description Persists a routine tree for the caller. Exercise order and set numbers follow submission order.
// @Tags routines
// @Accept json
// @Produce json
// @Param createRoutineRequest body handlers.CreateRoutineRequest true "Routine"
// @Success 200 {object} models.RoutineDB "Created routine with full tree"
// @Failure 400 {object} handlers.ErrorResponse "Missing name or exercises"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /routine [post]
// @Security BearerAuth
func NewCreateRoutineHandler(svc RoutineCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		principal := middlewares.PrincipalFromContext(r.Context())
		if principal == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "No autenticado"})
			return
		}

		var req CreateRoutineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Faltan datos"})
			return
		}

		routine, err := svc.Create(r.Context(), principal.UserID, req.Name, req.Description, req.Exercises)
		if err != nil {
			if errors.Is(err, services.ErrRoutineDataMissing) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Faltan datos"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Error interno"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(routine)
	}
}
