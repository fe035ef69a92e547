package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avelasco/gymtrack/internal/logger"
	"github.com/avelasco/gymtrack/internal/models"
	"github.com/avelasco/gymtrack/internal/services"
)

// MuscleLister defines the read interface for muscles.
type MuscleLister interface {
	ListMuscles(ctx context.Context) ([]models.MuscleDB, error)
}

// MuscleCreator defines the write interface for muscles.
type MuscleCreator interface {
	CreateMuscle(ctx context.Context, name string) (*models.MuscleDB, error)
}

// CreateMuscleRequest represents the JSON body for muscle creation
// swagger:model CreateMuscleRequest
type CreateMuscleRequest struct {
	// Muscle name, at least 2 characters after trimming
	// required: true
	// default: Pecho
	Name string `json:"name"`
}

// NewListMusclesHandler returns an HTTP handler listing muscles.
// @Summary List muscles
// @Tags catalog
// @Produce json
// @Success 200 {array} models.MuscleDB "Muscles"
// @Router /muscle [get]
func NewListMusclesHandler(svc MuscleLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		muscles, err := svc.ListMuscles(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Error al obtener músculos"})
			return
		}
		if muscles == nil {
			muscles = []models.MuscleDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(muscles)
	}
}

// NewCreateMuscleHandler returns an HTTP handler for muscle creation.
// Unlike machine and type creation there is no admin gate here; muscles can
// also be added inline while composing a machine.
// @Summary Create a muscle
// @Tags catalog
// @Accept json
// @Produce json
// @Param createMuscleRequest body handlers.CreateMuscleRequest true "Muscle"
// @Success 200 {object} models.MuscleDB "Created muscle"
// @Failure 400 {object} handlers.ErrorResponse "Name too short"
// @Failure 409 {object} handlers.ErrorResponse "Duplicate name"
// @Router /muscle [post]
func NewCreateMuscleHandler(svc MuscleCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req CreateMuscleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Nombre inválido"})
			return
		}

		m, err := svc.CreateMuscle(r.Context(), req.Name)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNameTooShort):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Nombre inválido"})
			case errors.Is(err, services.ErrMuscleExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Ya existe un músculo con ese nombre."})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Error al crear músculo"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(m)
	}
}
