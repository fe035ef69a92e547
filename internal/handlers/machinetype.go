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

// MachineTypeLister defines the read interface for machine types.
type MachineTypeLister interface {
	ListMachineTypes(ctx context.Context) ([]models.MachineTypeDB, error)
}

// MachineTypeCreator defines the write interface for machine types.
type MachineTypeCreator interface {
	CreateMachineType(ctx context.Context, name string, description *string) (*models.MachineTypeDB, error)
}

// CreateMachineTypeRequest represents the JSON body for type creation
// swagger:model CreateMachineTypeRequest
type CreateMachineTypeRequest struct {
	// Type name, at least 2 characters after trimming
	// required: true
	// default: Cardio
	Name string `json:"name"`

	// Optional description
	Description *string `json:"description"`
}

// NewListMachineTypesHandler returns an HTTP handler listing machine types.
// @Summary List machine types
// @Tags catalog
// @Produce json
// @Success 200 {array} models.MachineTypeDB "Machine types"
// @Router /machinetype [get]
func NewListMachineTypesHandler(svc MachineTypeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		types, err := svc.ListMachineTypes(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Error interno"})
			return
		}
		if types == nil {
			types = []models.MachineTypeDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(types)
	}
}

// NewCreateMachineTypeHandler returns an HTTP handler for type creation.
// Admin only.
// @Summary Create a machine type
// @Tags catalog
// @Accept json
// @Produce json
// @Param createMachineTypeRequest body handlers.CreateMachineTypeRequest true "Machine type"
// @Success 200 {object} models.MachineTypeDB "Created type"
// @Failure 400 {object} handlers.ErrorResponse "Name too short"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ErrorResponse "Not an admin"
// @Failure 409 {object} handlers.ErrorResponse "Duplicate name"
// @Router /machinetype [post]
// @Security BearerAuth
func NewCreateMachineTypeHandler(svc MachineTypeCreator) http.HandlerFunc {
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
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Solo administradores pueden crear tipos"})
			return
		}

		var req CreateMachineTypeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Nombre de tipo requerido y mínimo 2 caracteres"})
			return
		}

		mt, err := svc.CreateMachineType(r.Context(), req.Name, req.Description)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNameTooShort):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Nombre de tipo requerido y mínimo 2 caracteres"})
			case errors.Is(err, services.ErrMachineTypeExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Ya existe un tipo con ese nombre"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Error interno"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(mt)
	}
}
