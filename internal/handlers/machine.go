package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/avelasco/gymtrack/internal/logger"
	"github.com/avelasco/gymtrack/internal/middlewares"
	"github.com/avelasco/gymtrack/internal/models"
	"github.com/avelasco/gymtrack/internal/services"
)

// maxImageMemory bounds in-memory multipart parsing for image uploads.
const maxImageMemory = 10 << 20

// MachineSummaryLister defines the read interface for the machine projection.
type MachineSummaryLister interface {
	ListMachineSummaries(ctx context.Context) ([]models.MachineSummary, error)
}

// MachineCreator defines the write interface for machines.
type MachineCreator interface {
	CreateMachine(ctx context.Context, name string, description *string, typeID uuid.UUID, muscleIDs []uuid.UUID, imageName string, imageData []byte, imageURL *string) (*models.MachineDB, error)
}

// CreateMachineRequest represents the JSON fallback body for machine creation
// swagger:model CreateMachineRequest
type CreateMachineRequest struct {
	// Machine name
	// required: true
	// default: Press de banca
	Name string `json:"name"`

	// Machine type id
	// required: true
	TypeID uuid.UUID `json:"typeId"`

	// Muscle ids, at least one
	// required: true
	Muscles []uuid.UUID `json:"muscles"`

	// Optional description
	Description *string `json:"description"`

	// Optional pre-uploaded image URL
	ImageURL *string `json:"imageUrl"`
}

// CreateMachineResponse represents a successful machine creation
// swagger:model CreateMachineResponse
type CreateMachineResponse struct {
	// Success message
	// default: Ejercicio creado
	Message string            `json:"message"`
	Machine *models.MachineDB `json:"machine"`
}

// NewListMachinesHandler returns an HTTP handler serving the machine
// selection projection. Only the bulk variant (?all=1) returns data; any
// other query yields an empty list.
// @Summary List machines
// @Description Returns {id, name, imageUrl} for every machine when all=1
// @Tags catalog
// @Produce json
// @Param all query string false "Set to 1 for the full projection"
// @Success 200 {array} models.MachineSummary "Machine summaries"
// @Router /machine [get]
func NewListMachinesHandler(svc MachineSummaryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.URL.Query().Get("all") != "1" {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode([]models.MachineSummary{})
			return
		}

		summaries, err := svc.ListMachineSummaries(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Error interno"})
			return
		}
		if summaries == nil {
			summaries = []models.MachineSummary{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(summaries)
	}
}

// NewCreateMachineHandler returns an HTTP handler for machine creation.
// Admin only. Accepts multipart/form-data with an image file, or a JSON
// fallback body.
// @Summary Create a machine
// @Tags catalog
// @Accept mpfd
// @Accept json
// @Produce json
// @Success 200 {object} handlers.CreateMachineResponse "Created machine"
// @Failure 400 {object} handlers.ErrorResponse "Missing name, type or muscles"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ErrorResponse "Not an admin"
// @Failure 409 {object} handlers.ErrorResponse "Duplicate name"
// @Router /machine [post]
// @Security BearerAuth
func NewCreateMachineHandler(svc MachineCreator) http.HandlerFunc {
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
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Solo administradores pueden crear ejercicios"})
			return
		}

		var (
			name        string
			description *string
			typeID      uuid.UUID
			muscleIDs   []uuid.UUID
			imageName   string
			imageData   []byte
			imageURL    *string
		)

		if strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
			if err := r.ParseMultipartForm(maxImageMemory); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Faltan campos obligatorios, tipo o músculos"})
				return
			}

			name = r.FormValue("name")
			if d := r.FormValue("description"); d != "" {
				description = &d
			}
			typeID, _ = uuid.Parse(r.FormValue("typeId"))
			for _, raw := range r.Form["muscles"] {
				if id, err := uuid.Parse(raw); err == nil {
					muscleIDs = append(muscleIDs, id)
				}
			}

			if file, header, err := r.FormFile("image"); err == nil {
				defer file.Close()
				data, err := io.ReadAll(file)
				if err != nil {
					logger.Log.Errorw("failed to read uploaded image", "err", err)
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(ErrorResponse{Error: "Error al crear ejercicio"})
					return
				}
				imageName = header.Filename
				imageData = data
			}
		} else {
			var req CreateMachineRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Faltan campos obligatorios, tipo o músculos"})
				return
			}
			name = req.Name
			description = req.Description
			typeID = req.TypeID
			muscleIDs = req.Muscles
			imageURL = req.ImageURL
		}

		machine, err := svc.CreateMachine(r.Context(), name, description, typeID, muscleIDs, imageName, imageData, imageURL)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMachineIncomplete):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Faltan campos obligatorios, tipo o músculos"})
			case errors.Is(err, services.ErrMachineExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Ya existe un ejercicio/máquina con ese nombre."})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Error al crear ejercicio"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CreateMachineResponse{
			Message: "Ejercicio creado",
			Machine: machine,
		})
	}
}
