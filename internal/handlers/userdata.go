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

// MetricRecorder defines the interface that the metrics service must implement.
type MetricRecorder interface {
	History(ctx context.Context, userID uuid.UUID) ([]models.UserDataRecord, error)
	AddRecord(ctx context.Context, userID uuid.UUID, weight float64, height *float64, notes *string) (*models.UserDataRecord, error)
	SetBirthDate(ctx context.Context, userID uuid.UUID, year, month, day int) (*models.UserDataRecord, error)
	SetGender(ctx context.Context, userID uuid.UUID, gender string) error
	SaveAvatar(ctx context.Context, userID uuid.UUID, originalName string, data []byte) (string, error)
}

// UserDataRequest represents the JSON body for metric updates. Exactly one of
// the three branches applies: gender update, birth-date registration, or a new
// body-metric record.
// swagger:model UserDataRequest
type UserDataRequest struct {
	// Weight for a new record
	Weight float64 `json:"weight"`

	// Optional height; inherited from the previous record when omitted
	Height *float64 `json:"height"`

	// Optional notes
	Notes *string `json:"notes"`

	// Birth date as yyyy-mm-dd, applied when updateBirthDate is true
	BirthDate string `json:"birthDate"`

	// Birth-date registration switch
	UpdateBirthDate bool `json:"updateBirthDate"`

	// Gender update, "M" or "F"
	Gender string `json:"gender"`
}

// AvatarResponse represents a successful avatar upload
// swagger:model AvatarResponse
type AvatarResponse struct {
	// Public URL of the stored avatar
	AvatarURL string `json:"avatarUrl"`
}

// GenderResponse echoes a stored gender update
// swagger:model GenderResponse
type GenderResponse struct {
	// default: M
	Gender string `json:"gender"`
}

// NewGetUserDataHandler returns an HTTP handler serving the caller's
// body-metric history, newest first, with the derived age on every record.
// @Summary Body-metric history
// @Tags metrics
// @Produce json
// @Success 200 {array} models.UserDataRecord "History"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /userdata [get]
// @Security BearerAuth
func NewGetUserDataHandler(svc MetricRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		principal := middlewares.PrincipalFromContext(r.Context())
		if principal == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "No autenticado"})
			return
		}

		records, err := svc.History(r.Context(), principal.UserID)
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
		if records == nil {
			records = []models.UserDataRecord{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(records)
	}
}

// NewPostUserDataHandler returns an HTTP handler for metric updates. A
// multipart body uploads an avatar; a JSON body updates gender, registers a
// birth date, or appends a body-metric record.
// @Summary Append metrics or update profile fields
// @Tags metrics
// @Accept json
// @Accept mpfd
// @Produce json
// @Param userDataRequest body handlers.UserDataRequest true "Metric update"
// @Success 200 {object} models.UserDataRecord "Stored record with derived age"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /userdata [post]
// @Security BearerAuth
func NewPostUserDataHandler(svc MetricRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		principal := middlewares.PrincipalFromContext(r.Context())
		if principal == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "No autenticado"})
			return
		}

		if strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
			handleAvatarUpload(w, r, svc, principal.UserID)
			return
		}

		var req UserDataRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Peso requerido"})
			return
		}

		switch {
		case req.Gender != "":
			if err := svc.SetGender(r.Context(), principal.UserID, req.Gender); err != nil {
				writeUserDataError(w, err, "Género inválido")
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(GenderResponse{Gender: req.Gender})

		case req.UpdateBirthDate:
			year, month, day, ok := splitBirthDate(req.BirthDate)
			if !ok {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Formato de fecha inválido"})
				return
			}
			record, err := svc.SetBirthDate(r.Context(), principal.UserID, year, month, day)
			if err != nil {
				writeUserDataError(w, err, "Fecha de nacimiento inválida")
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(record)

		default:
			record, err := svc.AddRecord(r.Context(), principal.UserID, req.Weight, req.Height, req.Notes)
			if err != nil {
				writeUserDataError(w, err, "Peso requerido")
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(record)
		}
	}
}

func handleAvatarUpload(w http.ResponseWriter, r *http.Request, svc MetricRecorder, userID uuid.UUID) {
	if err := r.ParseMultipartForm(maxImageMemory); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Archivo de imagen requerido"})
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Archivo de imagen requerido"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Log.Errorw("failed to read uploaded avatar", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Error interno"})
		return
	}

	url, err := svc.SaveAvatar(r.Context(), userID, header.Filename, data)
	if err != nil {
		writeUserDataError(w, err, "Archivo de imagen requerido")
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(AvatarResponse{AvatarURL: url})
}

// writeUserDataError maps metric-service failures onto the response taxonomy.
func writeUserDataError(w http.ResponseWriter, err error, validationMsg string) {
	switch {
	case errors.Is(err, services.ErrWeightRequired),
		errors.Is(err, services.ErrInvalidGender),
		errors.Is(err, services.ErrInvalidBirthDate),
		errors.Is(err, services.ErrAvatarFileRequired):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: validationMsg})
	case errors.Is(err, services.ErrUserNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Usuario no encontrado"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Error interno"})
	}
}

// splitBirthDate parses yyyy-mm-dd into numeric components. Calendar validity
// is checked by the service; this only validates the shape.
func splitBirthDate(s string) (year, month, day int, ok bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		if p == "" {
			return 0, 0, 0, false
		}
		n := 0
		for _, c := range p {
			if c < '0' || c > '9' {
				return 0, 0, 0, false
			}
			n = n*10 + int(c-'0')
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], true
}
