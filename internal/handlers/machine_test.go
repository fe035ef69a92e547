package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelasco/gymtrack/internal/middlewares"
	"github.com/avelasco/gymtrack/internal/models"
	"github.com/avelasco/gymtrack/internal/services"
)

func TestListMachinesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMachineSummaryLister(ctrl)

	t.Run("without all=1 returns empty array", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/machine", nil)
		rec := httptest.NewRecorder()

		NewListMachinesHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("all=1 returns the projection", func(t *testing.T) {
		summaries := []models.MachineSummary{
			{MachineID: uuid.New(), Name: "Prensa"},
			{MachineID: uuid.New(), Name: "Remo"},
		}
		mockSvc.EXPECT().ListMachineSummaries(gomock.Any()).Return(summaries, nil)

		req := httptest.NewRequest(http.MethodGet, "/machine?all=1", nil)
		rec := httptest.NewRecorder()

		NewListMachinesHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got []models.MachineSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, 2)
		assert.Equal(t, "Prensa", got[0].Name)
	})
}

func TestCreateMachineHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMachineCreator(ctrl)

	userID := uuid.New()
	typeID := uuid.New()
	muscleID := uuid.New()

	t.Run("non admin forbidden", func(t *testing.T) {
		body, _ := json.Marshal(CreateMachineRequest{Name: "Prensa", TypeID: typeID, Muscles: []uuid.UUID{muscleID}})

		rec := httptest.NewRecorder()
		NewCreateMachineHandler(mockSvc)(rec, authedRequest(http.MethodPost, "/machine", body, memberClaims(userID)))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"error":"Solo administradores pueden crear ejercicios"}`, rec.Body.String())
	})

	t.Run("json fallback body", func(t *testing.T) {
		body, _ := json.Marshal(CreateMachineRequest{Name: "Prensa", TypeID: typeID, Muscles: []uuid.UUID{muscleID}})
		created := &models.MachineDB{MachineID: uuid.New(), Name: "Prensa"}

		mockSvc.EXPECT().
			CreateMachine(gomock.Any(), "Prensa", gomock.Nil(), typeID, []uuid.UUID{muscleID}, "", gomock.Nil(), gomock.Nil()).
			Return(created, nil)

		rec := httptest.NewRecorder()
		NewCreateMachineHandler(mockSvc)(rec, authedRequest(http.MethodPost, "/machine", body, adminClaims(userID)))

		assert.Equal(t, http.StatusOK, rec.Code)

		var got CreateMachineResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "Ejercicio creado", got.Message)
		assert.Equal(t, created.MachineID, got.Machine.MachineID)
	})

	t.Run("multipart body with image upload", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("name", "Prensa"))
		require.NoError(t, mw.WriteField("typeId", typeID.String()))
		require.NoError(t, mw.WriteField("muscles", muscleID.String()))
		fw, err := mw.CreateFormFile("image", "prensa.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte{1, 2, 3})
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		created := &models.MachineDB{MachineID: uuid.New(), Name: "Prensa"}
		mockSvc.EXPECT().
			CreateMachine(gomock.Any(), "Prensa", gomock.Nil(), typeID, []uuid.UUID{muscleID}, "prensa.png", []byte{1, 2, 3}, gomock.Nil()).
			Return(created, nil)

		req := httptest.NewRequest(http.MethodPost, "/machine", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req = req.WithContext(middlewares.ContextWithPrincipal(req.Context(), adminClaims(userID)))
		rec := httptest.NewRecorder()

		NewCreateMachineHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("incomplete machine", func(t *testing.T) {
		body, _ := json.Marshal(CreateMachineRequest{Name: "Prensa"})
		mockSvc.EXPECT().
			CreateMachine(gomock.Any(), "Prensa", gomock.Nil(), uuid.Nil, gomock.Nil(), "", gomock.Nil(), gomock.Nil()).
			Return(nil, services.ErrMachineIncomplete)

		rec := httptest.NewRecorder()
		NewCreateMachineHandler(mockSvc)(rec, authedRequest(http.MethodPost, "/machine", body, adminClaims(userID)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Faltan campos obligatorios, tipo o músculos"}`, rec.Body.String())
	})

	t.Run("duplicate name", func(t *testing.T) {
		body, _ := json.Marshal(CreateMachineRequest{Name: "Prensa", TypeID: typeID, Muscles: []uuid.UUID{muscleID}})
		mockSvc.EXPECT().
			CreateMachine(gomock.Any(), "Prensa", gomock.Nil(), typeID, []uuid.UUID{muscleID}, "", gomock.Nil(), gomock.Nil()).
			Return(nil, services.ErrMachineExists)

		rec := httptest.NewRecorder()
		NewCreateMachineHandler(mockSvc)(rec, authedRequest(http.MethodPost, "/machine", body, adminClaims(userID)))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error":"Ya existe un ejercicio/máquina con ese nombre."}`, rec.Body.String())
	})
}
