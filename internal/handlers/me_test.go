package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelasco/gymtrack/internal/models"
	"github.com/avelasco/gymtrack/internal/services"
)

func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileReader(ctrl)
	userID := uuid.New()

	t.Run("unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		rec := httptest.NewRecorder()

		NewMeHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"No autenticado"}`, rec.Body.String())
	})

	t.Run("returns own profile", func(t *testing.T) {
		profile := &models.UserProfile{Name: "Ana", Email: "ana@example.com", Gender: "F"}
		mockSvc.EXPECT().Profile(gomock.Any(), userID).Return(profile, nil)

		rec := httptest.NewRecorder()
		NewMeHandler(mockSvc)(rec, authedRequest(http.MethodGet, "/me", nil, memberClaims(userID)))

		assert.Equal(t, http.StatusOK, rec.Code)

		var got models.UserProfile
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "ana@example.com", got.Email)
		assert.Equal(t, "F", got.Gender)
	})

	t.Run("user not found", func(t *testing.T) {
		mockSvc.EXPECT().Profile(gomock.Any(), userID).Return(nil, services.ErrUserNotFound)

		rec := httptest.NewRecorder()
		NewMeHandler(mockSvc)(rec, authedRequest(http.MethodGet, "/me", nil, memberClaims(userID)))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"Usuario no encontrado"}`, rec.Body.String())
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().Profile(gomock.Any(), userID).Return(nil, errors.New("db error"))

		rec := httptest.NewRecorder()
		NewMeHandler(mockSvc)(rec, authedRequest(http.MethodGet, "/me", nil, memberClaims(userID)))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"message":"Error interno"}`, rec.Body.String())
	})
}
