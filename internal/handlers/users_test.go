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
)

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserProfileLister(ctrl)
	userID := uuid.New()

	t.Run("unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		rec := httptest.NewRecorder()

		NewListUsersHandler(mockSvc)(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"No autenticado"}`, rec.Body.String())
	})

	t.Run("non admin forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewListUsersHandler(mockSvc)(rec, authedRequest(http.MethodGet, "/users", nil, memberClaims(userID)))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"error":"Solo administradores"}`, rec.Body.String())
	})

	t.Run("admin lists all users", func(t *testing.T) {
		users := []models.UserProfile{
			{Name: "Ana", Email: "ana@example.com"},
			{Name: "Luis", Email: "luis@example.com", IsAdmin: true},
		}
		mockSvc.EXPECT().List(gomock.Any()).Return(users, nil)

		rec := httptest.NewRecorder()
		NewListUsersHandler(mockSvc)(rec, authedRequest(http.MethodGet, "/users", nil, adminClaims(userID)))

		assert.Equal(t, http.StatusOK, rec.Code)

		var got []models.UserProfile
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, 2)
		assert.Equal(t, "luis@example.com", got[1].Email)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

		rec := httptest.NewRecorder()
		NewListUsersHandler(mockSvc)(rec, authedRequest(http.MethodGet, "/users", nil, adminClaims(userID)))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Error interno"}`, rec.Body.String())
	})
}
