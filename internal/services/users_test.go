package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avelasco/gymtrack/internal/models"
	"github.com/avelasco/gymtrack/internal/services"
)

func TestUserService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserLister(ctrl)
	svc := services.NewUserService(mockReader)

	userID := uuid.New()

	tests := []struct {
		name      string
		user      *models.UserDB
		readerErr error
		wantErr   error
	}{
		{
			name: "profile found",
			user: &models.UserDB{UserID: userID, Name: "Ana", Email: "ana@example.com", PasswordHash: "hash"},
		},
		{
			name:    "user not found",
			wantErr: services.ErrUserNotFound,
		},
		{
			name:      "reader error",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByID(gomock.Any(), userID).
				Return(tt.user, tt.readerErr)

			profile, err := svc.Profile(context.Background(), userID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, profile)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.user.Email, profile.Email)
			}
		})
	}
}

func TestUserService_ProfileByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserLister(ctrl)
	svc := services.NewUserService(mockReader)

	t.Run("found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "ana@example.com").
			Return(&models.UserDB{UserID: uuid.New(), Name: "Ana", Email: "ana@example.com"}, nil)

		profile, err := svc.ProfileByEmail(context.Background(), "ana@example.com")
		assert.NoError(t, err)
		assert.Equal(t, "Ana", profile.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, nil)

		profile, err := svc.ProfileByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Nil(t, profile)
	})
}

func TestUserService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserLister(ctrl)
	svc := services.NewUserService(mockReader)

	t.Run("projects all users", func(t *testing.T) {
		users := []models.UserDB{
			{UserID: uuid.New(), Name: "Ana", Email: "ana@example.com", PasswordHash: "h1"},
			{UserID: uuid.New(), Name: "Bruno", Email: "bruno@example.com", PasswordHash: "h2"},
		}
		mockReader.EXPECT().List(gomock.Any()).Return(users, nil)

		profiles, err := svc.List(context.Background())
		assert.NoError(t, err)
		assert.Len(t, profiles, 2)
		assert.Equal(t, "bruno@example.com", profiles[1].Email)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

		profiles, err := svc.List(context.Background())
		assert.Error(t, err)
		assert.Nil(t, profiles)
	})
}
