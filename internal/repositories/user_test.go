package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositories(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	readRepo := NewUserReadRepository(db)
	writeRepo := NewUserWriteRepository(db)
	ctx := context.Background()

	t.Run("Save returns the stored record", func(t *testing.T) {
		user, err := writeRepo.Save(ctx, "Ana", "ana@example.com", "hash1")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, user.UserID)
		assert.Equal(t, "Ana", user.Name)
		assert.Equal(t, "ana@example.com", user.Email)
		assert.Equal(t, "hash1", user.PasswordHash)
		assert.False(t, user.IsAdmin)
		assert.True(t, user.IsActive)
	})

	t.Run("duplicate email is a unique violation", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, "Otra Ana", "ana@example.com", "hash2")
		require.Error(t, err)
		assert.True(t, IsUniqueViolation(err))
	})

	t.Run("GetByEmail", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "Ana", user.Name)
	})

	t.Run("GetByEmail missing returns nil without error", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "nadie@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("GetByID", func(t *testing.T) {
		saved := seedUser(t, db, "Luis", "luis@example.com")

		user, err := readRepo.GetByID(ctx, saved.UserID)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "Luis", user.Name)

		user, err = readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("List returns users in creation order", func(t *testing.T) {
		users, err := readRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "ana@example.com", users[0].Email)
		assert.Equal(t, "luis@example.com", users[1].Email)
	})

	t.Run("profile updates", func(t *testing.T) {
		saved := seedUser(t, db, "Eva", "eva@example.com")

		require.NoError(t, writeRepo.UpdateGender(ctx, saved.UserID, "F"))
		require.NoError(t, writeRepo.UpdateBirthDate(ctx, saved.UserID, time.Date(2001, 6, 15, 0, 0, 0, 0, time.UTC)))
		require.NoError(t, writeRepo.UpdateAvatarURL(ctx, saved.UserID, "/images/avatar_eva.png"))

		user, err := readRepo.GetByID(ctx, saved.UserID)
		require.NoError(t, err)
		require.NotNil(t, user)
		require.NotNil(t, user.Gender)
		assert.Equal(t, "F", *user.Gender)
		require.NotNil(t, user.BirthDate)
		assert.Equal(t, 2001, user.BirthDate.Year())
		require.NotNil(t, user.AvatarURL)
		assert.Equal(t, "/images/avatar_eva.png", *user.AvatarURL)
	})
}
