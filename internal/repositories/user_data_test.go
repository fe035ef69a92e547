package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDataRepositories(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	readRepo := NewUserDataReadRepository(db)
	writeRepo := NewUserDataWriteRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "Ana", "ana@example.com")

	t.Run("GetLatest on empty history returns nil without error", func(t *testing.T) {
		record, err := readRepo.GetLatest(ctx, user.UserID)
		assert.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("Save returns the stored record", func(t *testing.T) {
		notes := "primera medición"
		record, err := writeRepo.Save(ctx, user.UserID, 82.5, 178, &notes)
		require.NoError(t, err)

		assert.Equal(t, user.UserID, record.UserID)
		assert.Equal(t, 82.5, record.Weight)
		assert.Equal(t, 178.0, record.Height)
		require.NotNil(t, record.Notes)
		assert.Equal(t, notes, *record.Notes)
		assert.False(t, record.Date.IsZero())
	})

	t.Run("ListByUser returns newest first", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, user.UserID, 81.9, 178, nil)
		require.NoError(t, err)

		records, err := readRepo.ListByUser(ctx, user.UserID)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, 81.9, records[0].Weight)
		assert.Equal(t, 82.5, records[1].Weight)
	})

	t.Run("GetLatest returns the most recent record", func(t *testing.T) {
		record, err := readRepo.GetLatest(ctx, user.UserID)
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, 81.9, record.Weight)
	})

	t.Run("histories are scoped per user", func(t *testing.T) {
		records, err := readRepo.ListByUser(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Empty(t, records)
	})
}
