package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelasco/gymtrack/internal/logger"
	"github.com/avelasco/gymtrack/internal/models"
)

func TestRoutineRepositories(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	readRepo := NewRoutineReadRepository(db)
	writeRepo := NewRoutineWriteRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "Ana", "ana@example.com")
	other := seedUser(t, db, "Luis", "luis@example.com")

	machineType, err := NewMachineTypeWriteRepository(db).Save(ctx, "Fuerza", nil)
	require.NoError(t, err)
	imageURL := "/images/prensa.png"
	prensa, err := NewMachineWriteRepository(db).Save(ctx, "Prensa", nil, &imageURL, machineType.TypeID, nil)
	require.NoError(t, err)
	sentadilla, err := NewMachineWriteRepository(db).Save(ctx, "Sentadilla", nil, nil, machineType.TypeID, nil)
	require.NoError(t, err)

	var routineID uuid.UUID

	t.Run("SaveTree persists the full tree with 1-based positions", func(t *testing.T) {
		notes := "subir peso la próxima semana"
		exercises := []models.NewRoutineExercise{
			{
				MachineID: prensa.MachineID,
				Sets:      3,
				RestTime:  90,
				Notes:     &notes,
				RoutineSets: []models.NewRoutineSet{
					{Repetitions: 12, Weight: 80},
					{Repetitions: 10, Weight: 90},
				},
			},
			{
				MachineID:   sentadilla.MachineID,
				Sets:        4,
				RestTime:    120,
				RoutineSets: []models.NewRoutineSet{{Repetitions: 8, Weight: 60}},
			},
		}

		routine, err := writeRepo.SaveTree(ctx, owner.UserID, "Pierna", nil, exercises)
		require.NoError(t, err)
		routineID = routine.RoutineID

		assert.Equal(t, owner.UserID, routine.UserID)
		assert.Equal(t, "Pierna", routine.Name)
		require.Len(t, routine.Exercises, 2)
		assert.Equal(t, 1, routine.Exercises[0].Position)
		assert.Equal(t, 2, routine.Exercises[1].Position)
		require.Len(t, routine.Exercises[0].RoutineSets, 2)
		assert.Equal(t, 1, routine.Exercises[0].RoutineSets[0].SetNumber)
		assert.Equal(t, 2, routine.Exercises[0].RoutineSets[1].SetNumber)
	})

	t.Run("ListByUser inlines the machine summary", func(t *testing.T) {
		routines, err := readRepo.ListByUser(ctx, owner.UserID)
		require.NoError(t, err)
		require.Len(t, routines, 1)

		exercises := routines[0].Exercises
		require.Len(t, exercises, 2)
		assert.Equal(t, "Prensa", exercises[0].Machine.Name)
		require.NotNil(t, exercises[0].Machine.ImageURL)
		assert.Equal(t, imageURL, *exercises[0].Machine.ImageURL)
		assert.Equal(t, "Sentadilla", exercises[1].Machine.Name)

		require.Len(t, exercises[0].RoutineSets, 2)
		assert.Equal(t, 12, exercises[0].RoutineSets[0].Repetitions)
	})

	t.Run("ListByUser for someone else is empty", func(t *testing.T) {
		routines, err := readRepo.ListByUser(ctx, other.UserID)
		assert.NoError(t, err)
		assert.Empty(t, routines)
	})

	t.Run("Update is scoped to the owner", func(t *testing.T) {
		rows, err := writeRepo.Update(ctx, routineID, other.UserID, "Robada", nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), rows)

		rows, err = writeRepo.Update(ctx, routineID, owner.UserID, "Pierna y glúteo", nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		routines, err := readRepo.ListByUser(ctx, owner.UserID)
		require.NoError(t, err)
		require.Len(t, routines, 1)
		assert.Equal(t, "Pierna y glúteo", routines[0].Name)
	})

	t.Run("Delete cascades to exercises and sets", func(t *testing.T) {
		rows, err := writeRepo.Delete(ctx, routineID, other.UserID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), rows)

		rows, err = writeRepo.Delete(ctx, routineID, owner.UserID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		var remaining int
		require.NoError(t, db.Get(&remaining, "SELECT COUNT(*) FROM routine_exercises"))
		assert.Equal(t, 0, remaining)
		require.NoError(t, db.Get(&remaining, "SELECT COUNT(*) FROM routine_sets"))
		assert.Equal(t, 0, remaining)
	})
}

func TestRoutineWriteRepository_SaveTree_RollsBackOnFailure(t *testing.T) {
	logger.Initialize("debug")

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRoutineWriteRepository(sqlxDB)

	userID := uuid.New()
	routineID := uuid.New()
	machineID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO routines").
		WillReturnRows(sqlmock.NewRows(
			[]string{"routine_id", "user_id", "name", "description", "created_at", "updated_at"},
		).AddRow(routineID, userID, "Pierna", nil, time.Now(), time.Now()))
	mock.ExpectQuery("INSERT INTO routine_exercises").
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	exercises := []models.NewRoutineExercise{{MachineID: machineID, Sets: 3}}
	routine, err := repo.SaveTree(context.Background(), userID, "Pierna", nil, exercises)

	assert.Error(t, err)
	assert.Nil(t, routine)
	assert.NoError(t, mock.ExpectationsWereMet())
}
