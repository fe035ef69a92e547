package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avelasco/gymtrack/internal/models"
)

type RoutineReadRepository struct {
	db *sqlx.DB
}

func NewRoutineReadRepository(db *sqlx.DB) *RoutineReadRepository {
	return &RoutineReadRepository{db: db}
}

// ListByUser returns the full routine trees owned by a user: exercises in
// position order with the machine summary inlined, and sets in set order.
func (r *RoutineReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RoutineDB, error) {
	const routinesQuery = `
		SELECT routine_id, user_id, name, description, created_at, updated_at
		FROM routines
		WHERE user_id = $1
		ORDER BY created_at
	`

	var routines []models.RoutineDB
	err := r.db.SelectContext(ctx, &routines, routinesQuery, userID)
	logQuery(routinesQuery, []any{userID}, len(routines), err)
	if err != nil {
		return nil, err
	}

	const exercisesQuery = `
		SELECT e.exercise_id, e.routine_id, e.machine_id, e.sets, e.rest_time,
		       e.position, e.notes,
		       m.machine_id AS "machine.machine_id",
		       m.name AS "machine.name",
		       m.image_url AS "machine.image_url"
		FROM routine_exercises e
		JOIN machines m ON m.machine_id = e.machine_id
		WHERE e.routine_id = $1
		ORDER BY e.position
	`

	const setsQuery = `
		SELECT set_id, exercise_id, set_number, repetitions, weight
		FROM routine_sets
		WHERE exercise_id = $1
		ORDER BY set_number
	`

	for i := range routines {
		var exercises []models.RoutineExerciseDB
		rows, err := r.db.QueryxContext(ctx, exercisesQuery, routines[i].RoutineID)
		logQuery(exercisesQuery, []any{routines[i].RoutineID}, nil, err)
		if err != nil {
			return nil, err
		}
		for rows.Next() {
			var ex exerciseRow
			if err := rows.StructScan(&ex); err != nil {
				rows.Close()
				return nil, err
			}
			exercises = append(exercises, ex.toModel())
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()

		for j := range exercises {
			var sets []models.RoutineSetDB
			err := r.db.SelectContext(ctx, &sets, setsQuery, exercises[j].ExerciseID)
			logQuery(setsQuery, []any{exercises[j].ExerciseID}, len(sets), err)
			if err != nil {
				return nil, err
			}
			exercises[j].RoutineSets = sets
		}
		routines[i].Exercises = exercises
	}

	return routines, nil
}

// exerciseRow flattens the joined machine summary columns.
type exerciseRow struct {
	ExerciseID       uuid.UUID `db:"exercise_id"`
	RoutineID        uuid.UUID `db:"routine_id"`
	MachineID        uuid.UUID `db:"machine_id"`
	Sets             int       `db:"sets"`
	RestTime         int       `db:"rest_time"`
	Position         int       `db:"position"`
	Notes            *string   `db:"notes"`
	MachineSummaryID uuid.UUID `db:"machine.machine_id"`
	MachineName      string    `db:"machine.name"`
	MachineImageURL  *string   `db:"machine.image_url"`
}

func (e exerciseRow) toModel() models.RoutineExerciseDB {
	return models.RoutineExerciseDB{
		ExerciseID: e.ExerciseID,
		RoutineID:  e.RoutineID,
		MachineID:  e.MachineID,
		Sets:       e.Sets,
		RestTime:   e.RestTime,
		Position:   e.Position,
		Notes:      e.Notes,
		Machine: models.MachineSummary{
			MachineID: e.MachineSummaryID,
			Name:      e.MachineName,
			ImageURL:  e.MachineImageURL,
		},
	}
}

type RoutineWriteRepository struct {
	db *sqlx.DB
}

func NewRoutineWriteRepository(db *sqlx.DB) *RoutineWriteRepository {
	return &RoutineWriteRepository{db: db}
}

// SaveTree persists a routine with its exercises and sets in one transaction.
// Exercise positions and set numbers are assigned from submission order,
// 1-based with no gaps.
func (r *RoutineWriteRepository) SaveTree(
	ctx context.Context,
	userID uuid.UUID,
	name string,
	description *string,
	exercises []models.NewRoutineExercise,
) (*models.RoutineDB, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	const insertRoutine = `
		INSERT INTO routines (user_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING routine_id, user_id, name, description, created_at, updated_at
	`
	args := []any{userID, name, description}

	var routine models.RoutineDB
	err = tx.GetContext(ctx, &routine, insertRoutine, args...)
	logQuery(insertRoutine, args, routine.RoutineID, err)
	if err != nil {
		return nil, err
	}

	const insertExercise = `
		INSERT INTO routine_exercises (routine_id, machine_id, sets, rest_time, position, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING exercise_id, routine_id, machine_id, sets, rest_time, position, notes
	`
	const insertSet = `
		INSERT INTO routine_sets (exercise_id, set_number, repetitions, weight)
		VALUES ($1, $2, $3, $4)
		RETURNING set_id, exercise_id, set_number, repetitions, weight
	`

	for i, newEx := range exercises {
		exArgs := []any{routine.RoutineID, newEx.MachineID, newEx.Sets, newEx.RestTime, i + 1, newEx.Notes}

		var ex models.RoutineExerciseDB
		err := tx.GetContext(ctx, &ex, insertExercise, exArgs...)
		logQuery(insertExercise, exArgs, ex.ExerciseID, err)
		if err != nil {
			return nil, err
		}

		for j, newSet := range newEx.RoutineSets {
			setArgs := []any{ex.ExerciseID, j + 1, newSet.Repetitions, newSet.Weight}

			var set models.RoutineSetDB
			err := tx.GetContext(ctx, &set, insertSet, setArgs...)
			logQuery(insertSet, setArgs, set.SetID, err)
			if err != nil {
				return nil, err
			}
			ex.RoutineSets = append(ex.RoutineSets, set)
		}
		routine.Exercises = append(routine.Exercises, ex)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &routine, nil
}

// Update renames or redescribes a routine, scoped to its owner. Returns the
// number of rows changed: zero means the routine does not exist or belongs to
// someone else, which callers surface identically.
func (r *RoutineWriteRepository) Update(
	ctx context.Context,
	routineID, userID uuid.UUID,
	name string,
	description *string,
) (int64, error) {
	const query = `
		UPDATE routines
		SET name = $3, description = $4, updated_at = NOW()
		WHERE routine_id = $1 AND user_id = $2
	`
	args := []any{routineID, userID, name, description}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)
	if err != nil {
		return 0, err
	}
	return rowsAffected, nil
}

// Delete removes a routine, scoped to its owner; exercises and sets cascade.
// Returns the number of rows removed.
func (r *RoutineWriteRepository) Delete(ctx context.Context, routineID, userID uuid.UUID) (int64, error) {
	const query = `
		DELETE FROM routines
		WHERE routine_id = $1 AND user_id = $2
	`
	args := []any{routineID, userID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)
	if err != nil {
		return 0, err
	}
	return rowsAffected, nil
}
