package models

import (
	"time"

	"github.com/google/uuid"
)

// RoutineDB represents a routine record in the database
type RoutineDB struct {
	RoutineID   uuid.UUID `json:"id" db:"routine_id"`
	UserID      uuid.UUID `json:"userId" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	// Exercises ordered by position, populated on full reads.
	Exercises []RoutineExerciseDB `json:"exercises" db:"-"`
}

// RoutineExerciseDB is one exercise inside a routine. Position is 1-based and
// assigned from submission order at creation.
type RoutineExerciseDB struct {
	ExerciseID uuid.UUID `json:"id" db:"exercise_id"`
	RoutineID  uuid.UUID `json:"routineId" db:"routine_id"`
	MachineID  uuid.UUID `json:"machineId" db:"machine_id"`
	Sets       int       `json:"sets" db:"sets"`
	RestTime   int       `json:"restTime" db:"rest_time"`
	Position   int       `json:"order" db:"position"`
	Notes      *string   `json:"notes" db:"notes"`

	// Machine summary inlined for display.
	Machine MachineSummary `json:"machine" db:"-"`

	// Sets ordered by set number, populated on full reads.
	RoutineSets []RoutineSetDB `json:"routineSets" db:"-"`
}

// RoutineSetDB is one set of a routine exercise, numbered 1..N.
type RoutineSetDB struct {
	SetID       uuid.UUID `json:"id" db:"set_id"`
	ExerciseID  uuid.UUID `json:"exerciseId" db:"exercise_id"`
	SetNumber   int       `json:"setNumber" db:"set_number"`
	Repetitions int       `json:"repetitions" db:"repetitions"`
	Weight      float64   `json:"weight" db:"weight"`
}

// NewRoutineSet is a set entry submitted on routine creation.
type NewRoutineSet struct {
	Repetitions int     `json:"repetitions"`
	Weight      float64 `json:"weight"`
}

// NewRoutineExercise is an exercise entry submitted on routine creation.
// Its index in the submitted list becomes the 1-based position.
type NewRoutineExercise struct {
	MachineID   uuid.UUID       `json:"machineId"`
	Sets        int             `json:"sets"`
	RestTime    int             `json:"restTime"`
	Notes       *string         `json:"notes"`
	RoutineSets []NewRoutineSet `json:"routineSets"`
}
