package models

import (
	"time"

	"github.com/google/uuid"
)

// MachineTypeDB represents a machine type record in the database
type MachineTypeDB struct {
	TypeID      uuid.UUID `json:"id" db:"type_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// MuscleDB represents a muscle record in the database
type MuscleDB struct {
	MuscleID  uuid.UUID `json:"id" db:"muscle_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// MachineDB represents a machine record in the database
type MachineDB struct {
	MachineID   uuid.UUID `json:"id" db:"machine_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	ImageURL    *string   `json:"imageUrl" db:"image_url"`
	TypeID      uuid.UUID `json:"typeId" db:"type_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	// Muscles worked by the machine, ordered by name. Loaded together with the
	// muscle links on create.
	Muscles []MuscleDB `json:"muscles" db:"-"`
}

// MachineSummary is the projection served to selection UIs (GET /machine?all=1).
type MachineSummary struct {
	MachineID uuid.UUID `json:"id" db:"machine_id"`
	Name      string    `json:"name" db:"name"`
	ImageURL  *string   `json:"imageUrl" db:"image_url"`
}
