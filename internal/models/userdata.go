package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDataDB is one body-metric snapshot. History is append-only; age is never
// stored, it is derived from the owner's birth date at read time.
type UserDataDB struct {
	UserDataID uuid.UUID `json:"id" db:"user_data_id"`
	UserID     uuid.UUID `json:"userId" db:"user_id"`
	Date       time.Time `json:"date" db:"date"`
	Weight     float64   `json:"weight" db:"weight"`
	Height     float64   `json:"height" db:"height"`
	Notes      *string   `json:"notes" db:"notes"`
}

// UserDataRecord is a snapshot with the derived age attached for responses.
type UserDataRecord struct {
	UserDataDB
	Age *int `json:"age"`
}
