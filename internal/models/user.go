package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID  `json:"id" db:"user_id"`            // Primary key
	Name         string     `json:"name" db:"name"`             // Display name
	Email        string     `json:"email" db:"email"`           // Unique email, login key
	PasswordHash string     `json:"-" db:"password_hash"`       // Bcrypt hash
	IsAdmin      bool       `json:"isAdmin" db:"is_admin"`      // Role flag
	Gender       *string    `json:"gender" db:"gender"`         // "M" or "F", nil if unset
	BirthDate    *time.Time `json:"birthDate" db:"birth_date"`  // nil if unset
	AvatarURL    *string    `json:"avatarUrl" db:"avatar_url"`  // nil until uploaded
	IsActive     bool       `json:"isActive" db:"is_active"`    // Account status
	CreatedAt    time.Time  `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// UserProfile is the public projection returned by /me and /userinfo.
type UserProfile struct {
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	AvatarURL string     `json:"avatarUrl"`
	BirthDate *time.Time `json:"birthDate"`
	Gender    string     `json:"gender"`
	IsAdmin   bool       `json:"isAdmin"`
}

// Profile builds the public projection of a user.
func (u *UserDB) Profile() UserProfile {
	p := UserProfile{
		Name:      u.Name,
		Email:     u.Email,
		BirthDate: u.BirthDate,
		IsAdmin:   u.IsAdmin,
	}
	if u.AvatarURL != nil {
		p.AvatarURL = *u.AvatarURL
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	return p
}
