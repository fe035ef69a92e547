package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avelasco/gymtrack/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail looks a user up by their exact email. Returns (nil, nil) when no
// user exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, name, email, password_hash, is_admin, gender,
		       birth_date, avatar_url, is_active, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)
	logQuery(query, []any{email}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns a user by primary key, or (nil, nil) when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, name, email, password_hash, is_admin, gender,
		       birth_date, avatar_url, is_active, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)
	logQuery(query, []any{userID}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all users ordered by creation time.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT user_id, name, email, password_hash, is_admin, gender,
		       birth_date, avatar_url, is_active, created_at, updated_at
		FROM users
		ORDER BY created_at
	`

	var users []models.UserDB
	err := r.db.SelectContext(ctx, &users, query)
	logQuery(query, nil, len(users), err)
	if err != nil {
		return nil, err
	}
	return users, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the stored record.
func (r *UserWriteRepository) Save(ctx context.Context, name, email, passwordHash string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING user_id, name, email, password_hash, is_admin, gender,
		          birth_date, avatar_url, is_active, created_at, updated_at
	`
	args := []any{name, email, passwordHash}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)
	logQuery(query, args, user.UserID, err)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateGender sets the user's gender.
func (r *UserWriteRepository) UpdateGender(ctx context.Context, userID uuid.UUID, gender string) error {
	const query = `
		UPDATE users SET gender = $2, updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, gender}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)
	return err
}

// UpdateBirthDate sets the user's birth date. The store allows overwriting an
// existing value; the client restricts re-registration.
func (r *UserWriteRepository) UpdateBirthDate(ctx context.Context, userID uuid.UUID, birthDate time.Time) error {
	const query = `
		UPDATE users SET birth_date = $2, updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, birthDate}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)
	return err
}

// UpdateAvatarURL records the public URL of an uploaded avatar.
func (r *UserWriteRepository) UpdateAvatarURL(ctx context.Context, userID uuid.UUID, avatarURL string) error {
	const query = `
		UPDATE users SET avatar_url = $2, updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, avatarURL}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)
	return err
}
