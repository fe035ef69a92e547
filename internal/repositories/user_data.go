package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avelasco/gymtrack/internal/models"
)

type UserDataReadRepository struct {
	db *sqlx.DB
}

func NewUserDataReadRepository(db *sqlx.DB) *UserDataReadRepository {
	return &UserDataReadRepository{db: db}
}

// ListByUser returns a user's body-metric history, newest first.
func (r *UserDataReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.UserDataDB, error) {
	const query = `
		SELECT user_data_id, user_id, date, weight, height, notes
		FROM user_data
		WHERE user_id = $1
		ORDER BY date DESC
	`

	var records []models.UserDataDB
	err := r.db.SelectContext(ctx, &records, query, userID)
	logQuery(query, []any{userID}, len(records), err)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetLatest returns the most recent record for a user, or (nil, nil) when the
// history is empty.
func (r *UserDataReadRepository) GetLatest(ctx context.Context, userID uuid.UUID) (*models.UserDataDB, error) {
	const query = `
		SELECT user_data_id, user_id, date, weight, height, notes
		FROM user_data
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT 1
	`

	var record models.UserDataDB
	err := r.db.GetContext(ctx, &record, query, userID)
	logQuery(query, []any{userID}, record.UserDataID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

type UserDataWriteRepository struct {
	db *sqlx.DB
}

func NewUserDataWriteRepository(db *sqlx.DB) *UserDataWriteRepository {
	return &UserDataWriteRepository{db: db}
}

// Save appends a new snapshot to the history and returns the stored record.
func (r *UserDataWriteRepository) Save(
	ctx context.Context,
	userID uuid.UUID,
	weight, height float64,
	notes *string,
) (*models.UserDataDB, error) {
	const query = `
		INSERT INTO user_data (user_id, date, weight, height, notes)
		VALUES ($1, NOW(), $2, $3, $4)
		RETURNING user_data_id, user_id, date, weight, height, notes
	`
	args := []any{userID, weight, height, notes}

	var record models.UserDataDB
	err := r.db.GetContext(ctx, &record, query, args...)
	logQuery(query, args, record.UserDataID, err)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
