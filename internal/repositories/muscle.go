package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/avelasco/gymtrack/internal/models"
)

type MuscleReadRepository struct {
	db *sqlx.DB
}

func NewMuscleReadRepository(db *sqlx.DB) *MuscleReadRepository {
	return &MuscleReadRepository{db: db}
}

// List returns all muscles ordered by name.
func (r *MuscleReadRepository) List(ctx context.Context) ([]models.MuscleDB, error) {
	const query = `
		SELECT muscle_id, name, created_at
		FROM muscles
		ORDER BY name
	`

	var muscles []models.MuscleDB
	err := r.db.SelectContext(ctx, &muscles, query)
	logQuery(query, nil, len(muscles), err)
	if err != nil {
		return nil, err
	}
	return muscles, nil
}

// GetByName looks a muscle up under case-insensitive comparison. Returns
// (nil, nil) when no muscle matches.
func (r *MuscleReadRepository) GetByName(ctx context.Context, name string) (*models.MuscleDB, error) {
	const query = `
		SELECT muscle_id, name, created_at
		FROM muscles
		WHERE LOWER(name) = LOWER($1)
	`

	var m models.MuscleDB
	err := r.db.GetContext(ctx, &m, query, name)
	logQuery(query, []any{name}, m.MuscleID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

type MuscleWriteRepository struct {
	db *sqlx.DB
}

func NewMuscleWriteRepository(db *sqlx.DB) *MuscleWriteRepository {
	return &MuscleWriteRepository{db: db}
}

// Save inserts a new muscle and returns the stored record.
func (r *MuscleWriteRepository) Save(ctx context.Context, name string) (*models.MuscleDB, error) {
	const query = `
		INSERT INTO muscles (name, created_at)
		VALUES ($1, NOW())
		RETURNING muscle_id, name, created_at
	`
	args := []any{name}

	var m models.MuscleDB
	err := r.db.GetContext(ctx, &m, query, args...)
	logQuery(query, args, m.MuscleID, err)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
