package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avelasco/gymtrack/internal/models"
)

type MachineReadRepository struct {
	db *sqlx.DB
}

func NewMachineReadRepository(db *sqlx.DB) *MachineReadRepository {
	return &MachineReadRepository{db: db}
}

// ListSummaries returns the id/name/image projection used by selection UIs.
func (r *MachineReadRepository) ListSummaries(ctx context.Context) ([]models.MachineSummary, error) {
	const query = `
		SELECT machine_id, name, image_url
		FROM machines
		ORDER BY name
	`

	var machines []models.MachineSummary
	err := r.db.SelectContext(ctx, &machines, query)
	logQuery(query, nil, len(machines), err)
	if err != nil {
		return nil, err
	}
	return machines, nil
}

// GetByName looks a machine up under case-insensitive comparison. Returns
// (nil, nil) when no machine matches.
func (r *MachineReadRepository) GetByName(ctx context.Context, name string) (*models.MachineDB, error) {
	const query = `
		SELECT machine_id, name, description, image_url, type_id, created_at
		FROM machines
		WHERE LOWER(name) = LOWER($1)
	`

	var m models.MachineDB
	err := r.db.GetContext(ctx, &m, query, name)
	logQuery(query, []any{name}, m.MachineID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

type MachineWriteRepository struct {
	db *sqlx.DB
}

func NewMachineWriteRepository(db *sqlx.DB) *MachineWriteRepository {
	return &MachineWriteRepository{db: db}
}

// Save inserts a machine together with its muscle links in one transaction.
func (r *MachineWriteRepository) Save(
	ctx context.Context,
	name string,
	description *string,
	imageURL *string,
	typeID uuid.UUID,
	muscleIDs []uuid.UUID,
) (*models.MachineDB, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	const insertMachine = `
		INSERT INTO machines (name, description, image_url, type_id, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING machine_id, name, description, image_url, type_id, created_at
	`
	args := []any{name, description, imageURL, typeID}

	var m models.MachineDB
	err = tx.GetContext(ctx, &m, insertMachine, args...)
	logQuery(insertMachine, args, m.MachineID, err)
	if err != nil {
		return nil, err
	}

	const insertLink = `
		INSERT INTO machine_muscles (machine_id, muscle_id)
		VALUES ($1, $2)
	`
	for _, muscleID := range muscleIDs {
		if _, err := tx.ExecContext(ctx, insertLink, m.MachineID, muscleID); err != nil {
			logQuery(insertLink, []any{m.MachineID, muscleID}, nil, err)
			return nil, err
		}
	}

	if len(muscleIDs) > 0 {
		query, inArgs, err := sqlx.In(`
			SELECT muscle_id, name, created_at
			FROM muscles
			WHERE muscle_id IN (?)
			ORDER BY name
		`, muscleIDs)
		if err != nil {
			return nil, err
		}
		query = tx.Rebind(query)

		err = tx.SelectContext(ctx, &m.Muscles, query, inArgs...)
		logQuery(query, inArgs, len(m.Muscles), err)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &m, nil
}
