package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/avelasco/gymtrack/internal/models"
)

type MachineTypeReadRepository struct {
	db *sqlx.DB
}

func NewMachineTypeReadRepository(db *sqlx.DB) *MachineTypeReadRepository {
	return &MachineTypeReadRepository{db: db}
}

// List returns all machine types ordered by name.
func (r *MachineTypeReadRepository) List(ctx context.Context) ([]models.MachineTypeDB, error) {
	const query = `
		SELECT type_id, name, description, created_at
		FROM machine_types
		ORDER BY name
	`

	var types []models.MachineTypeDB
	err := r.db.SelectContext(ctx, &types, query)
	logQuery(query, nil, len(types), err)
	if err != nil {
		return nil, err
	}
	return types, nil
}

// GetByName looks a type up under case-insensitive comparison. Returns
// (nil, nil) when no type matches.
func (r *MachineTypeReadRepository) GetByName(ctx context.Context, name string) (*models.MachineTypeDB, error) {
	const query = `
		SELECT type_id, name, description, created_at
		FROM machine_types
		WHERE LOWER(name) = LOWER($1)
	`

	var mt models.MachineTypeDB
	err := r.db.GetContext(ctx, &mt, query, name)
	logQuery(query, []any{name}, mt.TypeID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mt, nil
}

type MachineTypeWriteRepository struct {
	db *sqlx.DB
}

func NewMachineTypeWriteRepository(db *sqlx.DB) *MachineTypeWriteRepository {
	return &MachineTypeWriteRepository{db: db}
}

// Save inserts a new machine type and returns the stored record.
func (r *MachineTypeWriteRepository) Save(ctx context.Context, name string, description *string) (*models.MachineTypeDB, error) {
	const query = `
		INSERT INTO machine_types (name, description, created_at)
		VALUES ($1, $2, NOW())
		RETURNING type_id, name, description, created_at
	`
	args := []any{name, description}

	var mt models.MachineTypeDB
	err := r.db.GetContext(ctx, &mt, query, args...)
	logQuery(query, args, mt.TypeID, err)
	if err != nil {
		return nil, err
	}
	return &mt, nil
}
