package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/avelasco/gymtrack/internal/logger"
	"github.com/avelasco/gymtrack/internal/models"
)

// Error variables
var (
	ErrRoutineDataMissing = errors.New("routine requires a name and at least one exercise")
	ErrRoutineNotFound    = errors.New("routine not found")
)

// RoutineReader defines read operations for routines.
type RoutineReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RoutineDB, error)
}

// RoutineWriter defines write operations for routines. Update and Delete
// report the number of rows touched; zero means not owned or absent.
type RoutineWriter interface {
	SaveTree(ctx context.Context, userID uuid.UUID, name string, description *string, exercises []models.NewRoutineExercise) (*models.RoutineDB, error)
	Update(ctx context.Context, routineID, userID uuid.UUID, name string, description *string) (int64, error)
	Delete(ctx context.Context, routineID, userID uuid.UUID) (int64, error)
}

// RoutineService manages user-owned workout routines. Every operation is
// scoped to the calling principal; a routine owned by someone else behaves
// exactly like a missing one.
type RoutineService struct {
	reader RoutineReader
	writer RoutineWriter
	events KafkaWriter
}

// NewRoutineService creates a new RoutineService instance.
func NewRoutineService(reader RoutineReader, writer RoutineWriter, events KafkaWriter) *RoutineService {
	return &RoutineService{
		reader: reader,
		writer: writer,
		events: events,
	}
}

// Create persists a routine tree for the caller. Exercise positions and set
// numbers come from submission order, 1-based.
func (svc *RoutineService) Create(
	ctx context.Context,
	userID uuid.UUID,
	name string,
	description *string,
	exercises []models.NewRoutineExercise,
) (*models.RoutineDB, error) {
	if name == "" || len(exercises) == 0 {
		return nil, ErrRoutineDataMissing
	}

	routine, err := svc.writer.SaveTree(ctx, userID, name, description, exercises)
	if err != nil {
		logger.Log.Errorw("failed to save routine", "userID", userID, "err", err)
		return nil, err
	}

	publishActivity(ctx, svc.events, userID, "routine.created", routine.RoutineID)

	return routine, nil
}

// List returns the caller's routines with their full exercise/set trees.
func (svc *RoutineService) List(ctx context.Context, userID uuid.UUID) ([]models.RoutineDB, error) {
	routines, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list routines", "userID", userID, "err", err)
		return nil, err
	}
	return routines, nil
}

// Update renames or redescribes one of the caller's routines.
func (svc *RoutineService) Update(
	ctx context.Context,
	userID, routineID uuid.UUID,
	name string,
	description *string,
) error {
	if name == "" {
		return ErrRoutineDataMissing
	}

	rows, err := svc.writer.Update(ctx, routineID, userID, name, description)
	if err != nil {
		logger.Log.Errorw("failed to update routine", "routineID", routineID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrRoutineNotFound
	}
	return nil
}

// Delete removes one of the caller's routines; exercises and sets cascade.
func (svc *RoutineService) Delete(ctx context.Context, userID, routineID uuid.UUID) error {
	rows, err := svc.writer.Delete(ctx, routineID, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete routine", "routineID", routineID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrRoutineNotFound
	}

	publishActivity(ctx, svc.events, userID, "routine.deleted", routineID)

	return nil
}
