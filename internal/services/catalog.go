package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/avelasco/gymtrack/internal/logger"
	"github.com/avelasco/gymtrack/internal/models"
	"github.com/avelasco/gymtrack/internal/repositories"
)

// Error variables
var (
	ErrNameTooShort      = errors.New("name must be at least 2 characters")
	ErrMachineTypeExists = errors.New("machine type name already exists")
	ErrMuscleExists      = errors.New("muscle name already exists")
	ErrMachineExists     = errors.New("machine name already exists")
	ErrMachineIncomplete = errors.New("machine requires a name, a type and at least one muscle")
)

// MachineTypeReader defines read operations for machine types.
type MachineTypeReader interface {
	List(ctx context.Context) ([]models.MachineTypeDB, error)
	GetByName(ctx context.Context, name string) (*models.MachineTypeDB, error)
}

// MachineTypeWriter defines write operations for machine types.
type MachineTypeWriter interface {
	Save(ctx context.Context, name string, description *string) (*models.MachineTypeDB, error)
}

// MuscleReader defines read operations for muscles.
type MuscleReader interface {
	List(ctx context.Context) ([]models.MuscleDB, error)
	GetByName(ctx context.Context, name string) (*models.MuscleDB, error)
}

// MuscleWriter defines write operations for muscles.
type MuscleWriter interface {
	Save(ctx context.Context, name string) (*models.MuscleDB, error)
}

// MachineReader defines read operations for machines.
type MachineReader interface {
	ListSummaries(ctx context.Context) ([]models.MachineSummary, error)
	GetByName(ctx context.Context, name string) (*models.MachineDB, error)
}

// MachineWriter defines write operations for machines.
type MachineWriter interface {
	Save(ctx context.Context, name string, description, imageURL *string, typeID uuid.UUID, muscleIDs []uuid.UUID) (*models.MachineDB, error)
}

// SummaryCache caches the machine selection projection.
type SummaryCache interface {
	Get(ctx context.Context) ([]models.MachineSummary, error)
	Set(ctx context.Context, summaries []models.MachineSummary) error
	Invalidate(ctx context.Context) error
}

// ImageSaver persists an uploaded machine image and returns its public URL.
type ImageSaver interface {
	SaveMachineImage(originalName string, data []byte) (string, error)
}

// CatalogService manages the machine type / muscle / machine catalog.
type CatalogService struct {
	typeReader    MachineTypeReader
	typeWriter    MachineTypeWriter
	muscleReader  MuscleReader
	muscleWriter  MuscleWriter
	machineReader MachineReader
	machineWriter MachineWriter
	cache         SummaryCache
	images        ImageSaver
}

// NewCatalogService creates a new CatalogService instance. The cache and image
// saver are optional; a nil cache disables the summary fast path.
func NewCatalogService(
	typeReader MachineTypeReader,
	typeWriter MachineTypeWriter,
	muscleReader MuscleReader,
	muscleWriter MuscleWriter,
	machineReader MachineReader,
	machineWriter MachineWriter,
	cache SummaryCache,
	images ImageSaver,
) *CatalogService {
	return &CatalogService{
		typeReader:    typeReader,
		typeWriter:    typeWriter,
		muscleReader:  muscleReader,
		muscleWriter:  muscleWriter,
		machineReader: machineReader,
		machineWriter: machineWriter,
		cache:         cache,
		images:        images,
	}
}

// ListMachineTypes returns all machine types.
func (svc *CatalogService) ListMachineTypes(ctx context.Context) ([]models.MachineTypeDB, error) {
	return svc.typeReader.List(ctx)
}

// CreateMachineType creates a machine type after trimming the name, checking
// minimum length and rejecting case-insensitive duplicates.
func (svc *CatalogService) CreateMachineType(ctx context.Context, name string, description *string) (*models.MachineTypeDB, error) {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < 2 {
		return nil, ErrNameTooShort
	}

	existing, err := svc.typeReader.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrMachineTypeExists
	}

	mt, err := svc.typeWriter.Save(ctx, name, description)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrMachineTypeExists
		}
		logger.Log.Errorw("failed to save machine type", "name", name, "err", err)
		return nil, err
	}
	return mt, nil
}

// ListMuscles returns all muscles.
func (svc *CatalogService) ListMuscles(ctx context.Context) ([]models.MuscleDB, error) {
	return svc.muscleReader.List(ctx)
}

// CreateMuscle creates a muscle with the same trim/length/duplicate rules as
// machine types.
func (svc *CatalogService) CreateMuscle(ctx context.Context, name string) (*models.MuscleDB, error) {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < 2 {
		return nil, ErrNameTooShort
	}

	existing, err := svc.muscleReader.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrMuscleExists
	}

	m, err := svc.muscleWriter.Save(ctx, name)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrMuscleExists
		}
		logger.Log.Errorw("failed to save muscle", "name", name, "err", err)
		return nil, err
	}
	return m, nil
}

// ListMachineSummaries returns the machine selection projection, read through
// the cache when one is configured.
func (svc *CatalogService) ListMachineSummaries(ctx context.Context) ([]models.MachineSummary, error) {
	if svc.cache != nil {
		if cached, err := svc.cache.Get(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	summaries, err := svc.machineReader.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, summaries); err != nil {
			logger.Log.Warnw("failed to cache machine summaries", "err", err)
		}
	}
	return summaries, nil
}

// CreateMachine creates a machine referencing one type and at least one
// muscle. An uploaded image payload is stored first and wins over a caller
// supplied imageURL. The image write is fire and forget relative to the
// insert: a failed insert leaves an orphaned file.
func (svc *CatalogService) CreateMachine(
	ctx context.Context,
	name string,
	description *string,
	typeID uuid.UUID,
	muscleIDs []uuid.UUID,
	imageName string,
	imageData []byte,
	imageURL *string,
) (*models.MachineDB, error) {
	name = strings.TrimSpace(name)
	if name == "" || typeID == uuid.Nil || len(muscleIDs) == 0 {
		return nil, ErrMachineIncomplete
	}

	existing, err := svc.machineReader.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrMachineExists
	}

	if len(imageData) > 0 && svc.images != nil {
		url, err := svc.images.SaveMachineImage(imageName, imageData)
		if err != nil {
			logger.Log.Errorw("failed to store machine image", "name", name, "err", err)
			return nil, err
		}
		imageURL = &url
	}

	machine, err := svc.machineWriter.Save(ctx, name, description, imageURL, typeID, muscleIDs)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrMachineExists
		}
		logger.Log.Errorw("failed to save machine", "name", name, "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Invalidate(ctx); err != nil {
			logger.Log.Warnw("failed to invalidate machine summary cache", "err", err)
		}
	}
	return machine, nil
}
