package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/avelasco/gymtrack/internal/models"
	"github.com/avelasco/gymtrack/internal/services"
)

type catalogMocks struct {
	typeReader    *services.MockMachineTypeReader
	typeWriter    *services.MockMachineTypeWriter
	muscleReader  *services.MockMuscleReader
	muscleWriter  *services.MockMuscleWriter
	machineReader *services.MockMachineReader
	machineWriter *services.MockMachineWriter
	cache         *services.MockSummaryCache
	images        *services.MockImageSaver
}

func newCatalogService(ctrl *gomock.Controller) (*services.CatalogService, catalogMocks) {
	m := catalogMocks{
		typeReader:    services.NewMockMachineTypeReader(ctrl),
		typeWriter:    services.NewMockMachineTypeWriter(ctrl),
		muscleReader:  services.NewMockMuscleReader(ctrl),
		muscleWriter:  services.NewMockMuscleWriter(ctrl),
		machineReader: services.NewMockMachineReader(ctrl),
		machineWriter: services.NewMockMachineWriter(ctrl),
		cache:         services.NewMockSummaryCache(ctrl),
		images:        services.NewMockImageSaver(ctrl),
	}
	svc := services.NewCatalogService(
		m.typeReader, m.typeWriter,
		m.muscleReader, m.muscleWriter,
		m.machineReader, m.machineWriter,
		m.cache, m.images,
	)
	return svc, m
}

func TestCatalogService_CreateMachineType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCatalogService(ctrl)

	tests := []struct {
		name         string
		typeName     string
		existing     *models.MachineTypeDB
		writerErr    error
		wantErr      error
		expectLookup bool
		expectSave   bool
		savedName    string
	}{
		{
			name:         "successful creation",
			typeName:     "Cardio",
			expectLookup: true,
			expectSave:   true,
			savedName:    "Cardio",
		},
		{
			name:         "name is trimmed",
			typeName:     "  Fuerza  ",
			expectLookup: true,
			expectSave:   true,
			savedName:    "Fuerza",
		},
		{
			name:     "name too short",
			typeName: "C",
			wantErr:  services.ErrNameTooShort,
		},
		{
			name:     "whitespace only",
			typeName: "   ",
			wantErr:  services.ErrNameTooShort,
		},
		{
			name:         "duplicate name",
			typeName:     "Cardio",
			existing:     &models.MachineTypeDB{TypeID: uuid.New(), Name: "cardio"},
			expectLookup: true,
			savedName:    "Cardio",
			wantErr:      services.ErrMachineTypeExists,
		},
		{
			name:         "duplicate caught by unique index",
			typeName:     "Cardio",
			expectLookup: true,
			expectSave:   true,
			savedName:    "Cardio",
			writerErr:    &pgconn.PgError{Code: "23505"},
			wantErr:      services.ErrMachineTypeExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.expectLookup {
				m.typeReader.EXPECT().
					GetByName(gomock.Any(), tt.savedName).
					Return(tt.existing, nil)
			}
			if tt.expectSave {
				m.typeWriter.EXPECT().
					Save(gomock.Any(), tt.savedName, gomock.Nil()).
					DoAndReturn(func(_ context.Context, name string, _ *string) (*models.MachineTypeDB, error) {
						if tt.writerErr != nil {
							return nil, tt.writerErr
						}
						return &models.MachineTypeDB{TypeID: uuid.New(), Name: name}, nil
					})
			}

			mt, err := svc.CreateMachineType(context.Background(), tt.typeName, nil)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, mt)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.savedName, mt.Name)
			}
		})
	}
}

func TestCatalogService_CreateMuscle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCatalogService(ctrl)

	t.Run("successful creation", func(t *testing.T) {
		m.muscleReader.EXPECT().GetByName(gomock.Any(), "Cuádriceps").Return(nil, nil)
		m.muscleWriter.EXPECT().Save(gomock.Any(), "Cuádriceps").
			Return(&models.MuscleDB{MuscleID: uuid.New(), Name: "Cuádriceps"}, nil)

		muscle, err := svc.CreateMuscle(context.Background(), "Cuádriceps")
		assert.NoError(t, err)
		assert.Equal(t, "Cuádriceps", muscle.Name)
	})

	t.Run("duplicate name", func(t *testing.T) {
		m.muscleReader.EXPECT().GetByName(gomock.Any(), "Bíceps").
			Return(&models.MuscleDB{MuscleID: uuid.New(), Name: "bíceps"}, nil)

		muscle, err := svc.CreateMuscle(context.Background(), "Bíceps")
		assert.ErrorIs(t, err, services.ErrMuscleExists)
		assert.Nil(t, muscle)
	})

	t.Run("single rune name rejected", func(t *testing.T) {
		muscle, err := svc.CreateMuscle(context.Background(), "Ñ")
		assert.ErrorIs(t, err, services.ErrNameTooShort)
		assert.Nil(t, muscle)
	})
}

func TestCatalogService_ListMachineSummaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCatalogService(ctrl)

	summaries := []models.MachineSummary{
		{MachineID: uuid.New(), Name: "Prensa"},
		{MachineID: uuid.New(), Name: "Remo"},
	}

	t.Run("cache hit", func(t *testing.T) {
		m.cache.EXPECT().Get(gomock.Any()).Return(summaries, nil)

		got, err := svc.ListMachineSummaries(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, summaries, got)
	})

	t.Run("cache miss falls through and repopulates", func(t *testing.T) {
		m.cache.EXPECT().Get(gomock.Any()).Return(nil, nil)
		m.machineReader.EXPECT().ListSummaries(gomock.Any()).Return(summaries, nil)
		m.cache.EXPECT().Set(gomock.Any(), summaries).Return(nil)

		got, err := svc.ListMachineSummaries(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, summaries, got)
	})

	t.Run("cache set failure is non fatal", func(t *testing.T) {
		m.cache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("redis down"))
		m.machineReader.EXPECT().ListSummaries(gomock.Any()).Return(summaries, nil)
		m.cache.EXPECT().Set(gomock.Any(), summaries).Return(errors.New("redis down"))

		got, err := svc.ListMachineSummaries(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, summaries, got)
	})
}

func TestCatalogService_CreateMachine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCatalogService(ctrl)

	typeID := uuid.New()
	muscleIDs := []uuid.UUID{uuid.New(), uuid.New()}

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.CreateMachine(context.Background(), "", nil, typeID, muscleIDs, "", nil, nil)
		assert.ErrorIs(t, err, services.ErrMachineIncomplete)

		_, err = svc.CreateMachine(context.Background(), "Prensa", nil, uuid.Nil, muscleIDs, "", nil, nil)
		assert.ErrorIs(t, err, services.ErrMachineIncomplete)

		_, err = svc.CreateMachine(context.Background(), "Prensa", nil, typeID, nil, "", nil, nil)
		assert.ErrorIs(t, err, services.ErrMachineIncomplete)
	})

	t.Run("uploaded image wins over supplied url", func(t *testing.T) {
		supplied := "https://cdn.example.com/old.png"
		stored := "/images/machine/machine_123.png"

		m.machineReader.EXPECT().GetByName(gomock.Any(), "Prensa").Return(nil, nil)
		m.images.EXPECT().SaveMachineImage("prensa.png", []byte{1, 2, 3}).Return(stored, nil)
		m.machineWriter.EXPECT().
			Save(gomock.Any(), "Prensa", gomock.Nil(), gomock.Any(), typeID, muscleIDs).
			DoAndReturn(func(_ context.Context, name string, _ *string, imageURL *string, _ uuid.UUID, _ []uuid.UUID) (*models.MachineDB, error) {
				assert.Equal(t, stored, *imageURL)
				return &models.MachineDB{MachineID: uuid.New(), Name: name, ImageURL: imageURL}, nil
			})
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		machine, err := svc.CreateMachine(context.Background(), "Prensa", nil, typeID, muscleIDs, "prensa.png", []byte{1, 2, 3}, &supplied)
		assert.NoError(t, err)
		assert.Equal(t, stored, *machine.ImageURL)
	})

	t.Run("duplicate name", func(t *testing.T) {
		m.machineReader.EXPECT().GetByName(gomock.Any(), "Remo").
			Return(&models.MachineDB{MachineID: uuid.New(), Name: "remo"}, nil)

		machine, err := svc.CreateMachine(context.Background(), "Remo", nil, typeID, muscleIDs, "", nil, nil)
		assert.ErrorIs(t, err, services.ErrMachineExists)
		assert.Nil(t, machine)
	})

	t.Run("cache invalidated after insert", func(t *testing.T) {
		m.machineReader.EXPECT().GetByName(gomock.Any(), "Polea").Return(nil, nil)
		m.machineWriter.EXPECT().
			Save(gomock.Any(), "Polea", gomock.Nil(), gomock.Nil(), typeID, muscleIDs).
			Return(&models.MachineDB{MachineID: uuid.New(), Name: "Polea"}, nil)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))

		machine, err := svc.CreateMachine(context.Background(), "Polea", nil, typeID, muscleIDs, "", nil, nil)
		assert.NoError(t, err)
		assert.Equal(t, "Polea", machine.Name)
	})
}
