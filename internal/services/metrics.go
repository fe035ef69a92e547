package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/avelasco/gymtrack/internal/logger"
	"github.com/avelasco/gymtrack/internal/models"
)

// Error variables
var (
	ErrWeightRequired     = errors.New("weight is required")
	ErrInvalidGender      = errors.New("gender must be M or F")
	ErrInvalidBirthDate   = errors.New("invalid birth date")
	ErrAvatarFileRequired = errors.New("avatar image file required")
)

// UserDataReader defines read operations for body-metric history.
type UserDataReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.UserDataDB, error)
	GetLatest(ctx context.Context, userID uuid.UUID) (*models.UserDataDB, error)
}

// UserDataWriter appends body-metric snapshots.
type UserDataWriter interface {
	Save(ctx context.Context, userID uuid.UUID, weight, height float64, notes *string) (*models.UserDataDB, error)
}

// ProfileWriter defines the user profile mutations owned by this service.
type ProfileWriter interface {
	UpdateGender(ctx context.Context, userID uuid.UUID, gender string) error
	UpdateBirthDate(ctx context.Context, userID uuid.UUID, birthDate time.Time) error
	UpdateAvatarURL(ctx context.Context, userID uuid.UUID, avatarURL string) error
}

// UserGetter reads a user by id.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// AvatarSaver persists an uploaded avatar and returns its public URL.
type AvatarSaver interface {
	SaveUserAvatar(userID uuid.UUID, originalName string, data []byte) (string, error)
}

// MetricsService manages body-metric history and the profile fields derived
// metrics depend on.
type MetricsService struct {
	users      UserGetter
	userWriter ProfileWriter
	dataReader UserDataReader
	dataWriter UserDataWriter
	avatars    AvatarSaver
	events     KafkaWriter
}

// NewMetricsService creates a new MetricsService instance.
func NewMetricsService(
	users UserGetter,
	userWriter ProfileWriter,
	dataReader UserDataReader,
	dataWriter UserDataWriter,
	avatars AvatarSaver,
	events KafkaWriter,
) *MetricsService {
	return &MetricsService{
		users:      users,
		userWriter: userWriter,
		dataReader: dataReader,
		dataWriter: dataWriter,
		avatars:    avatars,
		events:     events,
	}
}

// calculateAge derives a calendar-aware age from a birth date: the year
// difference, minus one if the birthday has not yet occurred this year.
func calculateAge(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// derivedAge computes the age for a user, or nil when no birth date is set.
// Age is never persisted; it is recomputed relative to now on every read.
func derivedAge(user *models.UserDB, now time.Time) *int {
	if user == nil || user.BirthDate == nil {
		return nil
	}
	age := calculateAge(*user.BirthDate, now)
	return &age
}

// History returns a user's body-metric history newest first, with the derived
// age attached to every record.
func (svc *MetricsService) History(ctx context.Context, userID uuid.UUID) ([]models.UserDataRecord, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	records, err := svc.dataReader.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	age := derivedAge(user, time.Now())
	out := make([]models.UserDataRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, models.UserDataRecord{UserDataDB: rec, Age: age})
	}
	return out, nil
}

// AddRecord appends a snapshot. A missing height inherits the most recent
// record's height, or 0 when the history is empty.
func (svc *MetricsService) AddRecord(
	ctx context.Context,
	userID uuid.UUID,
	weight float64,
	height *float64,
	notes *string,
) (*models.UserDataRecord, error) {
	if weight == 0 {
		return nil, ErrWeightRequired
	}

	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	h := 0.0
	if height != nil {
		h = *height
	} else {
		last, err := svc.dataReader.GetLatest(ctx, userID)
		if err != nil {
			return nil, err
		}
		if last != nil {
			h = last.Height
		}
	}

	record, err := svc.dataWriter.Save(ctx, userID, weight, h, notes)
	if err != nil {
		logger.Log.Errorw("failed to save user data", "userID", userID, "err", err)
		return nil, err
	}

	publishActivity(ctx, svc.events, userID, "userdata.recorded", record.UserDataID)

	return &models.UserDataRecord{UserDataDB: *record, Age: derivedAge(user, time.Now())}, nil
}

// SetBirthDate validates and stores a birth date. The date is rebuilt from its
// components and must round-trip exactly, so overflows like Feb 30 are
// rejected. Returns the latest record with the recomputed age, or an empty
// record carrying just the age when the history is empty.
func (svc *MetricsService) SetBirthDate(ctx context.Context, userID uuid.UUID, year, month, day int) (*models.UserDataRecord, error) {
	if year == 0 || month == 0 || day == 0 {
		return nil, ErrInvalidBirthDate
	}

	birth := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if birth.Year() != year || int(birth.Month()) != month || birth.Day() != day {
		return nil, ErrInvalidBirthDate
	}

	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := svc.userWriter.UpdateBirthDate(ctx, userID, birth); err != nil {
		logger.Log.Errorw("failed to update birth date", "userID", userID, "err", err)
		return nil, err
	}

	age := calculateAge(birth, time.Now())
	last, err := svc.dataReader.GetLatest(ctx, userID)
	if err != nil {
		return nil, err
	}

	record := &models.UserDataRecord{Age: &age}
	if last != nil {
		record.UserDataDB = *last
	}
	return record, nil
}

// SetGender stores the user's gender; only "M" and "F" are accepted.
func (svc *MetricsService) SetGender(ctx context.Context, userID uuid.UUID, gender string) error {
	if gender != "M" && gender != "F" {
		return ErrInvalidGender
	}

	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := svc.userWriter.UpdateGender(ctx, userID, gender); err != nil {
		logger.Log.Errorw("failed to update gender", "userID", userID, "err", err)
		return err
	}
	return nil
}

// SaveAvatar stores an uploaded avatar and records its URL on the user. The
// file write happens first; a crash before the URL update leaves an orphaned
// file, which is not recovered.
func (svc *MetricsService) SaveAvatar(ctx context.Context, userID uuid.UUID, originalName string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrAvatarFileRequired
	}

	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	url, err := svc.avatars.SaveUserAvatar(userID, originalName, data)
	if err != nil {
		return "", err
	}

	if err := svc.userWriter.UpdateAvatarURL(ctx, userID, url); err != nil {
		logger.Log.Errorw("failed to record avatar url", "userID", userID, "err", err)
		return "", err
	}
	return url, nil
}
