package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/avelasco/gymtrack/internal/logger"
	"github.com/avelasco/gymtrack/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

// UserLister extends user reads with by-id and listing operations.
type UserLister interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserService serves public profile projections.
type UserService struct {
	reader UserLister
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserLister) *UserService {
	return &UserService{reader: reader}
}

// Profile returns the public projection of a user by id.
func (svc *UserService) Profile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	p := user.Profile()
	return &p, nil
}

// ProfileByEmail returns the public projection of a user by email.
func (svc *UserService) ProfileByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	p := user.Profile()
	return &p, nil
}

// List returns the public projections of all registered users.
func (svc *UserService) List(ctx context.Context) ([]models.UserProfile, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}

	profiles := make([]models.UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Profile())
	}
	return profiles, nil
}
