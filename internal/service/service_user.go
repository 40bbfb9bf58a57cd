package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bootcamp-api/internal/logger"
	"github.com/MKhiriev/bootcamp-api/internal/store"
	"github.com/MKhiriev/bootcamp-api/models"
)

type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if userID <= 0 {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user: %w", err)
	}

	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.FindAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return users, nil
}

// UpdateUser changes only the names; email and password stay untouched.
func (s *userService) UpdateUser(ctx context.Context, userID int64, firstName, lastName string) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 || firstName == "" || lastName == "" {
		log.Error().Str("func", "*userService.UpdateUser").Int64("user_id", userID).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.UpdateUserNames(ctx, userID, firstName, lastName)
	if err != nil {
		return models.User{}, fmt.Errorf("error updating user: %w", err)
	}

	log.Info().Str("func", "*userService.UpdateUser").Int64("user_id", userID).Msg("user updated")
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return ErrInvalidDataProvided
	}

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	return nil
}
