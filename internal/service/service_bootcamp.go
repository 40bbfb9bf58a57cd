package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bootcamp-api/internal/logger"
	"github.com/MKhiriev/bootcamp-api/internal/store"
	"github.com/MKhiriev/bootcamp-api/models"
)

type bootcampService struct {
	bootcampRepository store.BootcampRepository
	logger             *logger.Logger
}

func NewBootcampService(bootcampRepository store.BootcampRepository, logger *logger.Logger) BootcampService {
	return &bootcampService{
		bootcampRepository: bootcampRepository,
		logger:             logger,
	}
}

func (s *bootcampService) CreateBootcamp(ctx context.Context, bootcamp models.Bootcamp) (models.Bootcamp, error) {
	if bootcamp.Title == "" || bootcamp.Cue == "" || bootcamp.Description == "" {
		logger.FromContext(ctx).Error().Str("func", "*bootcampService.CreateBootcamp").Msg("invalid bootcamp data provided")
		return models.Bootcamp{}, ErrInvalidDataProvided
	}

	created, err := s.bootcampRepository.CreateBootcamp(ctx, bootcamp)
	if err != nil {
		return models.Bootcamp{}, fmt.Errorf("error creating bootcamp: %w", err)
	}

	return created, nil
}

// AddUser enrolls the user. Missing bootcamp wins over missing user.
func (s *bootcampService) AddUser(ctx context.Context, bootcampID, userID int64) error {
	if bootcampID <= 0 || userID <= 0 {
		return ErrInvalidDataProvided
	}

	if err := s.bootcampRepository.AddUser(ctx, bootcampID, userID); err != nil {
		return fmt.Errorf("error adding user to bootcamp: %w", err)
	}

	return nil
}

func (s *bootcampService) GetBootcamp(ctx context.Context, bootcampID int64) (models.Bootcamp, error) {
	if bootcampID <= 0 {
		return models.Bootcamp{}, ErrInvalidDataProvided
	}

	bootcamp, err := s.bootcampRepository.FindBootcampByID(ctx, bootcampID)
	if err != nil {
		return models.Bootcamp{}, fmt.Errorf("error getting bootcamp: %w", err)
	}

	return bootcamp, nil
}

func (s *bootcampService) ListBootcamps(ctx context.Context) ([]models.Bootcamp, error) {
	bootcamps, err := s.bootcampRepository.FindAllBootcamps(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing bootcamps: %w", err)
	}

	return bootcamps, nil
}
