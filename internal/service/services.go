package service

import (
	"github.com/MKhiriev/bootcamp-api/internal/config"
	"github.com/MKhiriev/bootcamp-api/internal/logger"
	"github.com/MKhiriev/bootcamp-api/internal/store"
)

type Services struct {
	AuthService     AuthService
	UserService     UserService
	BootcampService BootcampService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg, logger),
		UserService:     NewUserService(storages.UserRepository, logger),
		BootcampService: NewBootcampService(storages.BootcampRepository, logger),
	}
}
