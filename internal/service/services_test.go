package service

import (
	"testing"

	"github.com/MKhiriev/bootcamp-api/internal/logger"
	"github.com/MKhiriev/bootcamp-api/internal/mock"
	"github.com/MKhiriev/bootcamp-api/internal/store"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNewServices_WiresEveryService(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{
		UserRepository:     mock.NewMockUserRepository(ctrl),
		BootcampRepository: mock.NewMockBootcampRepository(ctrl),
	}

	services := NewServices(storages, testAppConfig, logger.Nop())

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.UserService)
	assert.NotNil(t, services.BootcampService)
}
