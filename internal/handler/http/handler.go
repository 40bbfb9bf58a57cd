package http

import (
	"github.com/MKhiriev/bootcamp-api/internal/config"
	"github.com/MKhiriev/bootcamp-api/internal/logger"
	"github.com/MKhiriev/bootcamp-api/internal/service"
	"github.com/MKhiriev/bootcamp-api/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	metrics   *httpMetrics

	cfg    config.Server
	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewRequestValidator(),
		metrics:   newHTTPMetrics(),
		cfg:       cfg,
		logger:    logger,
	}
}
