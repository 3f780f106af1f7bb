package http

import (
	"time"

	"github.com/MKhiriev/go-starwars-catalog/internal/admin"
	"github.com/MKhiriev/go-starwars-catalog/internal/config"
	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
	"github.com/MKhiriev/go-starwars-catalog/internal/service"
	"github.com/MKhiriev/go-starwars-catalog/internal/utils"
	"github.com/MKhiriev/go-starwars-catalog/internal/validators"
)

type Handler struct {
	services  *service.Services
	admin     *admin.Registry
	validator validators.Validator
	traceIDs  *utils.UUIDGenerator

	// requestTimeout bounds a request when positive.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, registry *admin.Registry, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		admin:          registry,
		validator:      validators.NewRequestValidator(),
		traceIDs:       utils.NewUUIDGenerator(),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
