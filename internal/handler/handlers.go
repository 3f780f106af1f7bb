package handler

import (
	"github.com/MKhiriev/go-starwars-catalog/internal/admin"
	"github.com/MKhiriev/go-starwars-catalog/internal/config"
	"github.com/MKhiriev/go-starwars-catalog/internal/handler/grpc"
	"github.com/MKhiriev/go-starwars-catalog/internal/handler/http"
	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
	"github.com/MKhiriev/go-starwars-catalog/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, registry *admin.Registry, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Port > 0 {
		handlers.HTTP = http.NewHandler(services, registry, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
