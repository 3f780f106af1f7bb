// Package grpc serves the gRPC health checking protocol of the catalog.
//
// The HTTP API is the only business transport; the gRPC side exists so
// orchestrators can probe readiness with standard grpc_health_v1 clients.
// Server reflection is registered as well, so tools such as grpcurl can
// discover the health service.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
)

// ServiceName is the health service name reported alongside the overall
// ("") status.
const ServiceName = "catalog"

// Handler is the root gRPC transport handler.
//
// It owns the health server whose status is driven by the database health
// probe. A handler instance is created once at startup and shared by the
// gRPC server and the probe worker.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose services start as SERVING.
func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.SetServing(true)
	return h
}

// Register attaches the health and reflection services to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	reflection.Register(server)
}

// SetServing reports the overall and the catalog status as SERVING or
// NOT_SERVING.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

// Shutdown sets every status to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
