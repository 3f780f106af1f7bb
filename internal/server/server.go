package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-starwars-catalog/internal/config"
	"github.com/MKhiriev/go-starwars-catalog/internal/handler"
	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
	"github.com/MKhiriev/go-starwars-catalog/internal/workers"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	workers    *workers.Workers
	logger     *logger.Logger
}

// NewServer creates the servers enabled by cfg. When the gRPC server is
// enabled, db is probed every cfg.Workers.HealthInterval and the result
// drives the gRPC health status.
func NewServer(handlers *handler.Handlers, db workers.Pinger, cfg *config.StructuredConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg.Server, logger)
	}
	if handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg.Server, logger)
		if err != nil {
			return nil, err
		}
		servers.gRPCServer = grpcSrv
		servers.workers = workers.NewWorkers(
			workers.NewHealthProbe(db, handlers.GRPC, cfg.Workers.HealthInterval, logger),
		)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

func (s *server) run() error {
	// check if any server was created
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersToRun
	}

	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	workersDone := make(chan struct{})
	if s.workers != nil {
		go func() {
			s.workers.Run(ctx)
			close(workersDone)
		}()
	} else {
		close(workersDone)
	}

	// listen for stop signals
	go func() {
		<-ctx.Done()

		// finish started servers
		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	// launch all created servers
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		go s.httpServer.RunServer()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		go s.gRPCServer.RunServer()
	}

	<-idleConnectionsClosed
	<-workersDone
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
