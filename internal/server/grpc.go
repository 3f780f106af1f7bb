package server

import (
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-starwars-catalog/internal/config"
	myGRPC "github.com/MKhiriev/go-starwars-catalog/internal/handler/grpc"
	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	lis, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: lis,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Err(err).Str("func", "*grpcServer.RunServer").Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
