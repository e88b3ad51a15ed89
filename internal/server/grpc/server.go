// Package grpc runs the standard grpc.health.v1 service next to the HTTP API.
// The serving status follows the credential store: SERVING while it answers
// pings, NOT_SERVING otherwise.
package grpc

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// ServiceName is the name reported next to the overall ("") status.
const ServiceName = "gophauth.Auth"

type Pinger interface {
	Ping(ctx context.Context) error
}

type GRPCServer struct {
	address  string
	store    Pinger
	interval time.Duration
	health   *health.Server
	logger   logging.Logger
}

func NewGRPCServer(a string, store Pinger, interval time.Duration, l logging.Logger) *GRPCServer {
	return &GRPCServer{
		address:  a,
		store:    store,
		interval: interval,
		health:   health.NewServer(),
		logger:   l.With("module", "grpc_server"),
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))
	healthpb.RegisterHealthServer(srv, s.health)

	s.check(ctx)
	go s.watch(ctx)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
