// Package grpc exposes the account service over gRPC: the AccountService
// handlers, the unary interceptor chain and the listener lifecycle.
package grpc

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/dmitrijs2005/accountregistry/internal/logging"
	pb "github.com/dmitrijs2005/accountregistry/internal/proto"
	"github.com/dmitrijs2005/accountregistry/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// accountService is the part of services.AccountService the handlers use.
type accountService interface {
	Register(ctx context.Context, email, firstName, lastName, passwordHash string, semester uint16) (*models.Account, error)
	Lookup(ctx context.Context, email string) (*models.Account, error)
}

type GRPCServer struct {
	pb.UnimplementedAccountServiceServer
	address        string
	accounts       accountService
	logger         logging.Logger
	requestTimeout time.Duration
	metrics        *Metrics
}

// NewGRPCServer builds a server bound to address. A zero requestTimeout
// disables the per-call deadline; a nil metrics disables instrumentation.
func NewGRPCServer(address string, l logging.Logger, accounts accountService, requestTimeout time.Duration, metrics *Metrics) (*GRPCServer, error) {
	return &GRPCServer{
		address:        address,
		logger:         l.With("module", "grpc_server"),
		accounts:       accounts,
		requestTimeout: requestTimeout,
		metrics:        metrics,
	}, nil
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then marks the
// health service NOT_SERVING and stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.metricsInterceptor,
		s.loggingInterceptor,
		s.recoveryInterceptor,
		s.timeoutInterceptor,
	))

	pb.RegisterAccountServiceServer(srv, s)

	healthSrv := health.NewServer()
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthSrv.SetServingStatus(pb.AccountService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, healthSrv)

	reflection.Register(srv)

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
		case <-stopped:
			return
		}
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		healthSrv.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}

	return nil
}
