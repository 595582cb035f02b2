// Package grpc exposes the authority services over gRPC with device-token
// authentication.
package grpc

import (
	"context"
	"errors"
	"net"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	"github.com/dmitrijs2005/gophscan/internal/clock"
	"github.com/dmitrijs2005/gophscan/internal/logging"
	pb "github.com/dmitrijs2005/gophscan/internal/proto"
	"github.com/dmitrijs2005/gophscan/internal/server/services"
)

type GRPCServer struct {
	pb.UnimplementedAuthorityServiceServer
	address     string
	redemptions *services.RedemptionService
	catalog     *services.CatalogService
	clk         clock.Clock
	logger      logging.Logger
	jwtSecret   []byte
}

func NewGRPCServer(address string, l logging.Logger, rs *services.RedemptionService, cs *services.CatalogService, clk clock.Clock, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:     address,
		redemptions: rs,
		catalog:     cs,
		clk:         clk,
		logger:      l.With("module", "grpc_server"),
		jwtSecret:   []byte(secretKey),
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.deviceTokenInterceptor),
	)
	pb.RegisterAuthorityServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "stopping gRPC server")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "starting gRPC server", "address", lis.Addr().String())
	if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}
