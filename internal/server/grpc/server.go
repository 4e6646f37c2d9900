// Package grpc exposes the auth and reward services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/mango-services/loyalty-auth/internal/logging"
	"google.golang.org/grpc"
)

// Server owns one gRPC listener with a fixed interceptor chain.
type Server struct {
	address      string
	logger       logging.Logger
	register     func(grpc.ServiceRegistrar)
	interceptors []grpc.UnaryServerInterceptor
}

// NewServer prepares a server on address. register is called once with the
// underlying grpc.Server before it starts serving.
func NewServer(address string, l logging.Logger, register func(grpc.ServiceRegistrar),
	interceptors ...grpc.UnaryServerInterceptor) *Server {

	return &Server{
		address:      address,
		logger:       l.With("module", "grpc_server"),
		register:     register,
		interceptors: interceptors,
	}
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *Server) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *Server) serve(ctx context.Context, listen net.Listener) error {

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.interceptors...))
	s.register(srv)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
