package grpc

import (
	"context"

	"github.com/mango-services/loyalty-auth/internal/logging"
	pb "github.com/mango-services/loyalty-auth/internal/proto"
	"github.com/mango-services/loyalty-auth/internal/server/services"
)

type userSvc interface {
	Register(ctx context.Context, email, password, name, phone string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	RefreshToken(ctx context.Context, accessToken, refreshToken string) (*services.AuthResult, error)
}

// AuthServer implements pb.AuthServiceServer on top of the user service.
type AuthServer struct {
	pb.UnimplementedAuthServiceServer

	users  userSvc
	logger logging.Logger
}

func NewAuthServer(us userSvc, l logging.Logger) *AuthServer {
	return &AuthServer{users: us, logger: l.With("module", "auth_handler")}
}

func toAuthResponse(r *services.AuthResult) *pb.AuthResponse {
	return &pb.AuthResponse{
		UserId:       r.UserID,
		Email:        r.Email,
		Name:         r.Name,
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
	}
}

func (s *AuthServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {

	s.logger.Info(ctx, "Registration request", "email", req.Email)

	result, err := s.users.Register(ctx, req.Email, req.Password, req.Name, req.PhoneNumber)
	if err != nil {
		s.logger.Error(ctx, "registration failed", "email", req.Email, "error", err)
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Registered", "user_id", result.UserID)
	return toAuthResponse(result), nil
}

func (s *AuthServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {

	result, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}

	return toAuthResponse(result), nil
}

func (s *AuthServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.AuthResponse, error) {

	result, err := s.users.RefreshToken(ctx, req.AccessToken, req.RefreshToken)
	if err != nil {
		return nil, toStatus(err)
	}

	return toAuthResponse(result), nil
}

func (s *AuthServer) Health(ctx context.Context, req *pb.HealthRequest) (*pb.HealthResponse, error) {
	return &pb.HealthResponse{Status: "healthy", Service: "AuthAPI"}, nil
}

// AuthThrottledMethods are rate limited per peer.
var AuthThrottledMethods = map[string]bool{
	pb.AuthService_Register_FullMethodName:     true,
	pb.AuthService_Login_FullMethodName:        true,
	pb.AuthService_RefreshToken_FullMethodName: true,
}
