package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/mango-services/loyalty-auth/internal/common"
	pb "github.com/mango-services/loyalty-auth/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	authConn   *grpc.ClientConn
	rewardConn *grpc.ClientConn
	auth       pb.AuthServiceClient
	rewards    pb.RewardServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	onRefresh    func(*pb.AuthResponse)

	// refreshMu serializes token refreshes; a refresh token is single use.
	refreshMu sync.Mutex
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

// SetTokens installs a token pair, e.g. one restored from a saved session.
func (s *GRPCClient) SetTokens(accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = accessToken, refreshToken
}

// OnRefresh registers fn to be called after a transparent token refresh.
func (s *GRPCClient) OnRefresh(fn func(*pb.AuthResponse)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRefresh = fn
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	access, refresh := s.tokens()
	if access != "" {
		ctx = withAccessToken(ctx, access)
	}

	err := invoker(ctx, method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" {
		return err
	}

	fresh, err := s.refreshExpired(ctx, access)
	if err != nil {
		return err
	}

	// tokens refreshed, retry once with the new access token
	ctx = withAccessToken(ctx, fresh)
	return invoker(ctx, method, req, reply, cc, opts...)
}

// refreshExpired returns an access token to replace stale. When another call
// already refreshed while this one waited, its token is reused.
func (s *GRPCClient) refreshExpired(ctx context.Context, stale string) (string, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	access, refresh := s.tokens()
	if access != stale && access != "" {
		return access, nil
	}
	if refresh == "" {
		return "", status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	}

	resp, err := s.refresh(ctx, access, refresh)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

func (s *GRPCClient) refresh(ctx context.Context, access, refresh string) (*pb.AuthResponse, error) {
	resp, err := s.auth.RefreshToken(ctx, &pb.RefreshTokenRequest{AccessToken: access, RefreshToken: refresh})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.accessToken, s.refreshToken = resp.AccessToken, resp.RefreshToken
	fn := s.onRefresh
	s.mu.Unlock()

	if fn != nil {
		fn(resp)
	}
	return resp, nil
}

// NewGRPCClient connects to both servers. Extra dial options are appended
// to the defaults (insecure transport).
func NewGRPCClient(authAddr, rewardAddr string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{}

	base := append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	authConn, err := grpc.NewClient(authAddr, base...)
	if err != nil {
		return nil, err
	}

	rewardOpts := append(append([]grpc.DialOption{}, base...), grpc.WithUnaryInterceptor(c.accessTokenInterceptor))
	rewardConn, err := grpc.NewClient(rewardAddr, rewardOpts...)
	if err != nil {
		_ = authConn.Close()
		return nil, err
	}

	c.authConn, c.rewardConn = authConn, rewardConn
	c.auth = pb.NewAuthServiceClient(authConn)
	c.rewards = pb.NewRewardServiceClient(rewardConn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	err := s.rewardConn.Close()
	if cerr := s.authConn.Close(); err == nil {
		err = cerr
	}
	return err
}

func (s *GRPCClient) remember(resp *pb.AuthResponse) {
	s.SetTokens(resp.AccessToken, resp.RefreshToken)
}

func (s *GRPCClient) Register(ctx context.Context, email string, password []byte, name, phone string) (*pb.AuthResponse, error) {

	req := &pb.RegisterRequest{Email: email, Password: string(password), Name: name, PhoneNumber: phone}

	resp, err := s.auth.Register(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	s.remember(resp)
	return resp, nil
}

func (s *GRPCClient) Login(ctx context.Context, email string, password []byte) (*pb.AuthResponse, error) {

	resp, err := s.auth.Login(ctx, &pb.LoginRequest{Email: email, Password: string(password)})
	if err != nil {
		return nil, s.mapError(err)
	}

	s.remember(resp)
	return resp, nil
}

// Refresh exchanges the current refresh token for a new pair.
func (s *GRPCClient) Refresh(ctx context.Context) (*pb.AuthResponse, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	access, refresh := s.tokens()
	if refresh == "" {
		return nil, ErrUnauthorized
	}
	resp, err := s.refresh(ctx, access, refresh)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Health(ctx context.Context) (*pb.HealthResponse, *pb.HealthResponse, error) {
	a, err := s.auth.Health(ctx, &pb.HealthRequest{})
	if err != nil {
		return nil, nil, s.mapError(err)
	}
	r, err := s.rewards.Health(ctx, &pb.HealthRequest{})
	if err != nil {
		return a, nil, s.mapError(err)
	}
	return a, r, nil
}

func (s *GRPCClient) GetUserReward(ctx context.Context, userID string) (*pb.UserReward, error) {
	resp, err := s.rewards.GetUserReward(ctx, &pb.UserRewardRequest{UserId: userID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) EarnPoints(ctx context.Context, req *pb.EarnPointsRequest) (*pb.UserReward, error) {
	resp, err := s.rewards.EarnPoints(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) RedeemPoints(ctx context.Context, req *pb.RedeemPointsRequest) (*pb.UserReward, error) {
	resp, err := s.rewards.RedeemPoints(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) CheckLedger(ctx context.Context, userID string) (*pb.LedgerCheckResponse, error) {
	resp, err := s.rewards.CheckLedger(ctx, &pb.UserRewardRequest{UserId: userID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ListRewards(ctx context.Context) ([]*pb.Reward, error) {
	resp, err := s.rewards.ListRewards(ctx, &pb.ListRewardsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Rewards, nil
}

func (s *GRPCClient) CreateReward(ctx context.Context, req *pb.CreateRewardRequest) (*pb.Reward, error) {
	resp, err := s.rewards.CreateReward(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) DeleteReward(ctx context.Context, id string) (bool, error) {
	resp, err := s.rewards.DeleteReward(ctx, &pb.RewardIDRequest{Id: id})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.Deleted, nil
}

func (s *GRPCClient) PresignImageUpload(ctx context.Context, rewardID string) (string, string, error) {
	resp, err := s.rewards.PresignImageUpload(ctx, &pb.PresignImageUploadRequest{RewardId: rewardID})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.Key, resp.Url, nil
}

func (s *GRPCClient) PresignImageDownload(ctx context.Context, key string) (string, error) {
	resp, err := s.rewards.PresignImageDownload(ctx, &pb.PresignImageDownloadRequest{Key: key})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Url, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.AlreadyExists:
		return ErrConflict
	case codes.FailedPrecondition:
		return ErrNotEligible
	case codes.NotFound:
		return ErrNotFound
	case codes.ResourceExhausted:
		return ErrTooManyRequests
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
