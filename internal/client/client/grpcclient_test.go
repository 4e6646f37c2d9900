package client

import (
	"context"
	"net"
	"sync"
	"testing"

	"github.com/mango-services/loyalty-auth/internal/common"
	pb "github.com/mango-services/loyalty-auth/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type fakeAuthServer struct {
	pb.UnimplementedAuthServiceServer

	mu          sync.Mutex
	refreshReqs []*pb.RefreshTokenRequest
	loginErr    error
}

func (f *fakeAuthServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {
	if req.Email == "taken@b.c" {
		return nil, status.Error(codes.AlreadyExists, "already exists")
	}
	return &pb.AuthResponse{UserId: "u1", Email: req.Email, Name: req.Name, AccessToken: "expired", RefreshToken: "r1"}, nil
}

func (f *fakeAuthServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &pb.AuthResponse{UserId: "u1", Email: req.Email, AccessToken: "expired", RefreshToken: "r1"}, nil
}

func (f *fakeAuthServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.AuthResponse, error) {
	f.mu.Lock()
	f.refreshReqs = append(f.refreshReqs, req)
	f.mu.Unlock()
	if req.RefreshToken != "r1" {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}
	return &pb.AuthResponse{UserId: "u1", AccessToken: "fresh", RefreshToken: "r2"}, nil
}

func (f *fakeAuthServer) Health(ctx context.Context, req *pb.HealthRequest) (*pb.HealthResponse, error) {
	return &pb.HealthResponse{Status: "healthy", Service: "AuthAPI"}, nil
}

// fakeRewardServer accepts only the "fresh" access token and reports
// "expired" the way the real server does.
type fakeRewardServer struct {
	pb.UnimplementedRewardServiceServer

	mu         sync.Mutex
	seenTokens []string
}

func (f *fakeRewardServer) check(ctx context.Context) error {
	md, _ := metadata.FromIncomingContext(ctx)
	tok := ""
	if v := md.Get(common.AccessTokenHeaderName); len(v) > 0 {
		tok = v[0]
	}
	f.mu.Lock()
	f.seenTokens = append(f.seenTokens, tok)
	f.mu.Unlock()
	switch tok {
	case "fresh":
		return nil
	case "expired":
		return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	default:
		return status.Error(codes.Unauthenticated, "missing token")
	}
}

func (f *fakeRewardServer) GetUserReward(ctx context.Context, req *pb.UserRewardRequest) (*pb.UserReward, error) {
	if err := f.check(ctx); err != nil {
		return nil, err
	}
	return &pb.UserReward{UserId: req.UserId, AvailablePoints: 60}, nil
}

func (f *fakeRewardServer) RedeemPoints(ctx context.Context, req *pb.RedeemPointsRequest) (*pb.UserReward, error) {
	if err := f.check(ctx); err != nil {
		return nil, err
	}
	return nil, status.Error(codes.FailedPrecondition, "insufficient points")
}

func (f *fakeRewardServer) ListRewards(ctx context.Context, req *pb.ListRewardsRequest) (*pb.ListRewardsResponse, error) {
	return &pb.ListRewardsResponse{Rewards: []*pb.Reward{{Id: "r1", Name: "Mug"}}}, nil
}

func (f *fakeRewardServer) Health(ctx context.Context, req *pb.HealthRequest) (*pb.HealthResponse, error) {
	return &pb.HealthResponse{Status: "healthy", Service: "RewardAPI"}, nil
}

func newTestClient(t *testing.T) (*GRPCClient, *fakeAuthServer, *fakeRewardServer) {
	t.Helper()

	fa, fr := &fakeAuthServer{}, &fakeRewardServer{}
	listeners := map[string]*bufconn.Listener{
		"auth":    bufconn.Listen(1 << 20),
		"rewards": bufconn.Listen(1 << 20),
	}

	authSrv := grpc.NewServer()
	pb.RegisterAuthServiceServer(authSrv, fa)
	rewardSrv := grpc.NewServer()
	pb.RegisterRewardServiceServer(rewardSrv, fr)
	go func() { _ = authSrv.Serve(listeners["auth"]) }()
	go func() { _ = rewardSrv.Serve(listeners["rewards"]) }()

	c, err := NewGRPCClient("passthrough:///auth", "passthrough:///rewards",
		grpc.WithContextDialer(func(ctx context.Context, addr string) (net.Conn, error) {
			return listeners[addr].DialContext(ctx)
		}))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
		authSrv.Stop()
		rewardSrv.Stop()
	})
	return c, fa, fr
}

func TestGRPCClient_RefreshesExpiredTokenOnce(t *testing.T) {
	c, fa, fr := newTestClient(t)
	ctx := context.Background()

	var refreshed *pb.AuthResponse
	c.OnRefresh(func(r *pb.AuthResponse) { refreshed = r })

	_, err := c.Login(ctx, "a@b.c", []byte("pw"))
	require.NoError(t, err)

	ur, err := c.GetUserReward(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(60), ur.AvailablePoints)

	assert.Equal(t, []string{"expired", "fresh"}, fr.seenTokens)
	require.Len(t, fa.refreshReqs, 1)
	assert.Equal(t, "expired", fa.refreshReqs[0].AccessToken)
	assert.Equal(t, "r1", fa.refreshReqs[0].RefreshToken)

	require.NotNil(t, refreshed)
	access, refresh := c.tokens()
	assert.Equal(t, "fresh", access)
	assert.Equal(t, "r2", refresh)
}

func TestGRPCClient_ConcurrentExpiredCallsRefreshOnce(t *testing.T) {
	c, fa, _ := newTestClient(t)
	c.SetTokens("expired", "r1")

	const callers = 8
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.GetUserReward(context.Background(), "u1")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	fa.mu.Lock()
	defer fa.mu.Unlock()
	require.Len(t, fa.refreshReqs, 1)
	assert.Equal(t, "r1", fa.refreshReqs[0].RefreshToken)
}

func TestGRPCClient_NoTokenIsUnauthorized(t *testing.T) {
	c, fa, _ := newTestClient(t)

	_, err := c.GetUserReward(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, fa.refreshReqs)
}

func TestGRPCClient_FailedRefreshIsUnauthorized(t *testing.T) {
	c, _, _ := newTestClient(t)
	c.SetTokens("expired", "stale")

	_, err := c.GetUserReward(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGRPCClient_ErrorMapping(t *testing.T) {
	c, fa, _ := newTestClient(t)
	ctx := context.Background()

	_, err := c.Register(ctx, "taken@b.c", []byte("pw"), "Ann", "")
	assert.ErrorIs(t, err, ErrConflict)

	c.SetTokens("fresh", "r1")
	_, err = c.RedeemPoints(ctx, &pb.RedeemPointsRequest{UserId: "u1", Points: 500})
	assert.ErrorIs(t, err, ErrNotEligible)

	fa.loginErr = status.Error(codes.ResourceExhausted, "too many requests")
	_, err = c.Login(ctx, "a@b.c", []byte("pw"))
	assert.ErrorIs(t, err, ErrTooManyRequests)
}

func TestGRPCClient_PublicCalls(t *testing.T) {
	c, _, _ := newTestClient(t)
	ctx := context.Background()

	list, err := c.ListRewards(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Mug", list[0].Name)

	a, r, err := c.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "AuthAPI", a.Service)
	assert.Equal(t, "RewardAPI", r.Service)
}

func TestGRPCClient_RefreshWithoutSession(t *testing.T) {
	c, _, _ := newTestClient(t)
	_, err := c.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}
