package client

import (
	"context"

	pb "github.com/mango-services/loyalty-auth/internal/proto"
)

type Client interface {
	Close() error
	SetTokens(accessToken, refreshToken string)
	Register(ctx context.Context, email string, password []byte, name, phone string) (*pb.AuthResponse, error)
	Login(ctx context.Context, email string, password []byte) (*pb.AuthResponse, error)
	Refresh(ctx context.Context) (*pb.AuthResponse, error)
	Health(ctx context.Context) (auth *pb.HealthResponse, rewards *pb.HealthResponse, err error)
	GetUserReward(ctx context.Context, userID string) (*pb.UserReward, error)
	EarnPoints(ctx context.Context, req *pb.EarnPointsRequest) (*pb.UserReward, error)
	RedeemPoints(ctx context.Context, req *pb.RedeemPointsRequest) (*pb.UserReward, error)
	CheckLedger(ctx context.Context, userID string) (*pb.LedgerCheckResponse, error)
	ListRewards(ctx context.Context) ([]*pb.Reward, error)
	CreateReward(ctx context.Context, req *pb.CreateRewardRequest) (*pb.Reward, error)
	DeleteReward(ctx context.Context, id string) (bool, error)
	PresignImageUpload(ctx context.Context, rewardID string) (key string, url string, err error)
	PresignImageDownload(ctx context.Context, key string) (string, error)
}
