package grpc

import (
	"context"
	"time"

	"github.com/mango-services/loyalty-auth/internal/logging"
	pb "github.com/mango-services/loyalty-auth/internal/proto"
	"github.com/mango-services/loyalty-auth/internal/server/models"
	"github.com/mango-services/loyalty-auth/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type rewardSvc interface {
	EarnPoints(ctx context.Context, userID string, points int64, description string, orderRef *string) (*models.UserRewardSnapshot, error)
	RedeemPoints(ctx context.Context, userID string, points int64, description string, rewardRef *string) (*models.UserRewardSnapshot, error)
	GetUserReward(ctx context.Context, userID string) (*models.UserRewardSnapshot, error)
	CheckLedger(ctx context.Context, userID string) (*models.LedgerCheck, error)
	CreateReward(ctx context.Context, in services.NewReward) (*models.Reward, error)
	DeleteReward(ctx context.Context, id string) (bool, error)
	ListRewards(ctx context.Context) ([]*models.Reward, error)
	GetReward(ctx context.Context, id string) (*models.Reward, error)
	PresignRewardImageUpload(ctx context.Context, rewardID string) (string, string, error)
	PresignRewardImageDownload(ctx context.Context, key string) (string, error)
}

// RewardServer implements pb.RewardServiceServer on top of the reward
// service.
type RewardServer struct {
	pb.UnimplementedRewardServiceServer

	rewards rewardSvc
	logger  logging.Logger
}

func NewRewardServer(rs rewardSvc, l logging.Logger) *RewardServer {
	return &RewardServer{rewards: rs, logger: l.With("module", "reward_handler")}
}

// optionalTimestamp maps a nil time to an absent field.
func optionalTimestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func toUserReward(s *models.UserRewardSnapshot) *pb.UserReward {
	ur := s.UserReward
	out := &pb.UserReward{
		Id:              ur.ID,
		UserId:          ur.UserID,
		TotalPoints:     ur.TotalPoints,
		AvailablePoints: ur.AvailablePoints,
		LifetimePoints:  ur.LifetimePointsEarned,
		CreatedAt:       timestamppb.New(ur.CreatedAt),
		UpdatedAt:       optionalTimestamp(ur.UpdatedAt),
		Transactions:    make([]*pb.RewardTransaction, 0, len(s.Transactions)),
	}
	for _, t := range s.Transactions {
		out.Transactions = append(out.Transactions, &pb.RewardTransaction{
			Id:          t.ID,
			UserId:      t.UserID,
			Type:        string(t.Type),
			Points:      t.Points,
			Description: t.Description,
			ReferenceId: t.ReferenceID,
			CreatedAt:   timestamppb.New(t.CreatedAt),
		})
	}
	return out
}

func toReward(r *models.Reward) *pb.Reward {
	return &pb.Reward{
		Id:             r.ID,
		Name:           r.Name,
		Description:    r.Description,
		PointsRequired: r.PointsRequired,
		ImageUrl:       r.ImageURL,
		MaxAvailable:   r.MaxAvailable,
		RedeemedCount:  r.RedeemedCount,
		IsActive:       r.IsActive,
		CreatedAt:      timestamppb.New(r.CreatedAt),
		UpdatedAt:      optionalTimestamp(r.UpdatedAt),
	}
}

func (s *RewardServer) EarnPoints(ctx context.Context, req *pb.EarnPointsRequest) (*pb.UserReward, error) {

	caller, _ := UserIDFromContext(ctx)
	snap, err := s.rewards.EarnPoints(ctx, req.UserId, req.Points, req.Description, req.OrderId)
	if err != nil {
		s.logger.Error(ctx, "earn failed", "user_id", req.UserId, "caller", caller, "error", err)
		return nil, toStatus(err)
	}
	s.logger.Info(ctx, "points earned", "user_id", req.UserId, "caller", caller, "points", req.Points)

	return toUserReward(snap), nil
}

func (s *RewardServer) RedeemPoints(ctx context.Context, req *pb.RedeemPointsRequest) (*pb.UserReward, error) {

	caller, _ := UserIDFromContext(ctx)
	snap, err := s.rewards.RedeemPoints(ctx, req.UserId, req.Points, req.Description, req.RewardId)
	if err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info(ctx, "points redeemed", "user_id", req.UserId, "caller", caller, "points", req.Points)

	return toUserReward(snap), nil
}

func (s *RewardServer) GetUserReward(ctx context.Context, req *pb.UserRewardRequest) (*pb.UserReward, error) {

	snap, err := s.rewards.GetUserReward(ctx, req.UserId)
	if err != nil {
		return nil, toStatus(err)
	}

	return toUserReward(snap), nil
}

func (s *RewardServer) CheckLedger(ctx context.Context, req *pb.UserRewardRequest) (*pb.LedgerCheckResponse, error) {

	c, err := s.rewards.CheckLedger(ctx, req.UserId)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.LedgerCheckResponse{
		UserId:            c.UserID,
		StoredTotal:       c.Stored.TotalPoints,
		StoredAvailable:   c.Stored.AvailablePoints,
		StoredLifetime:    c.Stored.LifetimePointsEarned,
		ComputedTotal:     c.Computed.Total,
		ComputedAvailable: c.Computed.Net,
		ComputedLifetime:  c.Computed.Lifetime,
		Consistent:        c.Consistent(),
	}, nil
}

func (s *RewardServer) CreateReward(ctx context.Context, req *pb.CreateRewardRequest) (*pb.Reward, error) {

	r, err := s.rewards.CreateReward(ctx, services.NewReward{
		Name:           req.Name,
		Description:    req.Description,
		PointsRequired: req.PointsRequired,
		ImageURL:       req.ImageUrl,
		MaxAvailable:   req.MaxAvailable,
	})
	if err != nil {
		s.logger.Error(ctx, "create reward failed", "error", err)
		return nil, toStatus(err)
	}

	return toReward(r), nil
}

func (s *RewardServer) DeleteReward(ctx context.Context, req *pb.RewardIDRequest) (*pb.DeleteRewardResponse, error) {

	deleted, err := s.rewards.DeleteReward(ctx, req.Id)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.DeleteRewardResponse{Deleted: deleted}, nil
}

func (s *RewardServer) ListRewards(ctx context.Context, req *pb.ListRewardsRequest) (*pb.ListRewardsResponse, error) {

	list, err := s.rewards.ListRewards(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	out := &pb.ListRewardsResponse{Rewards: make([]*pb.Reward, 0, len(list))}
	for _, r := range list {
		out.Rewards = append(out.Rewards, toReward(r))
	}
	return out, nil
}

func (s *RewardServer) GetReward(ctx context.Context, req *pb.RewardIDRequest) (*pb.Reward, error) {

	r, err := s.rewards.GetReward(ctx, req.Id)
	if err != nil {
		return nil, toStatus(err)
	}

	return toReward(r), nil
}

func (s *RewardServer) PresignImageUpload(ctx context.Context, req *pb.PresignImageUploadRequest) (*pb.PresignImageUploadResponse, error) {

	key, url, err := s.rewards.PresignRewardImageUpload(ctx, req.RewardId)
	if err != nil {
		s.logger.Error(ctx, "presign upload failed", "reward_id", req.RewardId, "error", err)
		return nil, toStatus(err)
	}

	return &pb.PresignImageUploadResponse{Key: key, Url: url}, nil
}

func (s *RewardServer) PresignImageDownload(ctx context.Context, req *pb.PresignImageDownloadRequest) (*pb.PresignImageDownloadResponse, error) {

	url, err := s.rewards.PresignRewardImageDownload(ctx, req.Key)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.PresignImageDownloadResponse{Url: url}, nil
}

func (s *RewardServer) Health(ctx context.Context, req *pb.HealthRequest) (*pb.HealthResponse, error) {
	return &pb.HealthResponse{Status: "healthy", Service: "RewardAPI"}, nil
}

// RewardProtectedMethods require a valid access token. Catalog reads and
// Health stay public.
var RewardProtectedMethods = map[string]bool{
	pb.RewardService_EarnPoints_FullMethodName:           true,
	pb.RewardService_RedeemPoints_FullMethodName:         true,
	pb.RewardService_GetUserReward_FullMethodName:        true,
	pb.RewardService_CheckLedger_FullMethodName:          true,
	pb.RewardService_CreateReward_FullMethodName:         true,
	pb.RewardService_DeleteReward_FullMethodName:         true,
	pb.RewardService_PresignImageUpload_FullMethodName:   true,
	pb.RewardService_PresignImageDownload_FullMethodName: true,
}
