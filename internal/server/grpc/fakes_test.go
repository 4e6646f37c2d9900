package grpc

import (
	"context"

	"github.com/mango-services/loyalty-auth/internal/server/models"
	"github.com/mango-services/loyalty-auth/internal/server/services"
)

type fakeUsers struct {
	result *services.AuthResult
	err    error

	gotEmail, gotPassword, gotName, gotPhone string
	gotAccess, gotRefresh                    string
}

func (f *fakeUsers) Register(ctx context.Context, email, password, name, phone string) (*services.AuthResult, error) {
	f.gotEmail, f.gotPassword, f.gotName, f.gotPhone = email, password, name, phone
	return f.result, f.err
}

func (f *fakeUsers) Login(ctx context.Context, email, password string) (*services.AuthResult, error) {
	f.gotEmail, f.gotPassword = email, password
	return f.result, f.err
}

func (f *fakeUsers) RefreshToken(ctx context.Context, accessToken, refreshToken string) (*services.AuthResult, error) {
	f.gotAccess, f.gotRefresh = accessToken, refreshToken
	return f.result, f.err
}

type fakeRewards struct {
	snap    *models.UserRewardSnapshot
	check   *models.LedgerCheck
	reward  *models.Reward
	list    []*models.Reward
	deleted bool
	key     string
	url     string
	err     error

	gotUserID string
	gotPoints int64
	gotRef    *string
	gotNew    services.NewReward
}

func (f *fakeRewards) EarnPoints(ctx context.Context, userID string, points int64, description string, orderRef *string) (*models.UserRewardSnapshot, error) {
	f.gotUserID, f.gotPoints, f.gotRef = userID, points, orderRef
	return f.snap, f.err
}

func (f *fakeRewards) RedeemPoints(ctx context.Context, userID string, points int64, description string, rewardRef *string) (*models.UserRewardSnapshot, error) {
	f.gotUserID, f.gotPoints, f.gotRef = userID, points, rewardRef
	return f.snap, f.err
}

func (f *fakeRewards) GetUserReward(ctx context.Context, userID string) (*models.UserRewardSnapshot, error) {
	f.gotUserID = userID
	return f.snap, f.err
}

func (f *fakeRewards) CheckLedger(ctx context.Context, userID string) (*models.LedgerCheck, error) {
	f.gotUserID = userID
	return f.check, f.err
}

func (f *fakeRewards) CreateReward(ctx context.Context, in services.NewReward) (*models.Reward, error) {
	f.gotNew = in
	return f.reward, f.err
}

func (f *fakeRewards) DeleteReward(ctx context.Context, id string) (bool, error) {
	return f.deleted, f.err
}

func (f *fakeRewards) ListRewards(ctx context.Context) ([]*models.Reward, error) {
	return f.list, f.err
}

func (f *fakeRewards) GetReward(ctx context.Context, id string) (*models.Reward, error) {
	return f.reward, f.err
}

func (f *fakeRewards) PresignRewardImageUpload(ctx context.Context, rewardID string) (string, string, error) {
	return f.key, f.url, f.err
}

func (f *fakeRewards) PresignRewardImageDownload(ctx context.Context, key string) (string, error) {
	return f.url, f.err
}
