package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mango-services/loyalty-auth/internal/common"
	"github.com/mango-services/loyalty-auth/internal/dbx"
	"github.com/mango-services/loyalty-auth/internal/logging"
	"github.com/mango-services/loyalty-auth/internal/server/models"
	"github.com/mango-services/loyalty-auth/internal/server/repositories/repomanager"
	"github.com/mango-services/loyalty-auth/internal/timex"
)

// NewReward carries the fields of a catalog item to create.
type NewReward struct {
	Name           string
	Description    string
	PointsRequired int64
	ImageURL       *string
	MaxAvailable   *int64
}

// RewardService keeps the point ledger and the reward catalog. Balance
// counters are stored denormalized and updated in the same transaction as
// the ledger append; CheckLedger compares them with the log.
type RewardService struct {
	db          *sql.DB
	repomanager repomanager.RewardRepositories
	images      ImageStore
	clock       timex.Clock
	logger      logging.Logger
}

func NewRewardService(db *sql.DB, m repomanager.RewardRepositories, images ImageStore,
	clock timex.Clock, logger logging.Logger) *RewardService {

	if clock == nil {
		clock = timex.SystemClock{}
	}
	return &RewardService{
		db:          db,
		repomanager: m,
		images:      images,
		clock:       clock,
		logger:      logger.With("module", "rewards"),
	}
}

// EarnPoints credits points to userID, creating the balance on first use.
func (s *RewardService) EarnPoints(ctx context.Context, userID string, points int64,
	description string, orderRef *string) (*models.UserRewardSnapshot, error) {

	if points <= 0 {
		s.logger.Warn(ctx, "non-positive earn accepted", "user_id", userID, "points", points)
	}

	var snapshot *models.UserRewardSnapshot

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		now := s.clock.Now()

		ur, err := s.repomanager.UserRewards(tx).Credit(ctx, uuid.NewString(), userID, points, now)
		if err != nil {
			return err
		}

		snapshot, err = s.appendAndSnapshot(ctx, tx, ur, &models.RewardTransaction{
			Points:      points,
			Type:        models.TransactionEarned,
			Description: description,
			ReferenceID: orderRef,
			CreatedAt:   now,
		})
		return err
	})

	if err != nil {
		return nil, fmt.Errorf("error earning points: %w", err)
	}

	s.logger.Info(ctx, "points earned", "user_id", userID, "points", points,
		"available", snapshot.UserReward.AvailablePoints)

	return snapshot, nil
}

// RedeemPoints debits points from the available balance. It returns
// common.ErrorNotEligible when the user is untracked or the balance is short;
// the stored balance is then unchanged.
func (s *RewardService) RedeemPoints(ctx context.Context, userID string, points int64,
	description string, rewardRef *string) (*models.UserRewardSnapshot, error) {

	if points <= 0 {
		s.logger.Warn(ctx, "non-positive redeem accepted", "user_id", userID, "points", points)
	}

	var snapshot *models.UserRewardSnapshot

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		now := s.clock.Now()

		ur, err := s.repomanager.UserRewards(tx).Debit(ctx, userID, points, now)
		if err != nil {
			return err
		}

		snapshot, err = s.appendAndSnapshot(ctx, tx, ur, &models.RewardTransaction{
			Points:      -points,
			Type:        models.TransactionRedeemed,
			Description: description,
			ReferenceID: rewardRef,
			CreatedAt:   now,
		})
		return err
	})

	if err != nil {
		if errors.Is(err, common.ErrorNotEligible) {
			s.logger.Info(ctx, "redeem not eligible", "user_id", userID, "points", points)
			return nil, common.ErrorNotEligible
		}
		return nil, fmt.Errorf("error redeeming points: %w", err)
	}

	s.logger.Info(ctx, "points redeemed", "user_id", userID, "points", points,
		"available", snapshot.UserReward.AvailablePoints)

	return snapshot, nil
}

func (s *RewardService) appendAndSnapshot(ctx context.Context, tx dbx.DBTX, ur *models.UserReward,
	t *models.RewardTransaction) (*models.UserRewardSnapshot, error) {

	t.ID = uuid.NewString()
	t.UserRewardID = ur.ID
	t.UserID = ur.UserID

	txRepo := s.repomanager.RewardTransactions(tx)
	if err := txRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	history, err := txRepo.ListByUserRewardID(ctx, ur.ID)
	if err != nil {
		return nil, err
	}

	return &models.UserRewardSnapshot{UserReward: ur, Transactions: history}, nil
}

// GetUserReward returns the balance and history of userID, or
// common.ErrorNotFound for untracked users.
func (s *RewardService) GetUserReward(ctx context.Context, userID string) (*models.UserRewardSnapshot, error) {
	ur, err := s.repomanager.UserRewards(s.db).GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	history, err := s.repomanager.RewardTransactions(s.db).ListByUserRewardID(ctx, ur.ID)
	if err != nil {
		return nil, err
	}

	return &models.UserRewardSnapshot{UserReward: ur, Transactions: history}, nil
}

// CheckLedger recomputes the balances of userID from its transactions and
// reports them next to the stored counters. Drift is logged, not repaired.
func (s *RewardService) CheckLedger(ctx context.Context, userID string) (*models.LedgerCheck, error) {
	var check *models.LedgerCheck

	opts := &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	err := dbx.WithTx(ctx, s.db, opts, func(ctx context.Context, tx dbx.DBTX) error {
		ur, err := s.repomanager.UserRewards(tx).GetByUserID(ctx, userID)
		if err != nil {
			return err
		}

		sums, err := s.repomanager.RewardTransactions(tx).Sums(ctx, ur.ID)
		if err != nil {
			return err
		}

		check = &models.LedgerCheck{UserID: userID, Stored: *ur, Computed: sums}
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error checking ledger: %w", err)
	}

	if !check.Consistent() {
		s.logger.Warn(ctx, "ledger drift detected", "user_id", userID,
			"stored_total", check.Stored.TotalPoints, "computed_total", check.Computed.Total,
			"stored_available", check.Stored.AvailablePoints, "computed_available", check.Computed.Net,
			"stored_lifetime", check.Stored.LifetimePointsEarned, "computed_lifetime", check.Computed.Lifetime)
	}

	return check, nil
}

// CreateReward adds an active catalog item.
func (s *RewardService) CreateReward(ctx context.Context, in NewReward) (*models.Reward, error) {
	reward := &models.Reward{
		ID:             uuid.NewString(),
		Name:           in.Name,
		Description:    in.Description,
		PointsRequired: in.PointsRequired,
		ImageURL:       in.ImageURL,
		IsActive:       true,
		MaxAvailable:   in.MaxAvailable,
		CreatedAt:      s.clock.Now(),
	}

	if err := s.repomanager.Rewards(s.db).Create(ctx, reward); err != nil {
		return nil, fmt.Errorf("error creating reward: %w", err)
	}

	s.logger.Info(ctx, "reward created", "reward_id", reward.ID, "name", reward.Name)

	return reward, nil
}

// DeleteReward removes a catalog item and reports whether it existed.
func (s *RewardService) DeleteReward(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}
	ok, err := s.repomanager.Rewards(s.db).Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("error deleting reward: %w", err)
	}
	return ok, nil
}

// ListRewards returns the active catalog.
func (s *RewardService) ListRewards(ctx context.Context) ([]*models.Reward, error) {
	return s.repomanager.Rewards(s.db).List(ctx)
}

// GetReward returns common.ErrorNotFound for unknown ids, including ids that
// are not UUIDs.
func (s *RewardService) GetReward(ctx context.Context, id string) (*models.Reward, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}
	return s.repomanager.Rewards(s.db).GetByID(ctx, id)
}

// PresignRewardImageUpload returns a fresh object key for the image of
// rewardID and a presigned URL to PUT it to.
func (s *RewardService) PresignRewardImageUpload(ctx context.Context, rewardID string) (string, string, error) {
	if _, err := s.GetReward(ctx, rewardID); err != nil {
		return "", "", err
	}
	return s.images.PresignUpload(ctx, rewardID)
}

// PresignRewardImageDownload returns a presigned GET URL for key.
func (s *RewardService) PresignRewardImageDownload(ctx context.Context, key string) (string, error) {
	return s.images.PresignDownload(ctx, key)
}
