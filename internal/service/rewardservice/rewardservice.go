package rewardservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/foodconnect/api/internal/domain"
	"github.com/foodconnect/api/internal/pg"
	"go.uber.org/zap"
)

type RewardRepo interface {
	List(ctx context.Context) ([]domain.Reward, error)
	FindByID(ctx context.Context, id int) (*domain.Reward, error)
	Create(ctx context.Context, reward *domain.Reward) (*domain.Reward, error)
	Update(ctx context.Context, id int, patch domain.RewardPatch) (*domain.Reward, error)
	Delete(ctx context.Context, id int) (bool, error)
	DecrementInventory(ctx context.Context, id int) (bool, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	DebitPoints(ctx context.Context, id, points int) (bool, error)
}

type PointsRepo interface {
	AddEntry(ctx context.Context, entry *domain.PointsEntry) (*domain.PointsEntry, error)
}

type Service struct {
	rewardRepo RewardRepo
	userRepo   UserRepo
	pointsRepo PointsRepo
	txManager  pg.TXManager
}

func New(rewardRepo RewardRepo, userRepo UserRepo, pointsRepo PointsRepo, txManager pg.TXManager) *Service {
	return &Service{
		rewardRepo: rewardRepo,
		userRepo:   userRepo,
		pointsRepo: pointsRepo,
		txManager:  txManager,
	}
}

var (
	ErrRewardNotFound  = errors.New("reward not available")
	ErrUserNotFound    = errors.New("user not found")
	ErrNotEnoughPoints = errors.New("not enough points to redeem")
	ErrOutOfStock      = errors.New("reward is out of stock")
)

func (s *Service) List(ctx context.Context) ([]domain.Reward, error) {
	rewards, err := s.rewardRepo.List(ctx)
	if err != nil {
		zap.L().Error("can't list rewards", zap.Error(err))
		return nil, err
	}
	return rewards, nil
}

func (s *Service) Create(ctx context.Context, reward *domain.Reward) (*domain.Reward, error) {
	created, err := s.rewardRepo.Create(ctx, reward)
	if err != nil {
		zap.L().Error("can't create reward", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int, patch domain.RewardPatch) (*domain.Reward, error) {
	existing, err := s.rewardRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrRewardNotFound
	}
	reward, err := s.rewardRepo.Update(ctx, id, patch)
	if err != nil {
		zap.L().Error("can't update reward", zap.Error(err))
		return nil, err
	}
	return reward, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	deleted, err := s.rewardRepo.Delete(ctx, id)
	if err != nil {
		zap.L().Error("can't delete reward", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrRewardNotFound
	}
	return nil
}

// Redeem exchanges points for one unit of a reward. The inventory decrement,
// the points debit and the ledger entry commit together or not at all. Both
// updates are conditional, so two users racing for the last unit (or one user
// racing two redemptions against the same balance) cannot oversell inventory
// or drive the balance negative: the losing transaction sees zero rows
// affected and rolls back.
func (s *Service) Redeem(ctx context.Context, userID, rewardID int) (*domain.Reward, *domain.User, error) {
	reward, err := s.rewardRepo.FindByID(ctx, rewardID)
	if err != nil {
		return nil, nil, err
	}
	if reward == nil || !reward.IsActive {
		return nil, nil, ErrRewardNotFound
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}
	if user.Points < reward.PointsRequired {
		return nil, nil, ErrNotEnoughPoints
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		decremented, err := s.rewardRepo.DecrementInventory(ctx, rewardID)
		if err != nil {
			return err
		}
		if !decremented {
			return ErrOutOfStock
		}

		debited, err := s.userRepo.DebitPoints(ctx, userID, reward.PointsRequired)
		if err != nil {
			return err
		}
		if !debited {
			return ErrNotEnoughPoints
		}

		_, err = s.pointsRepo.AddEntry(ctx, &domain.PointsEntry{
			UserID:     userID,
			Points:     reward.PointsRequired,
			SourceType: domain.PointsSourceReward,
			SourceID:   rewardID,
			Note:       fmt.Sprintf("Redeemed %s", reward.Title),
			Direction:  domain.PointsDebit,
		})
		return err
	})
	if err != nil {
		zap.L().Info("redemption failed", zap.Int("user_id", userID), zap.Int("reward_id", rewardID), zap.Error(err))
		return nil, nil, err
	}

	updatedReward, err := s.rewardRepo.FindByID(ctx, rewardID)
	if err != nil {
		return nil, nil, err
	}
	updatedUser, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	zap.L().Info("reward redeemed",
		zap.Int("user_id", userID),
		zap.Int("reward_id", rewardID),
		zap.Int("points", reward.PointsRequired))
	return updatedReward, updatedUser, nil
}
