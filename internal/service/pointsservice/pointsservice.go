package pointsservice

import (
	"context"
	"errors"

	"github.com/foodconnect/api/internal/domain"
	"github.com/foodconnect/api/internal/pg"
	"go.uber.org/zap"
)

type PointsRepo interface {
	AddEntry(ctx context.Context, entry *domain.PointsEntry) (*domain.PointsEntry, error)
	HistoryByUser(ctx context.Context, userID, limit int) ([]domain.PointsEntry, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	IncrementPoints(ctx context.Context, id, points int) error
}

type Service struct {
	pointsRepo PointsRepo
	userRepo   UserRepo
	txManager  pg.TXManager
}

func New(pointsRepo PointsRepo, userRepo UserRepo, txManager pg.TXManager) *Service {
	return &Service{
		pointsRepo: pointsRepo,
		userRepo:   userRepo,
		txManager:  txManager,
	}
}

const historyLimit = 25

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidSource = errors.New("invalid source type")
)

// Award appends a credit ledger entry and bumps the cached balance in one
// transaction, keeping users.points equal to the signed ledger sum.
// Redemption debits go through rewardservice; a reward source is rejected here.
func (s *Service) Award(ctx context.Context, userID, points int, sourceType domain.PointsSource, sourceID int, note string) (*domain.User, error) {
	if !sourceType.Valid() || sourceType == domain.PointsSourceReward {
		return nil, ErrInvalidSource
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := s.pointsRepo.AddEntry(ctx, &domain.PointsEntry{
			UserID:     userID,
			Points:     points,
			SourceType: sourceType,
			SourceID:   sourceID,
			Note:       note,
			Direction:  domain.PointsCredit,
		})
		if err != nil {
			return err
		}
		return s.userRepo.IncrementPoints(ctx, userID, points)
	})
	if err != nil {
		zap.L().Error("can't award points", zap.Error(err))
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	zap.L().Info("points awarded",
		zap.Int("user_id", userID),
		zap.Int("points", points),
		zap.String("source", string(sourceType)))
	return user, nil
}

func (s *Service) Summary(ctx context.Context, userID int) (int, []domain.PointsEntry, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return 0, nil, err
	}
	if user == nil {
		return 0, nil, ErrUserNotFound
	}

	history, err := s.pointsRepo.HistoryByUser(ctx, userID, historyLimit)
	if err != nil {
		zap.L().Error("can't get points history", zap.Error(err))
		return 0, nil, err
	}
	return user.Points, history, nil
}
