package gameservice

import (
	"context"
	"errors"

	"github.com/foodconnect/api/internal/domain"
	"go.uber.org/zap"
)

type GameRepo interface {
	List(ctx context.Context, includeInactive bool) ([]domain.Game, error)
	FindByID(ctx context.Context, id int) (*domain.Game, error)
	Create(ctx context.Context, game *domain.Game) (*domain.Game, error)
	Update(ctx context.Context, id int, patch domain.GamePatch) (*domain.Game, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type Service struct {
	gameRepo GameRepo
}

func New(gameRepo GameRepo) *Service {
	return &Service{
		gameRepo: gameRepo,
	}
}

var ErrGameNotFound = errors.New("game not found")

func (s *Service) List(ctx context.Context) ([]domain.Game, error) {
	games, err := s.gameRepo.List(ctx, false)
	if err != nil {
		zap.L().Error("can't list games", zap.Error(err))
		return nil, err
	}
	return games, nil
}

func (s *Service) Create(ctx context.Context, game *domain.Game) (*domain.Game, error) {
	game.IsActive = true
	created, err := s.gameRepo.Create(ctx, game)
	if err != nil {
		zap.L().Error("can't create game", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int, patch domain.GamePatch) (*domain.Game, error) {
	existing, err := s.gameRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrGameNotFound
	}
	game, err := s.gameRepo.Update(ctx, id, patch)
	if err != nil {
		zap.L().Error("can't update game", zap.Error(err))
		return nil, err
	}
	return game, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	deleted, err := s.gameRepo.Delete(ctx, id)
	if err != nil {
		zap.L().Error("can't delete game", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrGameNotFound
	}
	return nil
}
