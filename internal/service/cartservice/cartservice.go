package cartservice

import (
	"context"
	"errors"

	"github.com/foodconnect/api/internal/domain"
	"go.uber.org/zap"
)

type CartRepo interface {
	GetByUser(ctx context.Context, userID int) ([]domain.CartItem, error)
	Upsert(ctx context.Context, userID, foodID, qty int) error
	Remove(ctx context.Context, userID, foodID int) (bool, error)
}

type FoodRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Food, error)
}

type Service struct {
	cartRepo CartRepo
	foodRepo FoodRepo
}

func New(cartRepo CartRepo, foodRepo FoodRepo) *Service {
	return &Service{
		cartRepo: cartRepo,
		foodRepo: foodRepo,
	}
}

var (
	ErrFoodNotFound = errors.New("food not found")
	ErrItemNotFound = errors.New("cart item not found")
)

func (s *Service) Add(ctx context.Context, userID, foodID, qty int) ([]domain.CartItem, error) {
	food, err := s.foodRepo.FindByID(ctx, foodID)
	if err != nil {
		return nil, err
	}
	if food == nil {
		return nil, ErrFoodNotFound
	}

	if err := s.cartRepo.Upsert(ctx, userID, foodID, qty); err != nil {
		zap.L().Error("can't add cart item", zap.Error(err))
		return nil, err
	}
	return s.cartRepo.GetByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID int) ([]domain.CartItem, error) {
	items, err := s.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		zap.L().Error("can't get cart", zap.Error(err))
		return nil, err
	}
	return items, nil
}

func (s *Service) Remove(ctx context.Context, userID, foodID int) error {
	removed, err := s.cartRepo.Remove(ctx, userID, foodID)
	if err != nil {
		zap.L().Error("can't remove cart item", zap.Error(err))
		return err
	}
	if !removed {
		return ErrItemNotFound
	}
	return nil
}
