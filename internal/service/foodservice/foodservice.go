package foodservice

import (
	"context"
	"errors"

	"github.com/foodconnect/api/internal/domain"
	"go.uber.org/zap"
)

type FoodRepo interface {
	List(ctx context.Context, filter domain.FoodFilter) ([]domain.Food, error)
	FindByID(ctx context.Context, id int) (*domain.Food, error)
	Create(ctx context.Context, food *domain.Food) (*domain.Food, error)
	Update(ctx context.Context, id int, patch domain.FoodPatch) (*domain.Food, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type Service struct {
	foodRepo FoodRepo
}

func New(foodRepo FoodRepo) *Service {
	return &Service{
		foodRepo: foodRepo,
	}
}

var ErrFoodNotFound = errors.New("food not found")

func (s *Service) List(ctx context.Context, filter domain.FoodFilter) ([]domain.Food, error) {
	foods, err := s.foodRepo.List(ctx, filter)
	if err != nil {
		zap.L().Error("can't list foods", zap.Error(err))
		return nil, err
	}
	return foods, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Food, error) {
	food, err := s.foodRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't get food", zap.Error(err))
		return nil, err
	}
	if food == nil {
		return nil, ErrFoodNotFound
	}
	return food, nil
}

func (s *Service) Create(ctx context.Context, food *domain.Food) (*domain.Food, error) {
	created, err := s.foodRepo.Create(ctx, food)
	if err != nil {
		zap.L().Error("can't create food", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int, patch domain.FoodPatch) (*domain.Food, error) {
	existing, err := s.foodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrFoodNotFound
	}
	food, err := s.foodRepo.Update(ctx, id, patch)
	if err != nil {
		zap.L().Error("can't update food", zap.Error(err))
		return nil, err
	}
	return food, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	deleted, err := s.foodRepo.Delete(ctx, id)
	if err != nil {
		zap.L().Error("can't delete food", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrFoodNotFound
	}
	return nil
}
