package userservice

import (
	"context"
	"errors"

	"github.com/foodconnect/api/internal/domain"
	"go.uber.org/zap"
)

type UserRepo interface {
	List(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id int, role domain.Role) (*domain.User, error)
}

type Service struct {
	userRepo UserRepo
}

func New(userRepo UserRepo) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

var ErrUserNotFound = errors.New("user not found")

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *Service) UpdateRole(ctx context.Context, id int, role domain.Role) (*domain.User, error) {
	user, err := s.userRepo.UpdateRole(ctx, id, role)
	if err != nil {
		zap.L().Error("can't update role", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	zap.L().Info("user role updated", zap.Int("user_id", id), zap.String("role", string(role)))
	return user, nil
}
