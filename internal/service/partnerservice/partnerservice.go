package partnerservice

import (
	"context"
	"errors"

	"github.com/foodconnect/api/internal/domain"
	"go.uber.org/zap"
)

type PartnerRepo interface {
	Create(ctx context.Context, partner *domain.Partner) (*domain.Partner, error)
	FindByID(ctx context.Context, id int) (*domain.Partner, error)
	List(ctx context.Context, status domain.PartnerStatus) ([]domain.Partner, error)
	FindByUser(ctx context.Context, userID int) ([]domain.Partner, error)
	UpdateStatus(ctx context.Context, id int, status domain.PartnerStatus, notes string) (*domain.Partner, error)
}

type Service struct {
	partnerRepo PartnerRepo
}

func New(partnerRepo PartnerRepo) *Service {
	return &Service{
		partnerRepo: partnerRepo,
	}
}

var (
	ErrPartnerNotFound = errors.New("partner application not found")
	ErrInvalidStatus   = errors.New("invalid status value")
)

func (s *Service) Create(ctx context.Context, partner *domain.Partner) (*domain.Partner, error) {
	partner.Status = domain.PartnerStatusPending
	created, err := s.partnerRepo.Create(ctx, partner)
	if err != nil {
		zap.L().Error("can't create partner application", zap.Error(err))
		return nil, err
	}
	zap.L().Info("partner application created", zap.Int("partner_id", created.ID), zap.Int("user_id", created.UserID))
	return created, nil
}

func (s *Service) List(ctx context.Context, status domain.PartnerStatus) ([]domain.Partner, error) {
	if status != "" && !status.Valid() {
		status = ""
	}
	partners, err := s.partnerRepo.List(ctx, status)
	if err != nil {
		zap.L().Error("can't list partner applications", zap.Error(err))
		return nil, err
	}
	return partners, nil
}

func (s *Service) GetMy(ctx context.Context, userID int) ([]domain.Partner, error) {
	partners, err := s.partnerRepo.FindByUser(ctx, userID)
	if err != nil {
		zap.L().Error("can't get user partner applications", zap.Error(err))
		return nil, err
	}
	return partners, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Partner, error) {
	partner, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't get partner application", zap.Error(err))
		return nil, err
	}
	if partner == nil {
		return nil, ErrPartnerNotFound
	}
	return partner, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int, status domain.PartnerStatus, notes string) (*domain.Partner, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	partner, err := s.partnerRepo.UpdateStatus(ctx, id, status, notes)
	if err != nil {
		zap.L().Error("can't update partner status", zap.Error(err))
		return nil, err
	}
	if partner == nil {
		return nil, ErrPartnerNotFound
	}
	return partner, nil
}
