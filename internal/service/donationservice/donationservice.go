package donationservice

import (
	"context"
	"errors"

	"github.com/foodconnect/api/internal/domain"
	"go.uber.org/zap"
)

type DonationRepo interface {
	Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error)
	FindByID(ctx context.Context, id int) (*domain.Donation, error)
	List(ctx context.Context, status domain.DonationStatus) ([]domain.Donation, error)
	FindByUser(ctx context.Context, userID int) ([]domain.Donation, error)
	UpdateStatus(ctx context.Context, id int, status domain.DonationStatus, assignedVolunteer string) (*domain.Donation, error)
}

type Service struct {
	donationRepo DonationRepo
}

func New(donationRepo DonationRepo) *Service {
	return &Service{
		donationRepo: donationRepo,
	}
}

var (
	ErrDonationNotFound = errors.New("donation not found")
	ErrInvalidStatus    = errors.New("invalid donation status")
)

func (s *Service) Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error) {
	donation.Status = domain.DonationStatusPending
	created, err := s.donationRepo.Create(ctx, donation)
	if err != nil {
		zap.L().Error("can't create donation", zap.Error(err))
		return nil, err
	}
	zap.L().Info("donation created", zap.Int("donation_id", created.ID), zap.Int("user_id", created.UserID))
	return created, nil
}

// List filters by status when one is given; an unknown status is ignored
// rather than rejected, matching the listing contract.
func (s *Service) List(ctx context.Context, status domain.DonationStatus) ([]domain.Donation, error) {
	if status != "" && !status.Valid() {
		status = ""
	}
	donations, err := s.donationRepo.List(ctx, status)
	if err != nil {
		zap.L().Error("can't list donations", zap.Error(err))
		return nil, err
	}
	return donations, nil
}

func (s *Service) GetMy(ctx context.Context, userID int) ([]domain.Donation, error) {
	donations, err := s.donationRepo.FindByUser(ctx, userID)
	if err != nil {
		zap.L().Error("can't get user donations", zap.Error(err))
		return nil, err
	}
	return donations, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Donation, error) {
	donation, err := s.donationRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't get donation", zap.Error(err))
		return nil, err
	}
	if donation == nil {
		return nil, ErrDonationNotFound
	}
	return donation, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int, status domain.DonationStatus, assignedVolunteer string) (*domain.Donation, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	donation, err := s.donationRepo.UpdateStatus(ctx, id, status, assignedVolunteer)
	if err != nil {
		zap.L().Error("can't update donation status", zap.Error(err))
		return nil, err
	}
	if donation == nil {
		return nil, ErrDonationNotFound
	}
	return donation, nil
}
