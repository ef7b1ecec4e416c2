package donationservice

import (
	"context"
	"testing"

	"github.com/foodconnect/api/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockDonationRepo) {
	ctrl := gomock.NewController(t)
	donationRepo := NewMockDonationRepo(ctrl)
	service := New(donationRepo)
	defer ctrl.Finish()
	return service, donationRepo
}

func TestCreate(t *testing.T) {
	service, donationRepo := NewMock(t)

	donationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, donation *domain.Donation) (*domain.Donation, error) {
			assert.Equal(t, domain.DonationStatusPending, donation.Status)
			donation.ID = 4
			return donation, nil
		})

	donation, err := service.Create(context.Background(), &domain.Donation{
		UserID:        1,
		FoodType:      "Cooked meals",
		Quantity:      "20 portions",
		PickupAddress: "12 Jalan Ampang",
		PickupWindow:  "Sat 10am-12pm",
		Status:        domain.DonationStatusCompleted,
	})
	assert.NoError(t, err)
	assert.Equal(t, 4, donation.ID)
	assert.Equal(t, domain.DonationStatusPending, donation.Status)
}

func TestList(t *testing.T) {
	tests := []struct {
		name        string
		status      domain.DonationStatus
		prepareMock func(donationRepo *MockDonationRepo)
	}{
		{
			name:   "Filter by valid status",
			status: domain.DonationStatusScheduled,
			prepareMock: func(donationRepo *MockDonationRepo) {
				donationRepo.EXPECT().List(gomock.Any(), domain.DonationStatusScheduled).
					Return([]domain.Donation{{ID: 4, Status: domain.DonationStatusScheduled}}, nil)
			},
		},
		{
			name:   "Unknown status is ignored",
			status: domain.DonationStatus("bogus"),
			prepareMock: func(donationRepo *MockDonationRepo) {
				donationRepo.EXPECT().List(gomock.Any(), domain.DonationStatus("")).
					Return([]domain.Donation{{ID: 4}}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, donationRepo := NewMock(t)
			tt.prepareMock(donationRepo)

			donations, err := service.List(context.Background(), tt.status)
			assert.NoError(t, err)
			assert.Len(t, donations, 1)
		})
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(donationRepo *MockDonationRepo)
		expectedError error
	}{
		{
			name: "Existing donation",
			prepareMock: func(donationRepo *MockDonationRepo) {
				donationRepo.EXPECT().FindByID(gomock.Any(), 4).
					Return(&domain.Donation{ID: 4, UserID: 1}, nil)
			},
			expectedError: nil,
		},
		{
			name: "Missing donation",
			prepareMock: func(donationRepo *MockDonationRepo) {
				donationRepo.EXPECT().FindByID(gomock.Any(), 4).Return(nil, nil)
			},
			expectedError: ErrDonationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, donationRepo := NewMock(t)
			tt.prepareMock(donationRepo)

			donation, err := service.Get(context.Background(), 4)
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 4, donation.ID)
			}
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name          string
		status        domain.DonationStatus
		volunteer     string
		prepareMock   func(donationRepo *MockDonationRepo)
		expectedError error
	}{
		{
			name:      "Schedule pickup with a volunteer",
			status:    domain.DonationStatusScheduled,
			volunteer: "Aisha",
			prepareMock: func(donationRepo *MockDonationRepo) {
				donationRepo.EXPECT().UpdateStatus(gomock.Any(), 4, domain.DonationStatusScheduled, "Aisha").
					Return(&domain.Donation{ID: 4, Status: domain.DonationStatusScheduled, AssignedVolunteer: "Aisha"}, nil)
			},
			expectedError: nil,
		},
		{
			name:          "Unknown status rejected",
			status:        domain.DonationStatus("lost"),
			prepareMock:   func(donationRepo *MockDonationRepo) {},
			expectedError: ErrInvalidStatus,
		},
		{
			name:   "Missing donation",
			status: domain.DonationStatusCancelled,
			prepareMock: func(donationRepo *MockDonationRepo) {
				donationRepo.EXPECT().UpdateStatus(gomock.Any(), 4, domain.DonationStatusCancelled, "").
					Return(nil, nil)
			},
			expectedError: ErrDonationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, donationRepo := NewMock(t)
			tt.prepareMock(donationRepo)

			donation, err := service.UpdateStatus(context.Background(), 4, tt.status, tt.volunteer)
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.status, donation.Status)
			}
		})
	}
}
