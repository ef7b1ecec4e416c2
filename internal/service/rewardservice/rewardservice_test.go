package rewardservice

import (
	"context"
	"errors"
	"testing"

	"github.com/foodconnect/api/internal/domain"
	"github.com/foodconnect/api/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRewardRepo, *MockUserRepo, *MockPointsRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	rewardRepo := NewMockRewardRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	pointsRepo := NewMockPointsRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(rewardRepo, userRepo, pointsRepo, txManager)
	defer ctrl.Finish()
	return service, rewardRepo, userRepo, pointsRepo, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestRedeem(t *testing.T) {
	activeReward := func() *domain.Reward {
		return &domain.Reward{ID: 7, Title: "Tote bag", PointsRequired: 100, Inventory: 1, IsActive: true}
	}

	tests := []struct {
		name           string
		userID         int
		rewardID       int
		prepareMock    func(rewardRepo *MockRewardRepo, userRepo *MockUserRepo, pointsRepo *MockPointsRepo, txManager *pg.MockTXManager)
		expectedError  error
		expectedPoints int
	}{
		{
			name:     "Successful redemption",
			userID:   1,
			rewardID: 7,
			prepareMock: func(rewardRepo *MockRewardRepo, userRepo *MockUserRepo, pointsRepo *MockPointsRepo, txManager *pg.MockTXManager) {
				rewardRepo.EXPECT().FindByID(gomock.Any(), 7).Return(activeReward(), nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Points: 150}, nil)
				passthroughTx(txManager)
				rewardRepo.EXPECT().DecrementInventory(gomock.Any(), 7).Return(true, nil)
				userRepo.EXPECT().DebitPoints(gomock.Any(), 1, 100).Return(true, nil)
				pointsRepo.EXPECT().AddEntry(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.PointsEntry) (*domain.PointsEntry, error) {
						assert.Equal(t, 1, entry.UserID)
						assert.Equal(t, 100, entry.Points)
						assert.Equal(t, domain.PointsSourceReward, entry.SourceType)
						assert.Equal(t, 7, entry.SourceID)
						assert.Equal(t, domain.PointsDebit, entry.Direction)
						assert.Equal(t, "Redeemed Tote bag", entry.Note)
						return entry, nil
					})
				updated := activeReward()
				updated.Inventory = 0
				rewardRepo.EXPECT().FindByID(gomock.Any(), 7).Return(updated, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Points: 50}, nil)
			},
			expectedError:  nil,
			expectedPoints: 50,
		},
		{
			name:     "Reward does not exist",
			userID:   1,
			rewardID: 99,
			prepareMock: func(rewardRepo *MockRewardRepo, userRepo *MockUserRepo, pointsRepo *MockPointsRepo, txManager *pg.MockTXManager) {
				rewardRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrRewardNotFound,
		},
		{
			name:     "Inactive reward is not redeemable",
			userID:   1,
			rewardID: 7,
			prepareMock: func(rewardRepo *MockRewardRepo, userRepo *MockUserRepo, pointsRepo *MockPointsRepo, txManager *pg.MockTXManager) {
				inactive := activeReward()
				inactive.IsActive = false
				rewardRepo.EXPECT().FindByID(gomock.Any(), 7).Return(inactive, nil)
			},
			expectedError: ErrRewardNotFound,
		},
		{
			name:     "User does not exist",
			userID:   2,
			rewardID: 7,
			prepareMock: func(rewardRepo *MockRewardRepo, userRepo *MockUserRepo, pointsRepo *MockPointsRepo, txManager *pg.MockTXManager) {
				rewardRepo.EXPECT().FindByID(gomock.Any(), 7).Return(activeReward(), nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:     "Balance below cost",
			userID:   1,
			rewardID: 7,
			prepareMock: func(rewardRepo *MockRewardRepo, userRepo *MockUserRepo, pointsRepo *MockPointsRepo, txManager *pg.MockTXManager) {
				rewardRepo.EXPECT().FindByID(gomock.Any(), 7).Return(activeReward(), nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Points: 99}, nil)
			},
			expectedError: ErrNotEnoughPoints,
		},
		{
			name:     "Inventory exhausted inside the transaction",
			userID:   1,
			rewardID: 7,
			prepareMock: func(rewardRepo *MockRewardRepo, userRepo *MockUserRepo, pointsRepo *MockPointsRepo, txManager *pg.MockTXManager) {
				rewardRepo.EXPECT().FindByID(gomock.Any(), 7).Return(activeReward(), nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Points: 150}, nil)
				passthroughTx(txManager)
				rewardRepo.EXPECT().DecrementInventory(gomock.Any(), 7).Return(false, nil)
			},
			expectedError: ErrOutOfStock,
		},
		{
			name:     "Balance spent by a concurrent redemption",
			userID:   1,
			rewardID: 7,
			prepareMock: func(rewardRepo *MockRewardRepo, userRepo *MockUserRepo, pointsRepo *MockPointsRepo, txManager *pg.MockTXManager) {
				rewardRepo.EXPECT().FindByID(gomock.Any(), 7).Return(activeReward(), nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Points: 150}, nil)
				passthroughTx(txManager)
				rewardRepo.EXPECT().DecrementInventory(gomock.Any(), 7).Return(true, nil)
				userRepo.EXPECT().DebitPoints(gomock.Any(), 1, 100).Return(false, nil)
			},
			expectedError: ErrNotEnoughPoints,
		},
		{
			name:     "Ledger insert failure aborts the transaction",
			userID:   1,
			rewardID: 7,
			prepareMock: func(rewardRepo *MockRewardRepo, userRepo *MockUserRepo, pointsRepo *MockPointsRepo, txManager *pg.MockTXManager) {
				rewardRepo.EXPECT().FindByID(gomock.Any(), 7).Return(activeReward(), nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Points: 150}, nil)
				passthroughTx(txManager)
				rewardRepo.EXPECT().DecrementInventory(gomock.Any(), 7).Return(true, nil)
				userRepo.EXPECT().DebitPoints(gomock.Any(), 1, 100).Return(true, nil)
				pointsRepo.EXPECT().AddEntry(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, rewardRepo, userRepo, pointsRepo, txManager := NewMock(t)
			tt.prepareMock(rewardRepo, userRepo, pointsRepo, txManager)

			reward, user, err := service.Redeem(context.Background(), tt.userID, tt.rewardID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, reward)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 0, reward.Inventory)
				assert.Equal(t, tt.expectedPoints, user.Points)
			}
		})
	}
}

func TestList(t *testing.T) {
	service, rewardRepo, _, _, _ := NewMock(t)

	expected := []domain.Reward{{ID: 1, Title: "Tote bag", PointsRequired: 100}}
	rewardRepo.EXPECT().List(gomock.Any()).Return(expected, nil)

	rewards, err := service.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, rewards)
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name          string
		id            int
		prepareMock   func(rewardRepo *MockRewardRepo)
		expectedError error
	}{
		{
			name: "Update existing reward",
			id:   1,
			prepareMock: func(rewardRepo *MockRewardRepo) {
				rewardRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Reward{ID: 1}, nil)
				rewardRepo.EXPECT().Update(gomock.Any(), 1, gomock.Any()).Return(&domain.Reward{ID: 1, Inventory: 3}, nil)
			},
			expectedError: nil,
		},
		{
			name: "Update missing reward",
			id:   2,
			prepareMock: func(rewardRepo *MockRewardRepo) {
				rewardRepo.EXPECT().FindByID(gomock.Any(), 2).Return(nil, nil)
			},
			expectedError: ErrRewardNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, rewardRepo, _, _, _ := NewMock(t)
			tt.prepareMock(rewardRepo)

			inventory := 3
			_, err := service.Update(context.Background(), tt.id, domain.RewardPatch{Inventory: &inventory})
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name          string
		id            int
		deleted       bool
		expectedError error
	}{
		{name: "Delete existing reward", id: 1, deleted: true, expectedError: nil},
		{name: "Delete missing reward", id: 2, deleted: false, expectedError: ErrRewardNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, rewardRepo, _, _, _ := NewMock(t)
			rewardRepo.EXPECT().Delete(gomock.Any(), tt.id).Return(tt.deleted, nil)

			err := service.Delete(context.Background(), tt.id)
			assert.Equal(t, tt.expectedError, err)
		})
	}
}
