package rewards

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/foodconnect/api/internal/domain"
	"github.com/foodconnect/api/internal/dto"
	"github.com/foodconnect/api/internal/service/rewardservice"
	"github.com/foodconnect/api/pkg/auth"
	"github.com/foodconnect/api/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*RewardHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRedeem(t *testing.T) {
	reward := &domain.Reward{ID: 7, Title: "Tote bag", PointsRequired: 100, IsActive: true}
	user := &domain.User{ID: 1, Name: "Jamie Lee", Points: 50, Role: domain.RoleReceiver}

	tests := []struct {
		name            string
		body            string
		prepareMock     func(service *MockService)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "Successful redemption",
			body: `{"rewardId":7}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Redeem(gomock.Any(), 1, 7).Return(reward, user, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:            "Missing rewardId",
			body:            `{}`,
			prepareMock:     func(service *MockService) {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "rewardId is required",
		},
		{
			name: "Unknown reward",
			body: `{"rewardId":99}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Redeem(gomock.Any(), 1, 99).
					Return(nil, nil, rewardservice.ErrRewardNotFound)
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: rewardservice.ErrRewardNotFound.Error(),
		},
		{
			name: "Not enough points",
			body: `{"rewardId":7}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Redeem(gomock.Any(), 1, 7).
					Return(nil, nil, rewardservice.ErrNotEnoughPoints)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: rewardservice.ErrNotEnoughPoints.Error(),
		},
		{
			name: "Out of stock",
			body: `{"rewardId":7}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Redeem(gomock.Any(), 1, 7).
					Return(nil, nil, rewardservice.ErrOutOfStock)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: rewardservice.ErrOutOfStock.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/rewards/redeem", bytes.NewBufferString(tt.body))
			req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
			rr := httptest.NewRecorder()
			handler.Redeem(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedMessage != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
			} else {
				var resp dto.RedeemResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "Reward redeemed successfully", resp.Message)
				assert.Equal(t, 7, resp.Reward.ID)
				assert.Equal(t, 50, resp.User.Points)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Reward created active by default",
			body: `{"title":"Tote bag","pointsRequired":100,"inventory":5}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, reward *domain.Reward) (*domain.Reward, error) {
						assert.True(t, reward.IsActive)
						assert.Equal(t, 5, reward.Inventory)
						reward.ID = 7
						return reward, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Missing title rejected",
			body:         `{"pointsRequired":100}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Negative inventory rejected",
			body:         `{"title":"Tote bag","pointsRequired":100,"inventory":-1}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/rewards", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler.Create(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestList(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().List(gomock.Any()).Return([]domain.Reward{
		{ID: 7, Title: "Tote bag", PointsRequired: 100, Inventory: 5, IsActive: true},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/rewards", nil)
	rr := httptest.NewRecorder()
	handler.List(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.RewardDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "Tote bag", resp[0].Title)
}
