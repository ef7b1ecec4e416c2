package cartservice

import (
	"context"
	"errors"
	"testing"

	"github.com/foodconnect/api/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockCartRepo, *MockFoodRepo) {
	ctrl := gomock.NewController(t)
	cartRepo := NewMockCartRepo(ctrl)
	foodRepo := NewMockFoodRepo(ctrl)
	service := New(cartRepo, foodRepo)
	defer ctrl.Finish()
	return service, cartRepo, foodRepo
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name          string
		foodID        int
		qty           int
		prepareMock   func(cartRepo *MockCartRepo, foodRepo *MockFoodRepo)
		expectedError error
	}{
		{
			name:   "Add item and return the cart",
			foodID: 3,
			qty:    2,
			prepareMock: func(cartRepo *MockCartRepo, foodRepo *MockFoodRepo) {
				foodRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Food{ID: 3, Name: "Vegetable curry"}, nil)
				cartRepo.EXPECT().Upsert(gomock.Any(), 1, 3, 2).Return(nil)
				cartRepo.EXPECT().GetByUser(gomock.Any(), 1).Return([]domain.CartItem{
					{FoodID: 3, Qty: 2, Name: "Vegetable curry", Price: 4.5},
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:   "Unknown food",
			foodID: 99,
			qty:    1,
			prepareMock: func(cartRepo *MockCartRepo, foodRepo *MockFoodRepo) {
				foodRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrFoodNotFound,
		},
		{
			name:   "Upsert failure propagates",
			foodID: 3,
			qty:    1,
			prepareMock: func(cartRepo *MockCartRepo, foodRepo *MockFoodRepo) {
				foodRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Food{ID: 3}, nil)
				cartRepo.EXPECT().Upsert(gomock.Any(), 1, 3, 1).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, cartRepo, foodRepo := NewMock(t)
			tt.prepareMock(cartRepo, foodRepo)

			items, err := service.Add(context.Background(), 1, tt.foodID, tt.qty)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Len(t, items, 1)
				assert.Equal(t, 2, items[0].Qty)
			}
		})
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name          string
		removed       bool
		expectedError error
	}{
		{name: "Remove existing item", removed: true, expectedError: nil},
		{name: "Remove missing item", removed: false, expectedError: ErrItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, cartRepo, _ := NewMock(t)
			cartRepo.EXPECT().Remove(gomock.Any(), 1, 3).Return(tt.removed, nil)

			err := service.Remove(context.Background(), 1, 3)
			assert.Equal(t, tt.expectedError, err)
		})
	}
}

func TestGet(t *testing.T) {
	service, cartRepo, _ := NewMock(t)

	expected := []domain.CartItem{{FoodID: 3, Qty: 2, Name: "Vegetable curry", Price: 4.5}}
	cartRepo.EXPECT().GetByUser(gomock.Any(), 1).Return(expected, nil)

	items, err := service.Get(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, expected, items)
}
