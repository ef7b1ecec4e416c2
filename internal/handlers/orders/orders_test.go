package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/foodconnect/api/internal/domain"
	"github.com/foodconnect/api/internal/dto"
	"github.com/foodconnect/api/internal/service/orderservice"
	"github.com/foodconnect/api/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*OrderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestCreate(t *testing.T) {
	placed := &domain.Order{
		ID:     12,
		UserID: 1,
		Items: []domain.OrderItem{
			{FoodID: 3, Name: "Vegetable curry", Price: 4.5, Qty: 2, LineTotal: 9},
		},
		Total:  9,
		Status: domain.OrderStatusPlaced,
	}

	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Order placed",
			body: `{"items":[{"foodId":3,"qty":2}]}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), 1, []orderservice.ItemInput{{FoodID: 3, Qty: 2}}).
					Return(placed, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Empty order rejected",
			body: `{"items":[]}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), 1, []orderservice.ItemInput{}).
					Return(nil, orderservice.ErrEmptyOrder)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Unknown food rejected",
			body: `{"items":[{"foodId":99,"qty":1}]}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), 1, []orderservice.ItemInput{{FoodID: 99, Qty: 1}}).
					Return(nil, orderservice.ErrInvalidItems)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(tt.body))
			req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
			rr := httptest.NewRecorder()
			handler.Create(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusCreated {
				var resp dto.CreateOrderResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, 12, resp.OrderID)
				assert.Equal(t, "placed", resp.OrderStatus)
				assert.Equal(t, 9.0, resp.Total)
			}
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name         string
		orderID      string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name:    "Status updated",
			orderID: "12",
			body:    `{"status":"processing"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().UpdateStatus(gomock.Any(), 12, domain.OrderStatusProcessing).
					Return(&domain.Order{ID: 12, Status: domain.OrderStatusProcessing}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "Unknown status rejected",
			orderID: "12",
			body:    `{"status":"shipped"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().UpdateStatus(gomock.Any(), 12, domain.OrderStatus("shipped")).
					Return(nil, orderservice.ErrInvalidStatus)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:    "Missing order",
			orderID: "99",
			body:    `{"status":"completed"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().UpdateStatus(gomock.Any(), 99, domain.OrderStatusCompleted).
					Return(nil, orderservice.ErrOrderNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Non-numeric id",
			orderID:      "abc",
			body:         `{"status":"completed"}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.orderID)
			req := httptest.NewRequest(http.MethodPatch, "/api/orders/"+tt.orderID+"/status", bytes.NewBufferString(tt.body))
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rr := httptest.NewRecorder()
			handler.UpdateStatus(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestMy(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().GetMy(gomock.Any(), 1).Return([]domain.Order{
		{ID: 12, UserID: 1, Total: 9, Status: domain.OrderStatusPlaced},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/my", nil)
	req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
	rr := httptest.NewRecorder()
	handler.My(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.OrdersResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp.Orders, 1)
	assert.Equal(t, "placed", resp.Orders[0].Status)
}
