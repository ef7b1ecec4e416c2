package points

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/foodconnect/api/internal/domain"
	"github.com/foodconnect/api/internal/dto"
	"github.com/foodconnect/api/internal/service/pointsservice"
	"github.com/foodconnect/api/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*PointsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestAward(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Game points credited",
			body: `{"points":10,"sourceType":"game","sourceId":4,"note":"Completed sorting quiz"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Award(gomock.Any(), 1, 10, domain.PointsSourceGame, 4, "Completed sorting quiz").
					Return(&domain.User{ID: 1, Points: 60}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Zero points rejected",
			body:         `{"points":0,"sourceType":"game"}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Reward source rejected",
			body: `{"points":10,"sourceType":"reward"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Award(gomock.Any(), 1, 10, domain.PointsSourceReward, 0, "").
					Return(nil, pointsservice.ErrInvalidSource)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/points/award", bytes.NewBufferString(tt.body))
			req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
			rr := httptest.NewRecorder()
			handler.Award(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.AwardPointsResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, 60, resp.User.Points)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	service.EXPECT().Summary(gomock.Any(), 1).Return(150, []domain.PointsEntry{
		{ID: 2, Points: 100, SourceType: domain.PointsSourceReward, SourceID: 7, Direction: domain.PointsDebit, CreatedAt: now},
		{ID: 1, Points: 250, SourceType: domain.PointsSourceDonation, Direction: domain.PointsCredit, CreatedAt: now},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/points/me", nil)
	req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
	rr := httptest.NewRecorder()
	handler.Summary(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.PointsSummaryResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 150, resp.Balance)
	assert.Len(t, resp.History, 2)
	assert.Equal(t, "debit", resp.History[0].Direction)
}
