package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-ticket-registry/internal/jwt"
	"github.com/sbilibin2017/gw-ticket-registry/internal/middlewares"
	"github.com/sbilibin2017/gw-ticket-registry/internal/models"
	"github.com/sbilibin2017/gw-ticket-registry/internal/services"
)

func TestListEventsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := []models.Event{
		{ID: 1, Name: "Concert", PriceTiers: []models.PriceTier{
			{Price: 50, Stock: 15, OwnerUserID: 1},
			{Price: 80, Stock: 2, OwnerUserID: 2},
		}},
	}

	mockSvc := NewMockEventLister(ctrl)
	mockSvc.EXPECT().ListEvents(gomock.Any()).Return(events, nil)

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rr := httptest.NewRecorder()

	NewListEventsHandler(mockSvc)(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp EventsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, events, resp.Events)
}

func TestListEventsHandler_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockEventLister(ctrl)
	mockSvc.EXPECT().ListEvents(gomock.Any()).Return(nil, services.ErrCorruptDocument)

	rr := httptest.NewRecorder()
	NewListEventsHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/events", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestAddTierHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := &jwt.Claims{UserID: 5, Username: "alice", Role: models.RoleUser}
	updated := &models.Event{ID: 1, Name: "Concert", PriceTiers: []models.PriceTier{{Price: 50, Stock: 15, OwnerUserID: 1}}}

	tests := []struct {
		name         string
		body         string
		claims       *jwt.Claims
		mockSetup    func(m *MockTierAdder)
		expectedCode int
	}{
		{
			name:   "tier updated with owner from token",
			body:   `{"eventName":"concert","price":50,"amount":5}`,
			claims: claims,
			mockSetup: func(m *MockTierAdder) {
				m.EXPECT().AddTier(gomock.Any(), "concert", 50.0, int64(5), int64(5)).Return(updated, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "invalid amount",
			body:   `{"eventName":"Concert","price":50,"amount":0}`,
			claims: claims,
			mockSetup: func(m *MockTierAdder) {
				m.EXPECT().AddTier(gomock.Any(), "Concert", 50.0, int64(0), int64(5)).Return(nil, services.ErrMissingField)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "stock overflow",
			body:   `{"eventName":"Concert","price":50,"amount":1}`,
			claims: claims,
			mockSetup: func(m *MockTierAdder) {
				m.EXPECT().AddTier(gomock.Any(), "Concert", 50.0, int64(1), int64(5)).Return(nil, services.ErrStockOverflow)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "no claims",
			body:         `{"eventName":"Concert","price":50,"amount":1}`,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "invalid json",
			body:         `{"eventName":`,
			claims:       claims,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTierAdder(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/events/tiers", bytes.NewBufferString(tt.body))
			if tt.claims != nil {
				req = req.WithContext(middlewares.WithClaims(req.Context(), tt.claims))
			}
			rr := httptest.NewRecorder()

			NewAddTierHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp EventResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, *updated, resp.Event)
			}
		})
	}
}
