package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-ticket-registry/internal/models"
	"github.com/sbilibin2017/gw-ticket-registry/internal/services"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		users        []models.PublicUser
		svcErr       error
		expectedCode int
	}{
		{
			name: "users listed",
			users: []models.PublicUser{
				{ID: 1, Username: "root", Role: models.RoleAdmin},
				{ID: 2, Username: "alice", Role: models.RoleUser},
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "no users",
			users:        []models.PublicUser{},
			expectedCode: http.StatusOK,
		},
		{
			name:         "corrupt document",
			svcErr:       services.ErrCorruptDocument,
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserLister(ctrl)
			mockSvc.EXPECT().List(gomock.Any()).Return(tt.users, tt.svcErr)

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			rr := httptest.NewRecorder()

			NewListUsersHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.svcErr != nil {
				return
			}

			var resp UsersResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.users, resp.Users)
			assert.NotContains(t, rr.Body.String(), "passwordHash")
		})
	}
}

func TestPromoteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		svcErr       error
		expectedCode int
	}{
		{name: "promoted", expectedCode: http.StatusOK},
		{name: "unknown user", svcErr: services.ErrNotFound, expectedCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserPromoter(ctrl)
			mockSvc.EXPECT().Promote(gomock.Any(), "alice").Return(tt.svcErr)

			req := withURLParam(httptest.NewRequest(http.MethodPost, "/users/alice/promote", nil), "username", "alice")
			rr := httptest.NewRecorder()

			NewPromoteUserHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		svcErr        error
		expectedCode  int
		expectedError string
	}{
		{name: "deleted", expectedCode: http.StatusOK},
		{name: "admin", svcErr: services.ErrForbidden, expectedCode: http.StatusForbidden, expectedError: "Admin accounts cannot be deleted"},
		{name: "unknown user", svcErr: services.ErrNotFound, expectedCode: http.StatusNotFound, expectedError: "User not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserDeleter(ctrl)
			mockSvc.EXPECT().Delete(gomock.Any(), "alice").Return(tt.svcErr)

			req := withURLParam(httptest.NewRequest(http.MethodDelete, "/users/alice", nil), "username", "alice")
			rr := httptest.NewRecorder()

			NewDeleteUserHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}
