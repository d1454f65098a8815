package handlers

//go:generate mockgen -source=users.go -destination=mock_users.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-ticket-registry/internal/models"
)

// UserLister lists user accounts.
type UserLister interface {
	List(ctx context.Context) ([]models.PublicUser, error)
}

// UserPromoter grants the admin role.
type UserPromoter interface {
	Promote(ctx context.Context, username string) error
}

// UserDeleter removes user accounts.
type UserDeleter interface {
	Delete(ctx context.Context, username string) error
}

// UsersResponse represents the list of registered users
// swagger:model UsersResponse
type UsersResponse struct {
	// Users in registration order
	Users []models.PublicUser `json:"users"`
}

// NewListUsersHandler returns an HTTP handler listing all users.
// @Summary List users
// @Description Returns every user without credentials or reset state. Admin only.
// @Tags users
// @Produce json
// @Success 200 {object} handlers.UsersResponse "Users"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, UsersResponse{Users: users})
	}
}

// NewPromoteUserHandler returns an HTTP handler granting the admin role.
// @Summary Promote user
// @Description Grants the admin role. Promoting an admin is a no-op. Admin only.
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.MessageResponse "User promoted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{username}/promote [post]
// @Security BearerAuth
func NewPromoteUserHandler(svc UserPromoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Promote(r.Context(), chi.URLParam(r, "username")); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "User promoted"})
	}
}

// NewDeleteUserHandler returns an HTTP handler removing a non-admin user.
// @Summary Delete user
// @Description Removes a user. Admin accounts cannot be deleted. Admin only.
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.MessageResponse "User deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{username} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "username")); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "User deleted"})
	}
}
