package handlers

//go:generate mockgen -source=password.go -destination=mock_password.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-ticket-registry/internal/logger"
	"github.com/sbilibin2017/gw-ticket-registry/internal/services"
)

// ResetRequester issues password reset tokens.
type ResetRequester interface {
	RequestReset(ctx context.Context, emailOrUsername string) (string, error)
}

// PasswordResetter consumes password reset tokens.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, email, token, newPassword string) error
}

// ForgotPasswordRequest represents the JSON body of a reset request
// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	// Email or username of the account
	// required: true
	// default: john@example.com
	Login string `json:"login"`
}

// ResetPasswordRequest represents the JSON body for a password reset
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// Email of the account
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Reset token delivered to the account owner
	// required: true
	Token string `json:"token"`

	// New password
	// required: true
	// default: newsecret123
	NewPassword string `json:"newPassword"`
}

const forgotPasswordMessage = "If the account exists, a reset token has been sent"

// NewForgotPasswordHandler returns an HTTP handler that issues a reset token.
// The token is delivered out of band and never included in the response.
// @Summary Request password reset
// @Description Issues a one-time reset token valid for a limited time and delivers it to the account owner
// @Tags password
// @Accept json
// @Produce json
// @Param forgotPasswordRequest body handlers.ForgotPasswordRequest true "Reset request"
// @Success 202 {object} handlers.MessageResponse "Reset token sent"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request / missing fields"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /password/forgot [post]
func NewForgotPasswordHandler(svc ResetRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w)
			return
		}

		// Unknown accounts and failed deliveries get the same answer as a
		// successful request.
		if _, err := svc.RequestReset(r.Context(), req.Login); err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				logger.Log.Infow("reset requested for unknown account")
			case errors.Is(err, services.ErrResetDelivery):
				logger.Log.Errorw("reset token not delivered", "err", err)
			default:
				writeError(w, err)
				return
			}
		}

		writeJSON(w, http.StatusAccepted, MessageResponse{Message: forgotPasswordMessage})
	}
}

// NewResetPasswordHandler returns an HTTP handler that replaces a password
// using a reset token.
// @Summary Reset password
// @Description Replaces the password when the token matches the pending, unexpired reset token. The token can be used once.
// @Tags password
// @Accept json
// @Produce json
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Password reset"
// @Success 200 {object} handlers.MessageResponse "Password updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request / missing fields"
// @Failure 401 {object} handlers.ErrorResponse "Invalid or expired token"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /password/reset [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w)
			return
		}

		if err := svc.ResetPassword(r.Context(), req.Email, req.Token, req.NewPassword); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Password updated"})
	}
}
