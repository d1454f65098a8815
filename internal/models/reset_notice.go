package models

// ResetNotice is handed to the delivery channel after a password reset was
// requested.
type ResetNotice struct {
	UserID    int64  `json:"user_id"`    // Identifier of the account
	Username  string `json:"username"`   // Login of the account
	Email     string `json:"email"`      // Delivery address
	Token     string `json:"token"`      // Reset token to deliver
	ExpiresAt int64  `json:"expires_at"` // Unix time (seconds) after which the token is rejected
}
