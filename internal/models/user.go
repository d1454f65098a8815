package models

import (
	"strings"
	"time"
)

// Role is the privilege level of a user.
type Role string

// Supported roles
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole returns RoleAdmin only for the literal "admin" (any case);
// every other value, including empty, yields RoleUser.
func ParseRole(s string) Role {
	if strings.EqualFold(strings.TrimSpace(s), string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleUser
}

// ResetToken is a pending single-use password reset credential.
type ResetToken struct {
	Token   string    `json:"token"`   // Opaque random token
	Expires time.Time `json:"expires"` // Absolute expiry time
}

// User represents a user record in the users document
type User struct {
	ID           int64       `json:"id"`              // Monotonic identifier, unique within the document
	Fullname     string      `json:"fullname"`        // Display name
	Username     string      `json:"username"`        // Case-insensitively unique login
	Email        string      `json:"email"`           // Case-insensitively unique email
	PasswordHash string      `json:"passwordHash"`    // Credential digest, never exposed
	Role         Role        `json:"role"`            // user or admin
	Reset        *ResetToken `json:"reset,omitempty"` // Pending password reset, if any
}

// PublicUser is the externally visible view of a User.
type PublicUser struct {
	ID       int64  `json:"id"`
	Fullname string `json:"fullname"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// Public strips the credential and reset state from u.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Fullname: u.Fullname,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// IsAdmin reports whether u holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
