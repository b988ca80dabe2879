package user

import (
	"context"

	"medibook/models"
)

// SessionUser is the caller-visible identity returned on login.
type SessionUser struct {
	ID      string `json:"id"`
	IsAdmin bool   `json:"isAdmin"`
}

// AuthResponse is returned after a successful authentication.
type AuthResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

// UserService handles registration and session lifecycle.
type UserService interface {
	// Register creates a new user with a hashed password. Returns
	// ErrUserExists when the email is already registered.
	Register(ctx context.Context, name, email, password string) error
	// Authenticate verifies credentials, issues a session token and records
	// the session. Returns ErrInvalidCredentials on unknown email or
	// password mismatch.
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	// Logout revokes the session behind the given token.
	Logout(ctx context.Context, token string) error
	// GetProfile fetches a user by ID.
	GetProfile(ctx context.Context, id string) (*models.User, error)
}
