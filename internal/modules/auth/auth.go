package auth

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrNotLoggedIn        = errors.New("not logged in")
)

// TokenSource supplies the bearer token for authenticated backend calls.
type TokenSource func(ctx context.Context) (string, error)

// StaticToken returns a TokenSource that always yields token.
func StaticToken(token string) TokenSource {
	return func(context.Context) (string, error) {
		if token == "" {
			return "", ErrNotLoggedIn
		}
		return token, nil
	}
}

// User is a registered account.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is the state held between login and logout. The core does not
// persist it; it lives for one client session.
type Session struct {
	UserID    string
	Email     string
	Name      string
	Token     string    // empty for the local variant
	ExpiresAt time.Time // zero when the token carries no expiry
}

// TokenSource adapts the session for authenticated calls.
func (s *Session) TokenSource() TokenSource {
	return func(context.Context) (string, error) {
		if s == nil || s.Token == "" {
			return "", ErrNotLoggedIn
		}
		return s.Token, nil
	}
}

// RegisterInput holds the fields for creating an account.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Client registers and authenticates users.
type Client interface {
	Register(ctx context.Context, in RegisterInput) (*User, error)
	Login(ctx context.Context, email, password string) (*Session, error)
}
