package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tmiyata/shopfront/internal/store"
)

// account is the stored shape. The password hash never leaves this package.
type account struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"passwordHash"`
}

type localClient struct {
	store store.Store
}

// NewLocalClient creates an auth client backed by the users slot. Sessions it
// issues carry no bearer token; the local backend has nothing to call with
// one.
func NewLocalClient(st store.Store) Client {
	return &localClient{store: st}
}

func (c *localClient) Register(ctx context.Context, in RegisterInput) (*User, error) {
	var accounts []account
	if _, err := c.store.Read(ctx, store.SlotUsers, &accounts); err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if strings.EqualFold(a.Email, in.Email) {
			return nil, ErrEmailTaken
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	a := account{
		ID:           uuid.NewString(),
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: string(hash),
	}
	accounts = append(accounts, a)
	if err := c.store.Write(ctx, store.SlotUsers, accounts); err != nil {
		return nil, err
	}
	return &User{ID: a.ID, Email: a.Email, Name: a.Name}, nil
}

func (c *localClient) Login(ctx context.Context, email, password string) (*Session, error) {
	var accounts []account
	if _, err := c.store.Read(ctx, store.SlotUsers, &accounts); err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if !strings.EqualFold(a.Email, email) {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
			return nil, ErrInvalidCredentials
		}
		return &Session{UserID: a.ID, Email: a.Email, Name: a.Name}, nil
	}
	return nil, ErrInvalidCredentials
}
