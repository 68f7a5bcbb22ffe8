package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/tmiyata/shopfront/internal/apiclient"
)

type remoteClient struct {
	api *apiclient.Client
}

// NewRemoteClient creates an auth client backed by the remote API.
func NewRemoteClient(api *apiclient.Client) Client {
	return &remoteClient{api: api}
}

func (c *remoteClient) Register(ctx context.Context, in RegisterInput) (*User, error) {
	u, err := c.api.Register(ctx, apiclient.RegisterInput{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		return nil, err
	}
	return &User{
		ID:    strconv.FormatInt(u.ID, 10),
		Email: u.Email,
		Name:  u.Name,
	}, nil
}

func (c *remoteClient) Login(ctx context.Context, email, password string) (*Session, error) {
	token, err := c.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	sess := &Session{Email: email, Token: token}
	applyClaims(sess, token)
	return sess, nil
}

// applyClaims fills expiry and subject when the token happens to be a JWT.
// The client holds no signing key, so the parse is unverified and only
// informs session bookkeeping; the token itself stays opaque.
func applyClaims(sess *Session, token string) {
	claims := &jwt.StandardClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return
	}
	if claims.ExpiresAt > 0 {
		sess.ExpiresAt = time.Unix(claims.ExpiresAt, 0)
	}
	if claims.Subject != "" {
		sess.UserID = claims.Subject
	}
}
