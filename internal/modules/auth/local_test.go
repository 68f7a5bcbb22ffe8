package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmiyata/shopfront/internal/store"
)

func TestLocalClient_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	client := NewLocalClient(store.NewMemoryStore())

	u, err := client.Register(ctx, RegisterInput{
		Name:     "花子",
		Email:    "hana@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "hana@example.com", u.Email)

	sess, err := client.Login(ctx, "hana@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, u.ID, sess.UserID)
	assert.Equal(t, "花子", sess.Name)
	assert.Empty(t, sess.Token, "local sessions carry no bearer token")
}

func TestLocalClient_LoginFailures(t *testing.T) {
	ctx := context.Background()
	client := NewLocalClient(store.NewMemoryStore())

	_, err := client.Register(ctx, RegisterInput{Name: "花子", Email: "hana@example.com", Password: "correct horse"})
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, err := client.Login(ctx, "hana@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := client.Login(ctx, "nobody@example.com", "correct horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLocalClient_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	client := NewLocalClient(store.NewMemoryStore())

	_, err := client.Register(ctx, RegisterInput{Name: "花子", Email: "hana@example.com", Password: "pw12345678"})
	require.NoError(t, err)

	_, err = client.Register(ctx, RegisterInput{Name: "偽花子", Email: "HANA@example.com", Password: "pw12345678"})
	assert.ErrorIs(t, err, ErrEmailTaken, "email comparison ignores case")
}

func TestSession_TokenSource(t *testing.T) {
	ctx := context.Background()

	t.Run("with token", func(t *testing.T) {
		sess := &Session{Token: "tok"}
		token, err := sess.TokenSource()(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok", token)
	})

	t.Run("without token", func(t *testing.T) {
		sess := &Session{}
		_, err := sess.TokenSource()(ctx)
		assert.ErrorIs(t, err, ErrNotLoggedIn)
	})
}
