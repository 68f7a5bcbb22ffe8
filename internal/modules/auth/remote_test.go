package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmiyata/shopfront/internal/apiclient"
)

func newStubAuthServer(t *testing.T, loginToken string) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Post("/register", func(w http.ResponseWriter, req *http.Request) {
		var in apiclient.RegisterInput
		json.NewDecoder(req.Body).Decode(&in)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(apiclient.User{ID: 42, Email: in.Email, Name: in.Name})
	})
	r.Post("/login", func(w http.ResponseWriter, req *http.Request) {
		var in map[string]string
		json.NewDecoder(req.Body).Decode(&in)
		if in["password"] != "correct horse" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"token": loginToken})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestRemoteClient_Register(t *testing.T) {
	ctx := context.Background()
	srv := newStubAuthServer(t, "tok")
	client := NewRemoteClient(apiclient.New(srv.URL))

	u, err := client.Register(ctx, RegisterInput{Name: "花子", Email: "hana@example.com", Password: "pw12345678"})
	require.NoError(t, err)
	assert.Equal(t, "42", u.ID)
	assert.Equal(t, "hana@example.com", u.Email)
	assert.Equal(t, "花子", u.Name)
}

func TestRemoteClient_LoginOpaqueToken(t *testing.T) {
	ctx := context.Background()
	srv := newStubAuthServer(t, "not-a-jwt")
	client := NewRemoteClient(apiclient.New(srv.URL))

	sess, err := client.Login(ctx, "hana@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "not-a-jwt", sess.Token)
	assert.True(t, sess.ExpiresAt.IsZero(), "opaque tokens carry no expiry")
}

func TestRemoteClient_LoginJWTClaims(t *testing.T) {
	ctx := context.Background()

	exp := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.StandardClaims{
		Subject:   "42",
		ExpiresAt: exp.Unix(),
	}).SignedString([]byte("server-side-secret"))
	require.NoError(t, err)

	srv := newStubAuthServer(t, token)
	client := NewRemoteClient(apiclient.New(srv.URL))

	sess, err := client.Login(ctx, "hana@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, token, sess.Token)
	assert.Equal(t, "42", sess.UserID)
	assert.True(t, sess.ExpiresAt.Equal(exp))
}

func TestRemoteClient_LoginRejected(t *testing.T) {
	ctx := context.Background()
	srv := newStubAuthServer(t, "tok")
	client := NewRemoteClient(apiclient.New(srv.URL))

	_, err := client.Login(ctx, "hana@example.com", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login")
}
