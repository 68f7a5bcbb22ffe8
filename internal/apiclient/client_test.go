package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListProducts(t *testing.T) {
	ctx := context.Background()
	r := chi.NewRouter()
	r.Get("/products", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode([]Product{
			{ID: 1, Name: "A", Price: 100, StockQuantity: 5},
			{ID: 2, Name: "B", Price: 200, StockQuantity: 3},
		})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	products, err := New(srv.URL).ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, 5, products[0].StockQuantity)
}

func TestClient_BearerToken(t *testing.T) {
	ctx := context.Background()
	var gotAuth, gotContentType string
	r := chi.NewRouter()
	r.Post("/products", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		gotContentType = req.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Product{ID: 9})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	_, err := New(srv.URL).CreateProduct(ctx, CreateProductInput{Name: "X"}, "secret-token")
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestClient_NonSuccessStatus(t *testing.T) {
	ctx := context.Background()
	r := chi.NewRouter()
	r.Get("/products", func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, `{"detail":"database exploded"}`, http.StatusInternalServerError)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	_, err := New(srv.URL).ListProducts(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list products")
	assert.NotContains(t, err.Error(), "database exploded", "response body detail is not surfaced")
}

func TestClient_UnreachableHost(t *testing.T) {
	ctx := context.Background()
	_, err := New("http://unreachable.invalid").ListProducts(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list products")
}

func TestClient_TrimsTrailingSlash(t *testing.T) {
	ctx := context.Background()
	r := chi.NewRouter()
	r.Post("/login", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"token": "tok"})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	token, err := New(srv.URL + "/").Login(ctx, "a@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}
