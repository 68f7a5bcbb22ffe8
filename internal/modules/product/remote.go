package product

import (
	"context"
	"fmt"
	"strconv"

	"github.com/tmiyata/shopfront/internal/apiclient"
	"github.com/tmiyata/shopfront/internal/backend"
	"github.com/tmiyata/shopfront/internal/modules/auth"
)

type remoteRepository struct {
	api    *apiclient.Client
	tokens auth.TokenSource
}

// NewRemoteRepository creates a product repository backed by the remote API.
// tokens supplies the bearer token for create calls; reads go out
// unauthenticated. The backend documents no update or delete endpoints, so
// those operations fail with the unsupported-operation error before any
// request is built.
func NewRemoteRepository(api *apiclient.Client, tokens auth.TokenSource) Repository {
	return &remoteRepository{api: api, tokens: tokens}
}

func (r *remoteRepository) List(ctx context.Context) ([]Product, error) {
	wire, err := r.api.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	products := make([]Product, 0, len(wire))
	for _, w := range wire {
		products = append(products, fromWire(w))
	}
	return products, nil
}

// Get surfaces an unknown id as a transport error rather than a nil product:
// the backend reports every non-2xx status uniformly, so a 404 is not
// distinguishable from any other failure.
func (r *remoteRepository) Get(ctx context.Context, id string) (*Product, error) {
	wireID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		// Non-numeric ids cannot exist server-side.
		return nil, nil
	}
	w, err := r.api.GetProduct(ctx, wireID)
	if err != nil {
		return nil, err
	}
	p := fromWire(*w)
	return &p, nil
}

func (r *remoteRepository) Add(ctx context.Context, in CreateInput) (*Product, error) {
	token, err := r.tokens(ctx)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	w, err := r.api.CreateProduct(ctx, apiclient.CreateProductInput{
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		StockQuantity: in.Stock,
	}, token)
	if err != nil {
		return nil, err
	}
	p := fromWire(*w)
	return &p, nil
}

func (r *remoteRepository) Update(ctx context.Context, id string, in UpdateInput) (*Product, error) {
	return nil, backend.Unsupported("update product")
}

func (r *remoteRepository) Delete(ctx context.Context, id string) (bool, error) {
	return false, backend.Unsupported("delete product")
}

func (r *remoteRepository) Capabilities() backend.Capabilities {
	return backend.Capabilities{
		ProductCreation: true,
	}
}

func fromWire(w apiclient.Product) Product {
	return Product{
		ID:          strconv.FormatInt(w.ID, 10),
		Name:        w.Name,
		Description: w.Description,
		Price:       w.Price,
		Stock:       w.StockQuantity,
		CreatedAt:   w.CreatedAt,
	}
}
