package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Product mirrors the backend's product payload. Identity is server-assigned
// and numeric.
type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stockQuantity"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateProductInput is the body of a product creation request.
type CreateProductInput struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
}

// ListProducts fetches the full catalog. No authentication required.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, "list products", http.MethodGet, "/products", "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches one product by its server-assigned id.
func (c *Client) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var p Product
	if err := c.do(ctx, "fetch product", http.MethodGet, fmt.Sprintf("/products/%d", id), "", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProduct creates a product. Requires a bearer token.
func (c *Client) CreateProduct(ctx context.Context, in CreateProductInput, token string) (*Product, error) {
	var p Product
	if err := c.do(ctx, "create product", http.MethodPost, "/products", token, in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
