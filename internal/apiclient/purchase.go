package apiclient

import (
	"context"
	"net/http"
)

// PurchaseItem is one line of a purchase request.
type PurchaseItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// PurchaseInput is the body of a purchase request.
type PurchaseInput struct {
	Items   []PurchaseItem `json:"items"`
	Address string         `json:"address"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// CreatePurchase submits a purchase and returns the backend's confirmation
// message. Requires a bearer token. The backend exposes no purchase
// retrieval endpoint, so this is the only purchase call.
func (c *Client) CreatePurchase(ctx context.Context, in PurchaseInput, token string) (string, error) {
	var out messageResponse
	if err := c.do(ctx, "create purchase", http.MethodPost, "/purchase", token, in, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
