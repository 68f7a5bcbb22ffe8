package purchase

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/tmiyata/shopfront/internal/apiclient"
	"github.com/tmiyata/shopfront/internal/backend"
	"github.com/tmiyata/shopfront/internal/modules/auth"
	"github.com/tmiyata/shopfront/internal/pkg/clock"
)

type remoteLedger struct {
	api    *apiclient.Client
	tokens auth.TokenSource
	clock  clock.Clock
	logger *zap.Logger
}

// NewRemoteLedger creates a ledger backed by the remote purchase endpoint.
// The backend exposes no retrieval endpoint, so listing fails with the
// unsupported-operation error rather than fabricating an empty history.
func NewRemoteLedger(api *apiclient.Client, tokens auth.TokenSource, clk clock.Clock, logger *zap.Logger) Ledger {
	return &remoteLedger{api: api, tokens: tokens, clock: clk, logger: logger}
}

func (l *remoteLedger) Record(ctx context.Context, in RecordInput) (*Purchase, error) {
	productID, err := strconv.ParseInt(in.ProductID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("record purchase: product id %q is not numeric", in.ProductID)
	}
	token, err := l.tokens(ctx)
	if err != nil {
		return nil, fmt.Errorf("record purchase: %w", err)
	}
	msg, err := l.api.CreatePurchase(ctx, apiclient.PurchaseInput{
		Items:   []apiclient.PurchaseItem{{ProductID: productID, Quantity: in.Quantity}},
		Address: in.Address,
	}, token)
	if err != nil {
		return nil, err
	}
	l.logger.Info("purchase confirmed", zap.String("message", msg))
	// The backend returns only a confirmation message, so the receipt is
	// assembled from the caller's input. The record id stays empty; the
	// server does not echo one back.
	return &Purchase{
		ProductID:    in.ProductID,
		ProductName:  in.ProductName,
		Quantity:     in.Quantity,
		Price:        in.Price,
		Total:        in.Price * float64(in.Quantity),
		PurchaseDate: l.clock.Now(),
		UserEmail:    in.UserEmail,
	}, nil
}

func (l *remoteLedger) List(ctx context.Context) ([]Purchase, error) {
	return nil, backend.Unsupported("list purchases")
}

func (l *remoteLedger) ListByUser(ctx context.Context, email string) ([]Purchase, error) {
	return nil, backend.Unsupported("list purchases by user")
}

func (l *remoteLedger) Capabilities() backend.Capabilities {
	return backend.Capabilities{
		ProductCreation: true,
	}
}
