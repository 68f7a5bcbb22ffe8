package shop

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/tmiyata/shopfront/internal/backend"
	"github.com/tmiyata/shopfront/internal/modules/product"
	"github.com/tmiyata/shopfront/internal/modules/purchase"
)

var ErrInsufficientStock = errors.New("insufficient stock")

// Service drives the storefront flows on top of whichever backend variant
// the composition root selected. Capability branching happens here; callers
// never ask which variant is active.
type Service struct {
	products  product.Repository
	purchases purchase.Ledger
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewService creates a storefront service.
func NewService(products product.Repository, purchases purchase.Ledger, logger *zap.Logger) *Service {
	return &Service{
		products:  products,
		purchases: purchases,
		validate:  validator.New(),
		logger:    logger,
	}
}

// CheckoutInput holds one purchase request from the storefront.
type CheckoutInput struct {
	ProductID string `validate:"required"`
	Quantity  int    `validate:"gte=1"`
	UserEmail string `validate:"required,email"`
	Address   string
}

// Checkout verifies stock, decrements it, and records the purchase. The
// stock check and decrement live here, not in the ledger: the ledger records
// whatever it is told.
func (s *Service) Checkout(ctx context.Context, in CheckoutInput) (*purchase.Purchase, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}
	p, err := s.products.Get(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("product %s not found", in.ProductID)
	}
	if in.Quantity > p.Stock {
		return nil, ErrInsufficientStock
	}
	if s.products.Capabilities().ProductMutation {
		// Local backend: stock lives in our own slot, so decrement it before
		// recording. The remote backend adjusts stock server-side.
		stock := p.Stock - in.Quantity
		if _, err := s.products.Update(ctx, in.ProductID, product.UpdateInput{Stock: &stock}); err != nil {
			return nil, fmt.Errorf("decrement stock: %w", err)
		}
	}
	rec, err := s.purchases.Record(ctx, purchase.RecordInput{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    in.Quantity,
		Price:       p.Price,
		UserEmail:   in.UserEmail,
		Address:     in.Address,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("purchase recorded",
		zap.String("product", p.Name),
		zap.Int("quantity", in.Quantity),
		zap.Float64("total", rec.Total))
	return rec, nil
}

// ListProducts returns the catalog.
func (s *Service) ListProducts(ctx context.Context) ([]product.Product, error) {
	return s.products.List(ctx)
}

// GetProduct returns one product, or nil when the id is unknown to the local
// backend.
func (s *Service) GetProduct(ctx context.Context, id string) (*product.Product, error) {
	return s.products.Get(ctx, id)
}

// AddProduct validates the input and creates the product.
func (s *Service) AddProduct(ctx context.Context, in product.CreateInput) (*product.Product, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}
	if !s.products.Capabilities().ProductCreation {
		return nil, backend.Unsupported("add product")
	}
	return s.products.Add(ctx, in)
}

// UpdateProduct validates the input and applies a partial update. The gate on
// capability keeps unsupported mutations from ever reaching the backend.
func (s *Service) UpdateProduct(ctx context.Context, id string, in product.UpdateInput) (*product.Product, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}
	if !s.products.Capabilities().ProductMutation {
		return nil, backend.Unsupported("update product")
	}
	return s.products.Update(ctx, id, in)
}

// DeleteProduct removes a product, reporting whether one existed.
func (s *Service) DeleteProduct(ctx context.Context, id string) (bool, error) {
	if !s.products.Capabilities().ProductMutation {
		return false, backend.Unsupported("delete product")
	}
	return s.products.Delete(ctx, id)
}

// History lists recorded purchases, filtered to one user when email is set.
func (s *Service) History(ctx context.Context, email string) ([]purchase.Purchase, error) {
	if email == "" {
		return s.purchases.List(ctx)
	}
	return s.purchases.ListByUser(ctx, email)
}
