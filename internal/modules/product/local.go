package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tmiyata/shopfront/internal/backend"
	"github.com/tmiyata/shopfront/internal/pkg/clock"
	"github.com/tmiyata/shopfront/internal/store"
)

type localRepository struct {
	store store.Store
	clock clock.Clock
}

// NewLocalRepository creates a product repository backed by the products
// slot. The first read of an empty slot seeds the sample catalog.
func NewLocalRepository(st store.Store, clk clock.Clock) Repository {
	return &localRepository{store: st, clock: clk}
}

func (r *localRepository) List(ctx context.Context) ([]Product, error) {
	var products []Product
	found, err := r.store.Read(ctx, store.SlotProducts, &products)
	if err != nil {
		return nil, err
	}
	if !found {
		products = seedCatalog()
		if err := r.store.Write(ctx, store.SlotProducts, products); err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
	}
	return products, nil
}

func (r *localRepository) Get(ctx context.Context, id string) (*Product, error) {
	products, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *localRepository) Add(ctx context.Context, in CreateInput) (*Product, error) {
	if in.Price < 0 {
		return nil, ErrNegativePrice
	}
	if in.Stock < 0 {
		return nil, ErrNegativeStock
	}
	products, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	p := Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Category:    in.Category,
		Stock:       in.Stock,
		CreatedAt:   r.clock.Now(),
	}
	products = append(products, p)
	if err := r.store.Write(ctx, store.SlotProducts, products); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *localRepository) Update(ctx context.Context, id string, in UpdateInput) (*Product, error) {
	products, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID != id {
			continue
		}
		p := products[i]
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.Description != nil {
			p.Description = *in.Description
		}
		if in.Price != nil {
			if *in.Price < 0 {
				return nil, ErrNegativePrice
			}
			p.Price = *in.Price
		}
		if in.Image != nil {
			p.Image = *in.Image
		}
		if in.Category != nil {
			p.Category = *in.Category
		}
		if in.Stock != nil {
			if *in.Stock < 0 {
				return nil, ErrNegativeStock
			}
			p.Stock = *in.Stock
		}
		products[i] = p
		if err := r.store.Write(ctx, store.SlotProducts, products); err != nil {
			return nil, err
		}
		return &p, nil
	}
	return nil, nil
}

func (r *localRepository) Delete(ctx context.Context, id string) (bool, error) {
	products, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	kept := make([]Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return false, nil
	}
	if err := r.store.Write(ctx, store.SlotProducts, kept); err != nil {
		return false, err
	}
	return true, nil
}

func (r *localRepository) Capabilities() backend.Capabilities {
	return backend.Capabilities{
		ProductCreation: true,
		ProductMutation: true,
		PurchaseHistory: true,
		LocalAccounts:   true,
	}
}
