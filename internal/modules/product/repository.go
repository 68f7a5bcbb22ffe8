package product

import (
	"context"

	"github.com/tmiyata/shopfront/internal/backend"
)

// Repository defines product storage operations shared by all backend
// variants. On the local variant, Get and Update report a missing id as a
// nil product with a nil error; absence is a normal result, not a failure.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	Add(ctx context.Context, in CreateInput) (*Product, error)
	Update(ctx context.Context, id string, in UpdateInput) (*Product, error)
	Delete(ctx context.Context, id string) (bool, error)
	Capabilities() backend.Capabilities
}
