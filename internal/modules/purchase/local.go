package purchase

import (
	"context"

	"github.com/google/uuid"

	"github.com/tmiyata/shopfront/internal/backend"
	"github.com/tmiyata/shopfront/internal/pkg/clock"
	"github.com/tmiyata/shopfront/internal/store"
)

type localLedger struct {
	store store.Store
	clock clock.Clock
}

// NewLocalLedger creates a ledger backed by the purchases slot. Unlike the
// product repository there is no seeding; an unset slot is an empty ledger.
func NewLocalLedger(st store.Store, clk clock.Clock) Ledger {
	return &localLedger{store: st, clock: clk}
}

func (l *localLedger) Record(ctx context.Context, in RecordInput) (*Purchase, error) {
	var purchases []Purchase
	if _, err := l.store.Read(ctx, store.SlotPurchases, &purchases); err != nil {
		return nil, err
	}
	p := Purchase{
		ID:           uuid.NewString(),
		ProductID:    in.ProductID,
		ProductName:  in.ProductName,
		Quantity:     in.Quantity,
		Price:        in.Price,
		Total:        in.Price * float64(in.Quantity),
		PurchaseDate: l.clock.Now(),
		UserEmail:    in.UserEmail,
	}
	purchases = append(purchases, p)
	if err := l.store.Write(ctx, store.SlotPurchases, purchases); err != nil {
		return nil, err
	}
	return &p, nil
}

func (l *localLedger) List(ctx context.Context) ([]Purchase, error) {
	var purchases []Purchase
	if _, err := l.store.Read(ctx, store.SlotPurchases, &purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}

func (l *localLedger) ListByUser(ctx context.Context, email string) ([]Purchase, error) {
	purchases, err := l.List(ctx)
	if err != nil {
		return nil, err
	}
	var matched []Purchase
	for _, p := range purchases {
		if p.UserEmail == email {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (l *localLedger) Capabilities() backend.Capabilities {
	return backend.Capabilities{
		ProductCreation: true,
		ProductMutation: true,
		PurchaseHistory: true,
		LocalAccounts:   true,
	}
}
