package purchase

import (
	"context"

	"github.com/tmiyata/shopfront/internal/backend"
)

// Ledger is the append-only purchase log.
//
// Record does not check stock. The caller performs the stock verification and
// decrement before recording; a ledger called directly will record whatever
// quantity it is given.
type Ledger interface {
	Record(ctx context.Context, in RecordInput) (*Purchase, error)
	List(ctx context.Context) ([]Purchase, error)
	ListByUser(ctx context.Context, email string) ([]Purchase, error)
	Capabilities() backend.Capabilities
}
