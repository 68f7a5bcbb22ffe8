package backend

import (
	"errors"
	"fmt"
)

// ErrUnsupported reports a documented capability gap of the active backend,
// as opposed to a transient failure. Calls fail before any I/O and must not
// be retried.
var ErrUnsupported = errors.New("operation not supported by this backend")

// Unsupported wraps ErrUnsupported with the operation name.
func Unsupported(op string) error {
	return fmt.Errorf("%s: %w", op, ErrUnsupported)
}

// Capabilities describes what the configured backend can do. Call sites
// branch on these flags instead of on the concrete variant.
type Capabilities struct {
	ProductCreation bool // add new products
	ProductMutation bool // update and delete existing products
	PurchaseHistory bool // list recorded purchases
	LocalAccounts   bool // register accounts without a remote backend
}
