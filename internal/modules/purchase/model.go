package purchase

import "time"

// Purchase is one append-only record of a completed checkout. Records are
// never mutated or deleted.
type Purchase struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"productId"`
	ProductName  string    `json:"productName"`
	Quantity     int       `json:"quantity"`
	Price        float64   `json:"price"`
	Total        float64   `json:"total"`
	PurchaseDate time.Time `json:"purchaseDate"`
	UserEmail    string    `json:"userEmail"`
}

// RecordInput holds the caller-supplied fields of a purchase. The total,
// identity and timestamp are assigned by the ledger.
type RecordInput struct {
	ProductID   string
	ProductName string
	Quantity    int
	Price       float64
	UserEmail   string
	Address     string // consumed by the remote backend only
}
