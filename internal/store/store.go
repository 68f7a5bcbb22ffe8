package store

import (
	"context"
	"errors"
)

// Slot names used by the local backend.
const (
	SlotProducts  = "products"
	SlotPurchases = "purchases"
	SlotUsers     = "users"
)

// ErrCorrupt reports that a slot holds data that no longer parses. A corrupt
// slot is never turned into an empty collection; doing so would mask data
// corruption as "no records".
var ErrCorrupt = errors.New("slot data is corrupt")

// Store reads and writes whole collections under named slots.
//
// Every mutation in this system is a read of the full collection, an
// in-memory change, and a write of the full collection. There is no isolation
// between writers of the same slot; the last write wins.
type Store interface {
	// Read unmarshals the collection stored under slot into dest. It returns
	// false with a nil error when the slot has never been written.
	Read(ctx context.Context, slot string, dest interface{}) (bool, error)
	// Write serializes value and replaces the slot's contents. Readers never
	// observe a partial write.
	Write(ctx context.Context, slot string, value interface{}) error
}
