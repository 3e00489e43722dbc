// Package store is the facade over the document store. Handlers perform
// their guarded writes through it, and the audit log stream consumes its
// push-based snapshot subscriptions. The underlying persistence enforces
// nothing: the access policy is evaluated in the handlers, before any call
// into this package.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// Docs is the facade instance the app writes through, set up once in
// SetupApp.
var Docs Store

var (
	// ErrUnavailable is a transient failure of the underlying store.
	ErrUnavailable = errors.New("store: unavailable")
	// ErrNotFound marks a write or delete against a missing record.
	ErrNotFound = errors.New("store: record not found")
)

// Snapshot is the full current result set of a subscribed collection.
type Snapshot []bson.M

type Query struct {
	Sort       string // field to sort by
	Descending bool
	Limit      int64
}

type Store interface {
	// Write creates the record when id is empty (returning the new id) and
	// updates it otherwise.
	Write(ctx context.Context, collection string, id string, payload any) (string, error)
	Delete(ctx context.Context, collection string, id string) error
	// Subscribe delivers the full current result set once immediately and
	// again after every underlying change. Closing the subscription (or the
	// context) detaches it and stops delivery.
	Subscribe(ctx context.Context, collection string, q Query) (*Subscription, error)
}

// Subscription hands out snapshots on C. A slow consumer only ever misses
// intermediate states: the latest snapshot is always retained for delivery.
type Subscription struct {
	C      <-chan Snapshot
	cancel context.CancelFunc
}

func (s *Subscription) Close() {
	s.cancel()
}
