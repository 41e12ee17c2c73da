package storage

import (
	"context"
	"fmt"
)

// Backing is the key-value persistence capability behind the state store.
// Values are JSON blobs. The store relies on nothing beyond per-key
// last-write-wins; an absent key is a normal condition, not an error.
type Backing interface {
	// Get returns the blob stored under key. The second result is false
	// when the key is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Storage keys. Cart and orders are partitioned per user id so that
// switching sessions can never leak another user's data into view.
const (
	KeyUsers    = "ecofinds_users"
	KeyProducts = "ecofinds_products"
	KeyUser     = "ecofinds_user"

	keyCartFmt   = "ecofinds_cart_%s"
	keyOrdersFmt = "ecofinds_orders_%s"
)

// CartKey returns the cart partition key for a user.
func CartKey(userID string) string { return fmt.Sprintf(keyCartFmt, userID) }

// OrdersKey returns the orders partition key for a user.
func OrdersKey(userID string) string { return fmt.Sprintf(keyOrdersFmt, userID) }
