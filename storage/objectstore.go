// Package storage holds the object-storage collaborator used for product
// images. Order placement never touches it.
package storage

import "context"

// ObjectStore uploads a byte payload under a key and returns a publicly
// resolvable URL for it.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}
