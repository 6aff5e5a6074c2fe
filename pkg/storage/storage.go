// Package storage provides cell.Adapter implementations: an in-memory
// map, a directory of files, an embedded BadgerDB store, and an S3
// bucket. All adapters are safe for concurrent use.
package storage

import "github.com/cellkit-dev/cellkit/pkg/cell"

// Store extends cell.Adapter with the management operations the cellkit
// CLI and tests need. Every adapter in this package implements it.
type Store interface {
	cell.Adapter

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error

	// Keys lists the stored keys, in unspecified order.
	Keys() ([]string, error)
}
