/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package storage defines the contract for persisting shares outside the
// splitting engine. A store holds the shares of one split, keyed by their
// evaluation point index.
package storage

// Provider represents a share storage provider.
type Provider interface {
	// CreateStore creates a new store with the given name.
	CreateStore(name string) error

	// OpenStore opens an existing store and returns it.
	OpenStore(name string) (Store, error)

	// CloseStore closes the store with the given name.
	CloseStore(name string) error

	// Close closes all stores created under this store provider.
	Close() error
}

// Store represents one stored set of shares.
type Store interface {
	// Put stores the key-record pair.
	Put(k string, v []byte) error

	// Get fetches the record associated with the given key.
	Get(k string) ([]byte, error)

	// GetAll fetches all the key-record pairs within this store.
	GetAll() (map[string][]byte, error)
}
