/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package memstore

import (
	"sync"

	"github.com/letsgoexplore/shamir-secret-sharing/pkg/storage"
)

// Provider represents a MemStore implementation of the storage.Provider interface.
type Provider struct {
	dbs map[string]*MemStore
	mux sync.RWMutex
}

// NewProvider instantiates Provider.
func NewProvider() *Provider {
	return &Provider{dbs: make(map[string]*MemStore)}
}

// CreateStore creates a new store with the given name.
func (p *Provider) CreateStore(name string) error {
	p.mux.Lock()
	defer p.mux.Unlock()

	_, exists := p.dbs[name]
	if exists {
		return storage.ErrDuplicateStore
	}

	p.dbs[name] = &MemStore{db: make(map[string][]byte)}

	return nil
}

// OpenStore opens an existing store with the given name and returns it.
func (p *Provider) OpenStore(name string) (storage.Store, error) {
	p.mux.RLock()
	defer p.mux.RUnlock()

	store, exists := p.dbs[name]
	if !exists {
		return nil, storage.ErrStoreNotFound
	}

	return store, nil
}

// CloseStore closes a previously opened store.
func (p *Provider) CloseStore(name string) error {
	p.mux.Lock()
	defer p.mux.Unlock()

	store, exists := p.dbs[name]
	if !exists {
		return storage.ErrStoreNotFound
	}

	delete(p.dbs, name)

	store.close()

	return nil
}

// Close closes the provider.
func (p *Provider) Close() error {
	p.mux.Lock()
	defer p.mux.Unlock()

	for _, store := range p.dbs {
		store.close()
	}

	p.dbs = make(map[string]*MemStore)

	return nil
}

// MemStore holds shares in memory. Useful for demos or testing.
type MemStore struct {
	db  map[string][]byte
	mux sync.RWMutex
}

// Put stores the given key-value pair in the store.
func (m *MemStore) Put(k string, v []byte) error {
	if k == "" {
		return storage.ErrKeyRequired
	}

	m.mux.Lock()
	defer m.mux.Unlock()

	m.db[k] = v

	return nil
}

// Get retrieves the value in the store associated with the given key.
func (m *MemStore) Get(k string) ([]byte, error) {
	m.mux.RLock()
	defer m.mux.RUnlock()

	v, exists := m.db[k]
	if !exists {
		return nil, storage.ErrValueNotFound
	}

	return v, nil
}

// GetAll fetches all the key-value pairs within this store.
func (m *MemStore) GetAll() (map[string][]byte, error) {
	m.mux.RLock()
	defer m.mux.RUnlock()

	all := make(map[string][]byte, len(m.db))
	for k, v := range m.db {
		all[k] = v
	}

	return all, nil
}

func (m *MemStore) close() {
	m.mux.Lock()
	defer m.mux.Unlock()

	m.db = make(map[string][]byte)
}
