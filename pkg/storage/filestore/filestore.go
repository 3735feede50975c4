/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package filestore is a storage.Provider backed by plain files, one per store.
// Records are persisted as "<key>:<base64(value)>" lines, so a store written
// with share indices as keys is directly readable as the share wire format.
package filestore

import (
	"encoding/base64"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/letsgoexplore/shamir-secret-sharing/pkg/log"
	"github.com/letsgoexplore/shamir-secret-sharing/pkg/storage"
)

const (
	storeFilePerm = 0600
	storeDirPerm  = 0700
)

var logger = log.New("storage/filestore") // nolint:gochecknoglobals // package logger

// Provider represents a file-backed implementation of the storage.Provider interface.
type Provider struct {
	dir string
	mux sync.Mutex
}

// NewProvider instantiates a Provider rooted at the given directory.
func NewProvider(dir string) *Provider {
	return &Provider{dir: dir}
}

// CreateStore creates a new store file with the given name.
func (p *Provider) CreateStore(name string) error {
	p.mux.Lock()
	defer p.mux.Unlock()

	if err := os.MkdirAll(p.dir, storeDirPerm); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	path := p.storePath(name)

	if _, err := os.Stat(path); err == nil {
		return storage.ErrDuplicateStore
	}

	if err := ioutil.WriteFile(path, nil, storeFilePerm); err != nil {
		return fmt.Errorf("create store file: %w", err)
	}

	logger.Debugf("created store [%s]", path)

	return nil
}

// OpenStore opens an existing store file with the given name and returns it.
func (p *Provider) OpenStore(name string) (storage.Store, error) {
	p.mux.Lock()
	defer p.mux.Unlock()

	path := p.storePath(name)

	if _, err := os.Stat(path); err != nil {
		return nil, storage.ErrStoreNotFound
	}

	return &FileStore{path: path}, nil
}

// CloseStore closes the store with the given name. Stores hold no open
// handles between operations, so this only verifies the store exists.
func (p *Provider) CloseStore(name string) error {
	p.mux.Lock()
	defer p.mux.Unlock()

	if _, err := os.Stat(p.storePath(name)); err != nil {
		return storage.ErrStoreNotFound
	}

	return nil
}

// Close closes the provider.
func (p *Provider) Close() error {
	return nil
}

func (p *Provider) storePath(name string) string {
	return filepath.Join(p.dir, name)
}

// FileStore persists shares in a single file, one record per line.
type FileStore struct {
	path string
	mux  sync.Mutex
}

// Put stores the given key-value pair in the store.
func (s *FileStore) Put(k string, v []byte) error {
	if k == "" {
		return storage.ErrKeyRequired
	}

	if strings.ContainsAny(k, ":\n") {
		return storage.ErrInvalidKey
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}

	records[k] = v

	return s.flush(records)
}

// Get retrieves the value in the store associated with the given key.
func (s *FileStore) Get(k string) ([]byte, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}

	v, exists := records[k]
	if !exists {
		return nil, storage.ErrValueNotFound
	}

	return v, nil
}

// GetAll fetches all the key-value pairs within this store.
func (s *FileStore) GetAll() (map[string][]byte, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	return s.load()
}

func (s *FileStore) load() (map[string][]byte, error) {
	contents, err := ioutil.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read store file: %w", err)
	}

	records := make(map[string][]byte)

	for _, line := range strings.Split(string(contents), "\n") {
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed record [%s] in store file %s", line, s.path)
		}

		v, err := base64.StdEncoding.DecodeString(parts[1])
		if err != nil {
			return nil, fmt.Errorf("decode record value for key [%s]: %w", parts[0], err)
		}

		records[parts[0]] = v
	}

	return records, nil
}

func (s *FileStore) flush(records map[string][]byte) error {
	keys := make([]string, 0, len(records))
	for k := range records {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var builder strings.Builder

	for _, k := range keys {
		builder.WriteString(k)
		builder.WriteString(":")
		builder.WriteString(base64.StdEncoding.EncodeToString(records[k]))
		builder.WriteString("\n")
	}

	if err := ioutil.WriteFile(s.path, []byte(builder.String()), storeFilePerm); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}

	return nil
}
