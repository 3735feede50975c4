/*
Copyright SecureKey Technologies Inc. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package storage

import "errors"

// ErrDuplicateStore is used when an attempt is made to create a duplicate store.
var ErrDuplicateStore = errors.New("store already exists")

// ErrStoreNotFound is used when a given store was not found in a provider.
var ErrStoreNotFound = errors.New("store not found")

// ErrValueNotFound is used when an attempt is made to retrieve a value using a key that isn't in the store.
var ErrValueNotFound = errors.New("store does not have a value associated with this key")

// ErrKeyRequired is returned when an attempt is made to call a method with an empty key when it's not allowed.
var ErrKeyRequired = errors.New("key is mandatory")

// ErrInvalidKey is returned when a key cannot be represented in the store's persistence format.
var ErrInvalidKey = errors.New("key contains characters not allowed by the store")
