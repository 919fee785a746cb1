// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package memo

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/golang/snappy"
	"golang.org/x/crypto/sha3"
)

// Store is a byte-oriented key/value backend for persistent memoization.
// Implementations must tolerate concurrent use.
type Store interface {
	// Get retrieves the value stored under the given key. The second result
	// is false if the key is not present.
	Get(key []byte) ([]byte, bool, error)
	// Set stores the given value under the given key, replacing any previous
	// value.
	Set(key []byte, value []byte) error
	// Close flushes and releases the backend. The Store must not be used
	// afterwards.
	Close() error
}

// cacheKey derives a fixed-size store key from an argument value. Arguments
// are gob-encoded and hashed, so arbitrarily large arguments map to keys of
// constant size.
func cacheKey[A any](arg A) ([]byte, error) {
	var buffer bytes.Buffer
	if err := gob.NewEncoder(&buffer).Encode(arg); err != nil {
		return nil, fmt.Errorf("failed to encode cache key: %w", err)
	}
	hash := sha3.Sum256(buffer.Bytes())
	return hash[:], nil
}

// encodeValue turns a result value into its stored form, a snappy-compressed
// gob encoding.
func encodeValue[R any](value R) ([]byte, error) {
	var buffer bytes.Buffer
	if err := gob.NewEncoder(&buffer).Encode(value); err != nil {
		return nil, fmt.Errorf("failed to encode cached value: %w", err)
	}
	return snappy.Encode(nil, buffer.Bytes()), nil
}

// decodeValue reverses encodeValue. A value that cannot be decompressed or
// decoded is reported as an error rather than silently recomputed, since it
// indicates a corrupted cache.
func decodeValue[R any](data []byte) (R, error) {
	var value R
	raw, err := snappy.Decode(nil, data)
	if err != nil {
		return value, fmt.Errorf("failed to decompress cached value: %w", err)
	}
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&value); err != nil {
		return value, fmt.Errorf("failed to decode cached value: %w", err)
	}
	return value, nil
}
