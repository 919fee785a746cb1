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
	"errors"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
)

// ErrClosed is returned by operations on a Store that has been closed.
var ErrClosed = errors.New("store already closed")

// LevelDBStore is a Store persisting cached results in a LevelDB instance on
// disk. It is safe for concurrent use; operations racing Close report
// ErrClosed.
type LevelDBStore struct {
	db     *leveldb.DB
	mu     sync.RWMutex // guards closed against in-flight operations
	closed bool
}

// OpenLevelDB opens (or creates) a LevelDB-backed Store in the given
// directory. The returned store must be closed when no longer needed.
func OpenLevelDB(directory string) (*LevelDBStore, error) {
	db, err := leveldb.OpenFile(directory, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache directory %s: %w", directory, err)
	}
	return &LevelDBStore{db: db}, nil
}

// Get retrieves the value stored under the given key, reporting false if the
// key is not present.
func (s *LevelDBStore) Get(key []byte) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, false, ErrClosed
	}
	value, err := s.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Set stores the given value under the given key, replacing any previous
// value.
func (s *LevelDBStore) Set(key []byte, value []byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	return s.db.Put(key, value, nil)
}

// Entries reports the number of cached results in the store. It runs a full
// scan, so it is intended for inspection tooling, not hot paths.
func (s *LevelDBStore) Entries() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, ErrClosed
	}
	count := 0
	iter := s.db.NewIterator(nil, nil)
	defer iter.Release()
	for iter.Next() {
		count++
	}
	return count, iter.Error()
}

// Close flushes and releases the underlying database, waiting for in-flight
// operations to complete. Closing an already closed store is a no-op.
func (s *LevelDBStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
