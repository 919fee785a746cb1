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

// Persistent wraps a fallible pure function with write-through caching in the
// given Store. Results are served from the store when present; otherwise the
// function is run and its result stored before being returned. Errors of the
// function itself are never cached.
//
// The caller retains ownership of the store and is responsible for closing
// it.
func Persistent[A, R any](f func(A) (R, error), store Store) func(A) (R, error) {
	return func(arg A) (R, error) {
		var zero R
		key, err := cacheKey(arg)
		if err != nil {
			return zero, err
		}
		if data, found, err := store.Get(key); err != nil {
			return zero, err
		} else if found {
			return decodeValue[R](data)
		}
		value, err := f(arg)
		if err != nil {
			return zero, err
		}
		data, err := encodeValue(value)
		if err != nil {
			return zero, err
		}
		if err := store.Set(key, data); err != nil {
			return zero, err
		}
		return value, nil
	}
}
