// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package coll

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Below a handful of items the overhead of spawning workers exceeds the work
// itself, so the parallel helpers fall back to a sequential loop.
const sequentialCutOff = 16

// ParEach invokes the given operation on every item using up to the given
// number of parallel workers. Items are claimed by workers in input order,
// but operations on different items may run concurrently. The first error
// cancels the remaining work and is returned. A worker count <= 0 defaults
// to the number of available CPUs.
func ParEach[T any](ctx context.Context, items []T, workers int, operation func(context.Context, T) error) error {
	_, err := parRun(ctx, items, workers, func(ctx context.Context, item T) (struct{}, error) {
		return struct{}{}, operation(ctx, item)
	})
	return err
}

// ParCollect transforms every item using up to the given number of parallel
// workers and returns the results in the input's order. The first error
// cancels the remaining work and is returned. A worker count <= 0 defaults
// to the number of available CPUs.
func ParCollect[T, R any](ctx context.Context, items []T, workers int, transform func(context.Context, T) (R, error)) ([]R, error) {
	return parRun(ctx, items, workers, transform)
}

func parRun[T, R any](ctx context.Context, items []T, workers int, transform func(context.Context, T) (R, error)) ([]R, error) {
	results := make([]R, len(items))
	if len(items) < sequentialCutOff {
		for i, item := range items {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			value, err := transform(ctx, item)
			if err != nil {
				return nil, err
			}
			results[i] = value
		}
		return results, nil
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(items) {
		workers = len(items)
	}

	// Workers claim items through a shared cursor. This keeps items flowing
	// to whichever worker is free instead of pre-partitioning the input.
	var cursor atomic.Int64
	group, groupCtx := errgroup.WithContext(ctx)
	for range workers {
		group.Go(func() error {
			for {
				next := int(cursor.Add(1) - 1)
				if next >= len(items) {
					return nil
				}
				if err := groupCtx.Err(); err != nil {
					return err
				}
				value, err := transform(groupCtx, items[next])
				if err != nil {
					return err
				}
				results[next] = value
			}
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
