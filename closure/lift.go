// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package closure

import (
	"github.com/jenspresser/groovy-core/common/future"
	"github.com/jenspresser/groovy-core/common/result"
)

// Lift converts a conventional fallible function into a total function over
// results. The lifted function can participate in compositions without each
// step having to handle the error case.
func Lift[A, R any](f func(A) (R, error)) Func1[A, result.Result[R]] {
	return func(a A) result.Result[R] {
		return result.Of(f(a))
	}
}

// Apply runs the function on the given argument in its own goroutine and
// returns a Future fulfilled with the outcome.
func Apply[A, R any](f Func1[A, R], arg A) future.Future[R] {
	return future.Async(f, arg)
}
