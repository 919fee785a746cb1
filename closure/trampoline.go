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

// Bounce is one step of a trampolined computation: either a final value or a
// deferred continuation producing the next step. Self-recursive functions
// rewritten to return Bounce values can be driven by Trampoline on a flat
// stack, independent of the recursion depth.
type Bounce[T any] struct {
	value T
	next  func() Bounce[T]
}

// Done wraps a final value, terminating a trampolined computation.
func Done[T any](value T) Bounce[T] {
	return Bounce[T]{value: value}
}

// Call defers the next step of a trampolined computation. The thunk is not
// invoked until the trampoline loop reaches it.
func Call[T any](next func() Bounce[T]) Bounce[T] {
	return Bounce[T]{next: next}
}

// Trampoline drives a bounced computation to completion, running each
// deferred step in a loop so the call stack does not grow with the number of
// steps, and returns the final value.
func Trampoline[T any](step Bounce[T]) T {
	for step.next != nil {
		step = step.next()
	}
	return step.value
}
