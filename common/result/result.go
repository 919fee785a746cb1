// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package result

// Result encapsulates a value along with an error. It is intended to be used
// in scenarios where a single type is needed to represent the outcome of an
// operation that can either succeed with a value of type T or fail with an
// error. This allows fallible operations to flow through function
// compositions, channels, or containers as plain values.
type Result[T any] struct {
	value T
	err   error
}

// Ok creates a Result representing a successful outcome with the given value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err creates a Result representing a failed outcome with the given error.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Of packs a conventional value/error pair into a Result.
func Of[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// Get returns the value and error contained in the Result. Using this function
// forces the caller to handle potential errors.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// IsErr returns true if the Result represents a failed outcome.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// OrElse returns the contained value for a successful Result and the given
// fallback otherwise.
func (r Result[T]) OrElse(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

// Map applies the given transformation to the value of a successful Result.
// An erroneous Result passes through untouched and the transformation is not
// run.
func Map[A, B any](r Result[A], transform func(A) B) Result[B] {
	if r.err != nil {
		return Err[B](r.err)
	}
	return Ok(transform(r.value))
}

// AndThen chains a fallible follow-up operation onto a successful Result. An
// erroneous Result passes through untouched and the follow-up is not run.
func AndThen[A, B any](r Result[A], next func(A) Result[B]) Result[B] {
	if r.err != nil {
		return Err[B](r.err)
	}
	return next(r.value)
}
