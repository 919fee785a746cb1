// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package closure provides statically typed building blocks for working with
// function values: fixed-arity function types supporting partial application
// (currying from the left, the right, or an arbitrary position), function
// composition, and a trampoline for running self-recursive computations on a
// flat stack.
package closure

import "fmt"

// Func1 is a unary function value. It is the terminal shape produced by
// currying the higher-arity types in this package.
type Func1[A, R any] func(A) R

// Func2 is a binary function value supporting partial application.
type Func2[A, B, R any] func(A, B) R

// Func3 is a ternary function value supporting partial application.
type Func3[A, B, C, R any] func(A, B, C) R

// Identity returns the unary function mapping every value to itself.
func Identity[T any]() Func1[T, T] {
	return func(v T) T { return v }
}

// Curry fixes the first argument of a binary function, producing a unary one.
func (f Func2[A, B, R]) Curry(a A) Func1[B, R] {
	return func(b B) R { return f(a, b) }
}

// RCurry fixes the last argument of a binary function, producing a unary one.
func (f Func2[A, B, R]) RCurry(b B) Func1[A, R] {
	return func(a A) R { return f(a, b) }
}

// Curry fixes the first argument of a ternary function, producing a binary one.
func (f Func3[A, B, C, R]) Curry(a A) Func2[B, C, R] {
	return func(b B, c C) R { return f(a, b, c) }
}

// RCurry fixes the last argument of a ternary function, producing a binary one.
func (f Func3[A, B, C, R]) RCurry(c C) Func2[A, B, R] {
	return func(a A, b B) R { return f(a, b, c) }
}

// NCurry fixes the argument at the given index of a binary function. Index 0
// is equivalent to Curry, index 1 to RCurry. Any other index is a programming
// error and panics.
//
// Since the fixed argument may be of either parameter type, it is taken as an
// untyped value and asserted at call time.
func (f Func2[A, B, R]) NCurry(index int, value any) Func1[any, R] {
	switch index {
	case 0:
		return func(b any) R { return f(value.(A), b.(B)) }
	case 1:
		return func(a any) R { return f(a.(A), value.(B)) }
	default:
		panic(fmt.Sprintf("invalid curry index %d for a binary function", index))
	}
}

// NCurry fixes the argument at the given index of a ternary function. Index 0
// is equivalent to Curry, index 2 to RCurry, and index 1 fixes the middle
// argument. Any other index is a programming error and panics.
func (f Func3[A, B, C, R]) NCurry(index int, value any) Func2[any, any, R] {
	switch index {
	case 0:
		return func(b, c any) R { return f(value.(A), b.(B), c.(C)) }
	case 1:
		return func(a, c any) R { return f(a.(A), value.(B), c.(C)) }
	case 2:
		return func(a, b any) R { return f(a.(A), b.(B), value.(C)) }
	default:
		panic(fmt.Sprintf("invalid curry index %d for a ternary function", index))
	}
}

// AndThen composes this function with a follow-up transformation, producing
// x -> g(f(x)). It is the left-to-right composition direction.
func AndThen[A, R, S any](f Func1[A, R], g Func1[R, S]) Func1[A, S] {
	return func(a A) S { return g(f(a)) }
}

// Compose composes this function with a preceding transformation, producing
// x -> f(g(x)). It is the right-to-left composition direction, the inverse
// of AndThen.
func Compose[A, R, S any](f Func1[R, S], g Func1[A, R]) Func1[A, S] {
	return func(a A) S { return f(g(a)) }
}

// AndThen returns the composition x -> g(f(x)) for a follow-up with the same
// value type. For a type-changing follow-up use the package-level AndThen.
func (f Func1[A, R]) AndThen(g Func1[R, R]) Func1[A, R] {
	return AndThen(f, g)
}

// Compose returns the composition x -> f(g(x)) for a preceding function with
// the same argument type. For a type-changing one use the package-level
// Compose.
func (f Func1[A, R]) Compose(g Func1[A, A]) Func1[A, R] {
	return func(a A) R { return f(g(a)) }
}
