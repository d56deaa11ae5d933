// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parc

import "fmt"

// Error describes a parse failure: a human-readable description and the
// position at which the failure was detected. Primitives report Pos
// relative to their own invocation (always 0); [Run] rewrites Pos to the
// absolute offset in the original input. Error is a comparable value
// type, so tests and callers may compare failures with ==.
type Error struct {
	Desc string
	Pos  int
}

// Error implements the error interface.
func (e Error) Error() string {
	return fmt.Sprintf("%s at position %d", e.Desc, e.Pos)
}

// Result represents the outcome of a parse step: either a value of type A
// or an [Error].
type Result[A any] struct {
	ok    bool
	err   Error
	value A
}

// OK creates a successful Result.
func OK[A any](a A) Result[A] {
	return Result[A]{ok: true, value: a}
}

// Failure creates a failed Result.
func Failure[A any](e Error) Result[A] {
	return Result[A]{ok: false, err: e}
}

// IsOK returns true if this is a successful result.
func (r Result[A]) IsOK() bool {
	return r.ok
}

// IsErr returns true if this is a failed result.
func (r Result[A]) IsErr() bool {
	return !r.ok
}

// Get returns the value and true, or zero and false.
func (r Result[A]) Get() (A, bool) {
	if r.ok {
		return r.value, true
	}
	var zero A
	return zero, false
}

// Err returns the failure and true, or a zero Error and false.
func (r Result[A]) Err() (Error, bool) {
	if !r.ok {
		return r.err, true
	}
	return Error{}, false
}

// propagate rethreads a failure under a new result type.
// Callers must only pass failed results.
func propagate[B, A any](r Result[A]) Result[B] {
	return Result[B]{ok: false, err: r.err}
}

// MatchResult pattern matches on the Result, calling onErr or onOK.
func MatchResult[A, T any](r Result[A], onErr func(Error) T, onOK func(A) T) T {
	if r.ok {
		return onOK(r.value)
	}
	return onErr(r.err)
}

// MapResult applies a function to the success value.
func MapResult[A, B any](r Result[A], f func(A) B) Result[B] {
	if r.ok {
		return OK(f(r.value))
	}
	return propagate[B](r)
}

// FlatMapResult sequences two Result computations.
func FlatMapResult[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	if r.ok {
		return f(r.value)
	}
	return propagate[B](r)
}

// Option represents a value that may be absent, as produced by [Optional].
type Option[A any] struct {
	some  bool
	value A
}

// Some creates a present Option.
func Some[A any](a A) Option[A] {
	return Option[A]{some: true, value: a}
}

// None creates an absent Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if a value is present.
func (o Option[A]) IsSome() bool {
	return o.some
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.some {
		return o.value, true
	}
	var zero A
	return zero, false
}

// MatchOption pattern matches on the Option, calling onNone or onSome.
func MatchOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the present value.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.some {
		return Some(f(o.value))
	}
	return None[B]()
}
