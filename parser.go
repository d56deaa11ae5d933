// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parc

// State is an immutable snapshot of a parse in progress: the remaining
// input and the absolute byte offset of that input within the original
// text. States are plain values — every parse step returns a fresh State
// and never mutates the one it received, so a State may be held, compared,
// or re-parsed from freely.
//
// Invariants: Offset only grows as parsing proceeds, and Remaining is
// always the suffix of the original input that starts at Offset.
type State struct {
	text   string
	offset int
}

// Remaining returns the unconsumed suffix of the input.
func (s State) Remaining() string { return s.text }

// Offset returns the absolute byte position of Remaining within the
// original input.
func (s State) Offset() int { return s.offset }

// Advance returns a State with the first n bytes of the remaining input
// consumed. It is the building block for custom primitives; n must not
// exceed len(s.Remaining()).
func (s State) Advance(n int) State {
	return State{text: s.text[n:], offset: s.offset + n}
}

// Parser is a parse step: a function from a State to a successor State
// plus a typed result or failure. Parser[A] produces a value of type A
// on success.
//
// Parser values are immutable after construction and freely shareable —
// the same sub-parser may be embedded in any number of larger parsers and
// invoked concurrently, provided its closure captures no mutable state
// (none of the constructors in this package do). Each invocation threads
// its own State; there is no shared memory between runs.
type Parser[A any] func(State) (State, Result[A])

// FromFunc wraps a raw transition function as a Parser. This is the
// primitive constructor for parsers that need direct access to the State,
// such as user-defined primitives built on [State.Advance].
func FromFunc[A any](f func(State) (State, Result[A])) Parser[A] {
	return Parser[A](f)
}

// Succeed returns a parser that always succeeds with a and consumes
// nothing. It never fails.
func Succeed[A any](a A) Parser[A] {
	return func(s State) (State, Result[A]) {
		return s, OK(a)
	}
}

// Fail returns a parser that always fails with e and consumes nothing.
// The error's Pos is taken as given; [Run] translates failure positions
// to absolute offsets from the failure State, not from Pos.
func Fail[A any](e Error) Parser[A] {
	return func(s State) (State, Result[A]) {
		return s, Failure[A](e)
	}
}
