// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parc

// Sequencing combinators. All of them run p1 then p2 with cumulative
// consumption; if p1 fails, p2 never runs and p1's error propagates; if
// p2 fails, its error propagates with the state reflecting p1's
// consumption plus any partial attempt by p2.

// Pair is an ordered tuple of two parse results, produced by [Seq].
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// KeepLeft runs p1 then p2 and succeeds with p1's value, discarding
// p2's. Both must succeed.
func KeepLeft[A, B any](p1 Parser[A], p2 Parser[B]) Parser[A] {
	return func(s State) (State, Result[A]) {
		s, r1 := p1(s)
		v1, ok := r1.Get()
		if !ok {
			return s, r1
		}
		s, r2 := p2(s)
		if r2.IsErr() {
			return s, propagate[A](r2)
		}
		return s, OK(v1)
	}
}

// KeepRight runs p1 then p2 and succeeds with p2's value, discarding
// p1's. Both must succeed.
func KeepRight[A, B any](p1 Parser[A], p2 Parser[B]) Parser[B] {
	return func(s State) (State, Result[B]) {
		s, r1 := p1(s)
		if r1.IsErr() {
			return s, propagate[B](r1)
		}
		return p2(s)
	}
}

// Seq runs p1 then p2 and succeeds with both values as a [Pair].
// Both must succeed.
func Seq[A, B any](p1 Parser[A], p2 Parser[B]) Parser[Pair[A, B]] {
	return func(s State) (State, Result[Pair[A, B]]) {
		s, r1 := p1(s)
		v1, ok := r1.Get()
		if !ok {
			return s, propagate[Pair[A, B]](r1)
		}
		s, r2 := p2(s)
		v2, ok := r2.Get()
		if !ok {
			return s, propagate[Pair[A, B]](r2)
		}
		return s, OK(Pair[A, B]{Fst: v1, Snd: v2})
	}
}
