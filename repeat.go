// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parc

// Optionality and repetition combinators.

// Optional converts a failure of p into a successful absent value.
// On success it succeeds with Some(value); on failure it succeeds with
// None, keeping whatever state the failing p left behind. All primitives
// in this package fail without consuming, so a non-match never causes
// net consumption — a parser sequenced after Optional sees the untouched
// input.
func Optional[A any](p Parser[A]) Parser[Option[A]] {
	return func(s State) (State, Result[Option[A]]) {
		s, r := p(s)
		if v, ok := r.Get(); ok {
			return s, OK(Some(v))
		}
		return s, OK(None[A]())
	}
}

// RepeatExact runs p exactly n times in sequence, collecting the n
// results in order. The first failing attempt fails the whole parser
// with that attempt's error and state — consumption by the successful
// attempts before it remains reflected in the returned state. n <= 0
// trivially succeeds with an empty slice and no consumption.
func RepeatExact[A any](n int, p Parser[A]) Parser[[]A] {
	return func(s State) (State, Result[[]A]) {
		xs := make([]A, 0, max(n, 0))
		for range n {
			next, r := p(s)
			v, ok := r.Get()
			if !ok {
				return next, propagate[[]A](r)
			}
			xs = append(xs, v)
			s = next
		}
		return s, OK(xs)
	}
}

// Repeat runs p until its first failure, collecting the successes in
// order. It always succeeds — zero matches yields an empty slice. The
// failed final attempt's consumption is discarded: the returned state
// reflects successful iterations only.
//
// Hazard: if p can succeed while consuming nothing, Repeat never
// terminates. Guarding against this is the caller's responsibility.
func Repeat[A any](p Parser[A]) Parser[[]A] {
	return func(s State) (State, Result[[]A]) {
		var xs []A
		for {
			next, r := p(s)
			v, ok := r.Get()
			if !ok {
				return s, OK(xs)
			}
			xs = append(xs, v)
			s = next
		}
	}
}

// Repeat1 runs p one or more times: it fails with p's error if the first
// attempt fails, and otherwise behaves like [Repeat]. The same
// zero-consumption hazard as Repeat applies.
func Repeat1[A any](p Parser[A]) Parser[[]A] {
	return Bind(p, func(first A) Parser[[]A] {
		return Map(Repeat(p), func(rest []A) []A {
			return append([]A{first}, rest...)
		})
	})
}
