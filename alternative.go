// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parc

// Alternation combinators.

// Or tries p1; if it succeeds, its result is returned. If p1 fails, p2
// runs against the original, unmodified state — a failed left
// alternative never leaks partial consumption into the right one. If p2
// also fails, p2's error is returned.
func Or[A any](p1, p2 Parser[A]) Parser[A] {
	return func(s State) (State, Result[A]) {
		s1, r1 := p1(s)
		if r1.IsOK() {
			return s1, r1
		}
		return p2(s)
	}
}

// OrElse tries each parser in order against the same starting state,
// returning the first success; if all fail, the last parser's error is
// returned. With no arguments it always fails.
func OrElse[A any](ps ...Parser[A]) Parser[A] {
	if len(ps) == 0 {
		return Fail[A](Error{Desc: "no alternative matched", Pos: 0})
	}
	p := ps[0]
	for _, q := range ps[1:] {
		p = Or(p, q)
	}
	return p
}
