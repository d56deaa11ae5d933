// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parc

// Monad operations for parsers.
//
// Minimal definition: Succeed (unit) and Bind are necessary and
// sufficient. Map is a derived operation kept as an optimization to
// avoid building an intermediate Succeed parser per transformation.

// Bind sequences two parsers (monadic bind).
// It runs p, then passes the value to f to obtain the next parser, which
// runs against the state p left behind. This enables grammars where what
// to parse next depends on what was just parsed. On failure, f is never
// invoked and the error propagates unchanged.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(s State) (State, Result[B]) {
		s, r := p(s)
		v, ok := r.Get()
		if !ok {
			return s, propagate[B](r)
		}
		return f(v)(s)
	}
}

// Map applies a pure function to the result of a parser.
// Consumption is whatever p consumed; failures propagate unchanged.
//
// Allocation note: Map is equivalent to Bind(p, compose(Succeed, f)) but
// avoids the intermediate Succeed closure, making it the preferred choice
// when the transformation is pure.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(s State) (State, Result[B]) {
		s, r := p(s)
		return s, MapResult(r, f)
	}
}
