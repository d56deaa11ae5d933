// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parc

// Run executes p once against input, starting at offset 0.
// On success it returns the parsed value; the final state is discarded,
// so unconsumed trailing input is not an error. On failure it returns an
// [Error] whose Pos is the absolute offset of the failure state —
// primitives report positions relative to their own invocation, and Run
// alone translates them to absolute offsets in the original input.
func Run[A any](p Parser[A], input string) (A, error) {
	final, r := p(State{text: input})
	if v, ok := r.Get(); ok {
		return v, nil
	}
	e, _ := r.Err()
	var zero A
	return zero, Error{Desc: e.Desc, Pos: final.offset}
}

// RunState executes p once against input and returns the final state
// alongside the raw result, for callers that embed the engine and need
// to continue from where the parse stopped. Unlike [Run], the error in
// the result is left untranslated (position relative to the failing
// primitive).
func RunState[A any](p Parser[A], input string) (State, Result[A]) {
	return p(State{text: input})
}
