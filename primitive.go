// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parc

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Primitive parsers built directly from input inspection.
// Every other parser in this package is composed from these,
// [Succeed]/[Fail], and the combinators.

// Literal returns a parser that matches expected byte-for-byte at the
// front of the remaining input, succeeding with expected and consuming
// exactly len(expected) bytes. Remaining input shorter than expected is
// an ordinary non-match, not a bounds error. On failure nothing is
// consumed and the error reads "expected <expected>".
func Literal(expected string) Parser[string] {
	return func(s State) (State, Result[string]) {
		if strings.HasPrefix(s.text, expected) {
			return s.Advance(len(expected)), OK(expected)
		}
		return s, Failure[string](Error{Desc: "expected " + expected, Pos: 0})
	}
}

// TakeWhile returns a parser consuming the maximal prefix of the
// remaining input whose runes all satisfy pred, succeeding with the
// matched substring. It always succeeds; an empty match is a valid
// success with zero consumption. Predicates from the unicode package
// (unicode.IsSpace, unicode.IsDigit, ...) can be passed directly.
func TakeWhile(pred func(rune) bool) Parser[string] {
	return func(s State) (State, Result[string]) {
		i := 0
		for i < len(s.text) {
			r, size := utf8.DecodeRuneInString(s.text[i:])
			if !pred(r) {
				break
			}
			i += size
		}
		return s.Advance(i), OK(s.text[:i])
	}
}

// AnyChar returns a parser consuming exactly one rune, succeeding with
// it. On empty remaining input it fails without consuming.
func AnyChar() Parser[rune] {
	return func(s State) (State, Result[rune]) {
		if len(s.text) == 0 {
			return s, Failure[rune](Error{
				Desc: fmt.Sprintf("expected any char, got none (input.len() = %d)", len(s.text)),
				Pos:  0,
			})
		}
		r, size := utf8.DecodeRuneInString(s.text)
		return s.Advance(size), OK(r)
	}
}
