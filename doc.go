// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package parc provides parser combinators in Go: small, reusable
// parsing primitives composed into larger parsers with plain function
// application, without a separate grammar file or code generator.
//
// The core type [Parser] represents a parse step as a function from a
// [State] (remaining input plus absolute offset) to a successor State
// and a typed [Result]. Grammars are built once at definition time by
// composing parsers; [Run] feeds the initial state through the composed
// parser exactly once.
//
// # Design Philosophy
//
// parc provides:
//   - A minimal but complete set of primitives and combinators
//   - Parsers as plain generic function values — immutable, shareable,
//     and safe for concurrent runs
//   - Errors as comparable values carrying a description and position
//
// # Primitives
//
//   - [Succeed]: Always succeed with a value, consuming nothing
//   - [Fail]: Always fail with an error, consuming nothing
//   - [Literal]: Match an exact string prefix
//   - [TakeWhile]: Consume the maximal prefix satisfying a predicate
//   - [AnyChar]: Consume exactly one rune
//   - [FromFunc]: Build a custom primitive from a raw transition function
//
// # Core Operations
//
// Minimal monad operations:
//
//   - [Succeed]: Lift a pure value into a parser
//   - [Bind]: Sequence two parsers, the second chosen from the first's value
//
// Derived operations:
//
//   - [Map]: Apply a function to the result — equivalent to
//     Bind(p, func(a) Succeed(f(a)))
//
// # Repetition and Optionality
//
//   - [Optional]: Convert failure into a successful [Option] None
//   - [Repeat]: Zero or more matches, always succeeds
//   - [Repeat1]: One or more matches
//   - [RepeatExact]: Exactly n matches
//
// [Repeat] and [Repeat1] do not terminate if the inner parser succeeds
// without consuming input; that is a property of the caller's grammar,
// not guarded by the engine.
//
// # Sequencing and Alternation
//
//   - [KeepLeft]: Run both, keep the left value
//   - [KeepRight]: Run both, keep the right value
//   - [Seq]: Run both, keep both as a [Pair]
//   - [Or]: Try the left; on failure retry the right from the original
//     state (backtracking is limited to exactly this: a failed left
//     alternative never leaks consumption into the right one)
//   - [OrElse]: N-ary [Or]
//
// # Execution
//
//   - [Run]: Execute a parser against a full input string, translating
//     failure positions to absolute offsets
//   - [RunState]: Execute and keep the final state, for embedding
//
// The full input must be materialized as a single string; there is no
// streaming, no memoization, and no support for left-recursive grammars.
// On failure, [Run] reports the single deepest (last-attempted) error,
// never a list of all attempted alternatives.
//
// # Sum Types
//
// [Result] represents success or failure, [Option] presence or absence:
//
//   - [OK], [Failure]: Result constructors
//   - [Result.IsOK], [Result.IsErr], [Result.Get], [Result.Err]: Accessors
//   - [MatchResult], [MapResult], [FlatMapResult]: Pattern matching and maps
//   - [Some], [None]: Option constructors
//   - [Option.IsSome], [Option.Get]: Accessors
//   - [MatchOption], [MapOption]: Pattern matching and map
//
// # Example
//
//	ws := parc.TakeWhile(unicode.IsSpace)
//	name := parc.TakeWhile(isAlphanumeric)
//
//	entry := parc.Seq(
//		parc.KeepLeft(
//			parc.KeepRight(ws, name),
//			parc.KeepLeft(ws, parc.Literal("="))),
//		parc.KeepRight(ws, name))
//
//	pair, err := parc.Run(entry, "key1 = value1")
//	// pair == parc.Pair[string, string]{Fst: "key1", Snd: "value1"}
package parc
