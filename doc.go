// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package parsex provides composable parser combinators in Go.
//
// The core type [Parser] consumes a prefix of an [Input] and produces a value
// or an error. Every combinator in this package wraps one or two parsers and
// is itself a [Parser], so grammars nest to any depth and are evaluated by
// plain recursive descent. Parsers hold no mutable state: parsing the same
// input twice gives the same result.
//
// # Design Philosophy
//
// parsex provides:
//   - A minimal parser contract over any cursor type exposing [Input.Len] and [Input.Offset]
//   - Recoverable and fatal failures as ordinary error values, never panics
//   - Fixed-size repetition into Go arrays with no heap allocation
//
// # Parser Contract
//
//   - [Input]: Cursor with remaining length and absolute offset
//   - [Parser]: Parse(input) (rest, output, error)
//   - [Recognizer]: Recognize(input) (rest, error), output discarded
//   - [Func]: Adapt a function to [Parser] and [Recognizer]
//   - [Discard]: Lift a [Recognizer] to a [Parser] producing struct{}
//
// # Errors
//
// A failure is recoverable (this alternative did not match) or fatal (the
// grammar is violated). Recoverable failures may be swallowed by [Alt], [Opt]
// and by the graceful end of [SeparatedList1] and [Many1]; fatal failures
// always propagate.
//
//   - [Error]: Offset, [ErrorKind] and optional cause
//   - [NewError]: Recoverable error from a kind
//   - [NewExternalError]: Recoverable error carrying an external cause
//   - [NewFailure]: Fatal error from a kind
//   - [IsFatal], [IsRecoverable]: Classify any error
//   - [Escalate]: Turn an error into a fatal one
//
// # Value Transformation
//
//   - [MapRes]: Fallible conversion; failures roll back to the start position
//   - [Map]: Infallible conversion
//   - [Value]: Replace the output with a constant
//   - [Bind]: Choose the next parser from a parsed value
//
// # Sequencing
//
//   - [Skip]: Keep the first output, consume a trailing delimiter
//   - [PrecededBy]: Consume a leading delimiter, keep the second output
//   - [And]: Keep both outputs as a [Pair]
//   - [Delimited]: Keep the middle of three
//
// # Repetition
//
//   - [SeparatedList1]: One or more elements with separators, into a slice
//   - [Many1]: One or more consecutive elements, into a slice
//   - [SeparatedArray]: Exactly len(A) elements with separators, into an [Array] A
//
// Repetitions guard against parsers that succeed without consuming input:
// such a cycle is a fatal [KindSeparatedList] or [KindMany1] error rather
// than an endless loop.
//
// # Choice
//
//   - [Alt]: First choice that matches
//   - [Opt]: Optional match
//   - [Cut]: Commit to a branch
//   - [Verify]: Reject outputs failing a predicate
//   - [AllConsuming]: Require the whole input to be consumed
//
// # Chaining
//
// [Ext] wraps a parser so combinators read as a pipeline:
//
//	var number = parsex.From(text.Number[int]())
//
//	px := number.Skip(text.Tag("px"))
//	csv := number.SeparatedList1(text.Tag(","))
//
// # Example
//
//	point := parsex.SeparatedArray[[2]int](text.Number[int](), text.Tag(","))
//	segment := parsex.SeparatedArray[[2][2]int](point, text.Tag(" -> "))
//	segments := text.Lines(segment)
//
//	got, err := text.Parse(segments, "0,9 -> 5,9\n8,0 -> 0,8\n")
//	// got == [][2][2]int{{{0, 9}, {5, 9}}, {{8, 0}, {0, 8}}}
package parsex
