// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package komb provides parser combinators with explicit commit semantics
// in Go.
//
// A [Parser] is a pure description: a function from a token remainder (and a
// caller-threaded state value) to a [Result]. Parsers are built by composing
// a small primitive set — [Return], [Bind], [Fail], [Commit], [OnFail],
// [OneOf] — and the generic combinators derived from it ([Many], [SepBy],
// [Bracket], ...). Applying a parser to an [Input] produces a Result; the
// top-level drivers ([Run], [RunState], [Items]) reduce that Result to a
// plain value-or-error outcome plus the leftover input.
//
// # Design Philosophy
//
// komb provides:
//   - A three-way result algebra (success, recoverable failure, committed)
//     with an exact sequencing rule, so deep failures are reported instead
//     of being silently discarded by backtracking
//   - One generic combinator layer shared by all evaluation strategies
//   - Demand-driven evaluation for streaming or unbounded input, realized
//     as pull-based producers rather than a native suspension primitive
//
// # Commitment
//
// Backtracking is driven entirely by the result algebra. [OnFail] and
// [OneOf] retry an alternative only when a branch produces a plain failure;
// wrapping a parser in [Commit] marks every result it produces as immune to
// that retry, so the committed branch's failure surfaces as the definitive
// error. Commitment propagates irreversibly forward through [Bind]: once a
// step is committed, everything sequenced after it is committed too.
// Commitment is a backtracking signal only — it never turns success into
// failure or vice versa, and it is invisible at the [Run] boundary.
//
// # Remainders
//
// An [Input] is a persistent, structurally shared suffix of the token
// stream. Alternatives inside a choice point derive independent downstream
// remainders from one shared original with no interference and no locking.
// Remainders only shrink, with one sanctioned exception: [Reparse] prepends
// tokens, which is how lexically expanded input is re-fed through the same
// parser as if it were original input.
//
// # Threaded State
//
// The general [Parser] form threads an arbitrary caller-defined value
// alongside the remainder, readable and replaceable through [Get], [Put]
// and [Modify]. Each alternative of a choice point receives the pre-choice
// state; a discarded branch's state is discarded with it, and the state
// carried by the surviving result — including a failing one — becomes
// final. There is no automatic transactional rollback beyond that.
// Stateless parsers use the [Plain] alias with [Unit] state.
//
// # Demand-Driven Evaluation
//
// Laziness changes when work happens, never what result is produced.
// [FromNext] and [FromSeq] build remainders that pull tokens from a source
// only as parsing demands them, memoizing each cell so backtracking never
// re-pulls. [Suspend] defers a parser's application behind a [Deferred]
// result whose outer tag becomes observable only when a consumer calls
// [Force]; a consumer that stops forcing simply abandons the rest of the
// computation for reclamation. [Items] and [ItemsState] stream one parse
// result per pull, so a consumer can process a prefix of the output while
// later input is still arriving, and [ManyStream] does the same for a
// repetition inside a larger grammar.
//
// # Drivers
//
//   - [Run]: eager, stateless
//   - [RunState], [EvalState], [ExecState]: eager with threaded state
//   - [Items], [Force]: demand-driven, stateless
//   - [ItemsState]: demand-driven with threaded state
//
// All drivers collapse the committed/plain distinction before returning.
package komb
