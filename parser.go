// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

import "github.com/pkg/errors"

// Parser is a pure parsing description: a function from a remainder and a
// threaded state to a [Result]. Parser values are stateless, constructed
// once and reused; all run-time state lives in the Input and in S.
//
// S is the caller-threaded state type, T the token type, A the produced
// value type. Parsers that thread no state use the [Plain] alias.
type Parser[S, T, A any] func(in Input[T], st S) Result[S, T, A]

// Unit is the empty state and the value type of parsers that produce
// nothing, such as [EOF] and [Reparse].
type Unit = struct{}

// Plain is a parser with no threaded state.
type Plain[T, A any] = Parser[Unit, T, A]

// Return lifts a pure value into a parser. The resulting parser succeeds
// immediately, consuming nothing and leaving the state untouched.
func Return[S, T, A any](a A) Parser[S, T, A] {
	return func(in Input[T], st S) Result[S, T, A] {
		return Success[S, T, A]{Rest: in, State: st, Value: a}
	}
}

// Pure lifts a value into a stateless parser.
// Pure(a) is equivalent to Return[Unit, T](a) with full type inference on A.
func Pure[T, A any](a A) Plain[T, A] {
	return Return[Unit, T](a)
}

// Fail builds a parser that fails with the given message, consuming
// nothing. The failure is plain (recoverable): an enclosing choice point
// may still try an alternative.
func Fail[S, T, A any](format string, args ...any) Parser[S, T, A] {
	return FailErr[S, T, A](errors.Errorf(format, args...))
}

// FailErr is [Fail] with a ready-made error value.
func FailErr[S, T, A any](err error) Parser[S, T, A] {
	return func(in Input[T], st S) Result[S, T, A] {
		return Failure[S, T, A]{Rest: in, State: st, Err: err}
	}
}

// Bind sequences two parsers (monadic bind). It runs p, then passes the
// produced value to f to get the next parser, which continues from p's
// remainder and state. If p fails, f is never consulted; if p's result is
// committed, the whole sequence is committed.
func Bind[S, T, A, B any](p Parser[S, T, A], f func(A) Parser[S, T, B]) Parser[S, T, B] {
	return func(in Input[T], st S) Result[S, T, B] {
		return bindResult(p(in, st), func(rest Input[T], st2 S, a A) Result[S, T, B] {
			return f(a)(rest, st2)
		})
	}
}

// Map applies a pure function to a parser's produced value.
//
// Allocation note: Map is equivalent to Bind(p, compose(Return, f)) but
// avoids the intermediate Return closure, making it the preferred choice
// when the transformation is pure.
func Map[S, T, A, B any](p Parser[S, T, A], f func(A) B) Parser[S, T, B] {
	return func(in Input[T], st S) Result[S, T, B] {
		return bindResult(p(in, st), func(rest Input[T], st2 S, a A) Result[S, T, B] {
			return Success[S, T, B]{Rest: rest, State: st2, Value: f(a)}
		})
	}
}

// Then sequences two parsers, discarding the first value.
// This is more efficient than Bind when the second parser does not depend
// on the first result.
func Then[S, T, A, B any](p Parser[S, T, A], q Parser[S, T, B]) Parser[S, T, B] {
	return func(in Input[T], st S) Result[S, T, B] {
		return bindResult(p(in, st), func(rest Input[T], st2 S, _ A) Result[S, T, B] {
			return q(rest, st2)
		})
	}
}

// ThenSkip sequences two parsers, keeping the first value and discarding
// the second. The mirror of [Then].
func ThenSkip[S, T, A, B any](p Parser[S, T, A], q Parser[S, T, B]) Parser[S, T, A] {
	return func(in Input[T], st S) Result[S, T, A] {
		return bindResult(p(in, st), func(rest Input[T], st2 S, a A) Result[S, T, A] {
			return bindResult(q(rest, st2), func(rest2 Input[T], st3 S, _ B) Result[S, T, A] {
				return Success[S, T, A]{Rest: rest2, State: st3, Value: a}
			})
		})
	}
}
