// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

import "github.com/pkg/errors"

// Next consumes exactly one token. It fails, consuming nothing, when no
// tokens remain.
func Next[S, T any]() Parser[S, T, T] {
	return func(in Input[T], st S) Result[S, T, T] {
		tok, rest, ok := in.Next()
		if !ok {
			return Failure[S, T, T]{Rest: in, State: st, Err: errors.New("unexpected end of input")}
		}
		return Success[S, T, T]{Rest: rest, State: st, Value: tok}
	}
}

// EOF succeeds, consuming nothing, exactly when no tokens remain;
// otherwise it fails without consuming.
func EOF[S, T any]() Parser[S, T, Unit] {
	return func(in Input[T], st S) Result[S, T, Unit] {
		if tok, _, ok := in.Next(); ok {
			return Failure[S, T, Unit]{Rest: in, State: st, Err: errors.Errorf("expected end of input, found %v", tok)}
		}
		return Success[S, T, Unit]{Rest: in, State: st}
	}
}

// Satisfy consumes one token and succeeds iff pred holds on it. On
// failure — predicate mismatch or end of input — nothing is consumed: the
// token remains available to a subsequent alternative.
func Satisfy[S, T any](pred func(T) bool) Parser[S, T, T] {
	return func(in Input[T], st S) Result[S, T, T] {
		tok, rest, ok := in.Next()
		if !ok {
			return Failure[S, T, T]{Rest: in, State: st, Err: errors.New("unexpected end of input")}
		}
		if !pred(tok) {
			return Failure[S, T, T]{Rest: in, State: st, Err: errors.Errorf("token %v does not satisfy predicate", tok)}
		}
		return Success[S, T, T]{Rest: rest, State: st, Value: tok}
	}
}

// Expect is [Satisfy] with a description of what was expected, for
// failure messages worth reading.
func Expect[S, T any](what string, pred func(T) bool) Parser[S, T, T] {
	return func(in Input[T], st S) Result[S, T, T] {
		tok, rest, ok := in.Next()
		if !ok {
			return Failure[S, T, T]{Rest: in, State: st, Err: errors.Errorf("expected %s, found end of input", what)}
		}
		if !pred(tok) {
			return Failure[S, T, T]{Rest: in, State: st, Err: errors.Errorf("expected %s, found %v", what, tok)}
		}
		return Success[S, T, T]{Rest: rest, State: st, Value: tok}
	}
}

// Literal consumes one token and succeeds iff it equals want.
// Nothing is consumed on failure.
func Literal[S any, T comparable](want T) Parser[S, T, T] {
	return func(in Input[T], st S) Result[S, T, T] {
		tok, rest, ok := in.Next()
		if !ok {
			return Failure[S, T, T]{Rest: in, State: st, Err: errors.Errorf("expected %v, found end of input", want)}
		}
		if tok != want {
			return Failure[S, T, T]{Rest: in, State: st, Err: errors.Errorf("expected %v, found %v", want, tok)}
		}
		return Success[S, T, T]{Rest: rest, State: st, Value: tok}
	}
}

// Reparse prepends toks onto the front of the remaining input and succeeds
// producing nothing, with no other observable effect. It is the one
// sanctioned way a remainder grows: re-feeding lexically expanded input
// (a macro or entity body) through the same parser as if it were original
// input.
func Reparse[S, T any](toks ...T) Parser[S, T, Unit] {
	return func(in Input[T], st S) Result[S, T, Unit] {
		return Success[S, T, Unit]{Rest: prepend(toks, in), State: st}
	}
}
