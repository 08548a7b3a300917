// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

import (
	"strings"

	"github.com/pkg/errors"
)

// Commit marks every result p produces as immune to backtracking: an
// enclosing [OnFail] or [OneOf] will not try a sibling alternative once p
// has run, and p's failure — if any — surfaces as the definitive error.
//
// Commit adds exactly one [Committed] layer; nested commits collapse.
// It never changes the success/failure content of a result.
func Commit[S, T, A any](p Parser[S, T, A]) Parser[S, T, A] {
	return func(in Input[T], st S) Result[S, T, A] {
		r := p(in, st)
		if _, ok := r.(*Deferred[S, T, A]); ok {
			// Keep the commit tag observable without forcing the work.
			return Committed[S, T, A]{Result: r}
		}
		return committed[S, T, A](r)
	}
}

// OnFail is the binary choice point. It runs p; if the outcome is a plain
// [Failure] it is discarded and q runs against the same original remainder
// and the same pre-choice state. Any success or committed outcome from p is
// returned unchanged — q never runs in that case.
//
// The discarded branch's state dies with the branch; there is no other
// rollback.
func OnFail[S, T, A any](p, q Parser[S, T, A]) Parser[S, T, A] {
	return func(in Input[T], st S) Result[S, T, A] {
		r := Force[S, T, A](p(in, st))
		if _, ok := r.(Failure[S, T, A]); ok {
			return q(in, st)
		}
		return r
	}
}

// Labeled pairs an alternative with the label under which its failure is
// reported by [OneOf].
type Labeled[S, T, A any] struct {
	Label  string
	Parser Parser[S, T, A]
}

// Alt builds a [Labeled] alternative for [OneOf].
func Alt[S, T, A any](label string, p Parser[S, T, A]) Labeled[S, T, A] {
	return Labeled[S, T, A]{Label: label, Parser: p}
}

// OneOf is the labeled n-ary choice point. Alternatives are tried in order
// against the same original remainder and pre-choice state, under the same
// rule as [OnFail]: the first success or committed outcome short-circuits.
// If every alternative produces a plain failure, OneOf fails — without
// consuming — with a [*ChoiceError] listing each label and its message.
func OneOf[S, T, A any](alts ...Labeled[S, T, A]) Parser[S, T, A] {
	return func(in Input[T], st S) Result[S, T, A] {
		attempts := make([]Attempt, 0, len(alts))
		for _, alt := range alts {
			r := Force[S, T, A](alt.Parser(in, st))
			f, ok := r.(Failure[S, T, A])
			if !ok {
				return r
			}
			attempts = append(attempts, Attempt{Label: alt.Label, Err: f.Err})
		}
		return Failure[S, T, A]{Rest: in, State: st, Err: &ChoiceError{Attempts: attempts}}
	}
}

// Attempt records one alternative a [OneOf] tried and the failure it
// produced.
type Attempt struct {
	Label string
	Err   error
}

// ChoiceError is the composite failure of an exhausted [OneOf]: every
// attempted alternative's label with its individual message, indented for
// readability.
type ChoiceError struct {
	Attempts []Attempt
}

func (e *ChoiceError) Error() string {
	var b strings.Builder
	b.WriteString("no alternative matched:")
	for _, a := range e.Attempts {
		b.WriteString("\n    ")
		b.WriteString(a.Label)
		b.WriteString(": ")
		b.WriteString(strings.ReplaceAll(a.Err.Error(), "\n", "\n    "))
	}
	return b.String()
}

// Unwrap exposes the individual alternative failures to errors.Is/As.
func (e *ChoiceError) Unwrap() []error {
	errs := make([]error, len(e.Attempts))
	for i, a := range e.Attempts {
		errs[i] = a.Err
	}
	return errs
}

// AdjustErr rewrites the error of a failing parse without altering
// success. The rewrite reaches through [Committed] and [Deferred] layers
// to the failure they carry.
func AdjustErr[S, T, A any](p Parser[S, T, A], f func(error) error) Parser[S, T, A] {
	return func(in Input[T], st S) Result[S, T, A] {
		return adjustErr[S, T, A](p(in, st), f)
	}
}

func adjustErr[S, T, A any](r Result[S, T, A], f func(error) error) Result[S, T, A] {
	switch r := r.(type) {
	case Failure[S, T, A]:
		return Failure[S, T, A]{Rest: r.Rest, State: r.State, Err: f(r.Err)}
	case Committed[S, T, A]:
		return Committed[S, T, A]{Result: adjustErr[S, T, A](r.Result, f)}
	case *Deferred[S, T, A]:
		return delay(func() Result[S, T, A] {
			return adjustErr[S, T, A](r.Force(), f)
		})
	default:
		return r
	}
}

// Label prefixes a failing parse's message with context, in the manner of
// errors.Wrap. Success is untouched.
func Label[S, T, A any](p Parser[S, T, A], what string) Parser[S, T, A] {
	return AdjustErr(p, func(err error) error {
		return errors.Wrap(err, what)
	})
}
