// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

import "sync"

// Deferred is a Result whose outer tag has not been demanded yet: the
// suspension point of demand-driven evaluation. A consumer pulls by
// calling Force (or the package-level [Force], which resolves a whole
// chain); a consumer that never pulls abandons the computation for
// reclamation.
//
// Forcing is memoized, so a Deferred may be observed from several choice
// points — and from the caller after a choice point already forced it —
// without repeating work.
type Deferred[S, T, A any] struct {
	once sync.Once
	f    func() Result[S, T, A]
	r    Result[S, T, A]
}

func (*Deferred[S, T, A]) result() {}

// Force runs the pending computation, or returns the memoized outcome if
// it has run already. The returned Result may itself be Deferred; use the
// package-level [Force] to resolve to a determined tag.
func (d *Deferred[S, T, A]) Force() Result[S, T, A] {
	d.once.Do(func() {
		d.r = d.f()
		d.f = nil
	})
	return d.r
}

// delay wraps a pending computation in a Deferred node.
func delay[S, T, A any](f func() Result[S, T, A]) *Deferred[S, T, A] {
	return &Deferred[S, T, A]{f: f}
}

// Suspend defers the application of p: the returned parser yields a
// [Deferred] result immediately, and p runs only when a consumer forces
// the outer tag. Sequencing with [Bind] keeps the suspension — work
// scheduled after a suspended step is itself suspended — and [Commit]
// keeps the commit tag observable without forcing the work underneath.
func Suspend[S, T, A any](p Parser[S, T, A]) Parser[S, T, A] {
	return func(in Input[T], st S) Result[S, T, A] {
		return delay(func() Result[S, T, A] {
			return p(in, st)
		})
	}
}

// Defer builds the parser on first use instead of at construction time,
// breaking the definition cycle of recursive grammars:
//
//	var expr komb.Plain[rune, int]
//	expr = komb.OneOf(
//		komb.Alt("number", number),
//		komb.Alt("parens", komb.Bracket(open, komb.Defer(func() komb.Plain[rune, int] { return expr }), close)),
//	)
//
// Unlike [Suspend], Defer is eager at parse time: only the construction of
// the parser is late-bound, not its application.
func Defer[S, T, A any](f func() Parser[S, T, A]) Parser[S, T, A] {
	return func(in Input[T], st S) Result[S, T, A] {
		return f()(in, st)
	}
}
