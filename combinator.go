// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

// Derived combinators, implemented once on top of the primitive set and
// therefore identical in observable behavior under every driver.
//
// Repetition follows longest-match-with-backtracking semantics: a plain
// failure of the element parser ends the run, a committed failure aborts
// it, and a committed success taints the whole repetition committed. An
// iteration that succeeds consuming nothing would loop forever; the loop
// detects that by remainder identity and stops with the run collected so
// far.

// Many applies p zero or more times and produces the values of the longest
// achievable run of successes.
func Many[S, T, A any](p Parser[S, T, A]) Parser[S, T, []A] {
	return func(in Input[T], st S) Result[S, T, []A] {
		var acc []A
		commit := false
		cur := in
		wrap := func(r Result[S, T, []A]) Result[S, T, []A] {
			if commit {
				return committed[S, T, []A](r)
			}
			return r
		}
		for {
			node, com := settle[S, T, A](p(cur, st))
			commit = commit || com
			switch n := node.(type) {
			case Failure[S, T, A]:
				if com {
					// Committed failure: alternation is disabled, the
					// repetition cannot recover.
					return committed[S, T, []A](Failure[S, T, []A]{Rest: n.Rest, State: n.State, Err: n.Err})
				}
				return wrap(Success[S, T, []A]{Rest: cur, State: st, Value: acc})
			case Success[S, T, A]:
				if n.Rest == cur {
					// Zero tokens consumed: stop rather than loop forever.
					return wrap(Success[S, T, []A]{Rest: cur, State: n.State, Value: acc})
				}
				acc = append(acc, n.Value)
				cur = n.Rest
				st = n.State
			}
		}
	}
}

// Many1 applies p one or more times.
func Many1[S, T, A any](p Parser[S, T, A]) Parser[S, T, []A] {
	return Bind(p, func(first A) Parser[S, T, []A] {
		return Map(Many(p), func(rest []A) []A {
			return append([]A{first}, rest...)
		})
	})
}

// Option applies p, producing def without consuming when p fails plainly.
func Option[S, T, A any](p Parser[S, T, A], def A) Parser[S, T, A] {
	return OnFail(p, Return[S, T](def))
}

// Optional applies p, reporting whether it matched. A plain failure of p
// succeeds with ok=false and consumes nothing.
func Optional[S, T, A any](p Parser[S, T, A]) Parser[S, T, Opt[A]] {
	return OnFail(
		Map(p, func(a A) Opt[A] { return Opt[A]{Value: a, OK: true} }),
		Return[S, T](Opt[A]{}),
	)
}

// Opt is the outcome of [Optional]: a value and whether it was present.
type Opt[A any] struct {
	Value A
	OK    bool
}

// Exactly applies p exactly n times.
func Exactly[S, T, A any](n int, p Parser[S, T, A]) Parser[S, T, []A] {
	return func(in Input[T], st S) Result[S, T, []A] {
		acc := make([]A, 0, n)
		var commit bool
		cur := in
		for range n {
			node, com := settle[S, T, A](p(cur, st))
			commit = commit || com
			switch m := node.(type) {
			case Failure[S, T, A]:
				f := Result[S, T, []A](Failure[S, T, []A]{Rest: m.Rest, State: m.State, Err: m.Err})
				if commit {
					return committed[S, T, []A](f)
				}
				return f
			case Success[S, T, A]:
				acc = append(acc, m.Value)
				cur = m.Rest
				st = m.State
			}
		}
		s := Result[S, T, []A](Success[S, T, []A]{Rest: cur, State: st, Value: acc})
		if commit {
			return committed[S, T, []A](s)
		}
		return s
	}
}

// Bracket runs open, then p, then close, producing p's value.
func Bracket[S, T, A, L, R any](open Parser[S, T, L], p Parser[S, T, A], close Parser[S, T, R]) Parser[S, T, A] {
	return Then(open, ThenSkip(p, close))
}

// SepBy parses zero or more occurrences of p separated by sep, producing
// the values of p.
func SepBy[S, T, A, B any](p Parser[S, T, A], sep Parser[S, T, B]) Parser[S, T, []A] {
	return OnFail(SepBy1(p, sep), Return[S, T]([]A(nil)))
}

// SepBy1 parses one or more occurrences of p separated by sep.
func SepBy1[S, T, A, B any](p Parser[S, T, A], sep Parser[S, T, B]) Parser[S, T, []A] {
	return Bind(p, func(first A) Parser[S, T, []A] {
		return Map(Many(Then(sep, p)), func(rest []A) []A {
			return append([]A{first}, rest...)
		})
	})
}

// opStep is one operator application pending in a [Chainl1] or [Chainr1]
// fold: the operator function and its right operand.
type opStep[A any] struct {
	f func(A, A) A
	a A
}

// chainSteps parses the (op, operand) tail of an operator chain.
func chainSteps[S, T, A any](p Parser[S, T, A], op Parser[S, T, func(A, A) A]) Parser[S, T, []opStep[A]] {
	return Many(Bind(op, func(f func(A, A) A) Parser[S, T, opStep[A]] {
		return Map(p, func(a A) opStep[A] { return opStep[A]{f: f, a: a} })
	}))
}

// Chainl1 parses one or more occurrences of p separated by op, a parser
// producing a left-associative binary function, and folds the values as it
// goes: a·b·c parses as (a·b)·c.
func Chainl1[S, T, A any](p Parser[S, T, A], op Parser[S, T, func(A, A) A]) Parser[S, T, A] {
	rest := chainSteps(p, op)
	return Bind(p, func(first A) Parser[S, T, A] {
		return Map(rest, func(steps []opStep[A]) A {
			acc := first
			for _, s := range steps {
				acc = s.f(acc, s.a)
			}
			return acc
		})
	})
}

// Chainr1 is [Chainl1] with right associativity: a·b·c parses as a·(b·c).
func Chainr1[S, T, A any](p Parser[S, T, A], op Parser[S, T, func(A, A) A]) Parser[S, T, A] {
	rest := chainSteps(p, op)
	return Bind(p, func(first A) Parser[S, T, A] {
		return Map(rest, func(steps []opStep[A]) A {
			if len(steps) == 0 {
				return first
			}
			// Rightmost operand first, then fold back toward the head.
			acc := steps[len(steps)-1].a
			for i := len(steps) - 1; i > 0; i-- {
				acc = steps[i].f(steps[i-1].a, acc)
			}
			return steps[0].f(first, acc)
		})
	})
}
