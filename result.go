// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

// Result is the outcome of applying a [Parser] to an [Input] and a state.
// It is a sealed sum of four node types:
//
//   - [Success]: a value, the remainder after it, and the state
//   - [Failure]: a recoverable error, the remainder at the failure point,
//     and the state as of the failure
//   - [Committed]: any Result marked immune to backtracking by an
//     enclosing choice point
//   - [Deferred]: a pending computation whose outer tag has not been
//     demanded yet (demand-driven evaluation only)
//
// Results exist only for the duration of a single application; drivers
// reduce them to plain value-or-error outcomes.
type Result[S, T, A any] interface {
	result()
}

// Success carries a produced value, the remainder after it, and the
// threaded state.
type Success[S, T, A any] struct {
	Rest  Input[T]
	State S
	Value A
}

// Failure carries a recoverable error, the remainder at the point of
// failure (position context), and the threaded state as of the failure.
// Siblings of a choice point are tried against the pre-choice remainder,
// not this one.
type Failure[S, T, A any] struct {
	Rest  Input[T]
	State S
	Err   error
}

// Committed wraps a Result to mark it immune to backtracking. The inner
// Result is never itself Committed: nesting is collapsed eagerly.
type Committed[S, T, A any] struct {
	Result Result[S, T, A]
}

func (Success[S, T, A]) result()   {}
func (Failure[S, T, A]) result()   {}
func (Committed[S, T, A]) result() {}

// committed wraps r in exactly one Committed layer.
func committed[S, T, A any](r Result[S, T, A]) Result[S, T, A] {
	if _, ok := r.(Committed[S, T, A]); ok {
		return r
	}
	return Committed[S, T, A]{Result: r}
}

// bindResult is the sequencing rule of the algebra: continue from a
// success, short-circuit a failure, propagate commitment forward, and keep
// deferred work deferred.
func bindResult[S, T, A, B any](r Result[S, T, A], f func(Input[T], S, A) Result[S, T, B]) Result[S, T, B] {
	switch r := r.(type) {
	case Success[S, T, A]:
		return f(r.Rest, r.State, r.Value)
	case Failure[S, T, A]:
		return Failure[S, T, B]{Rest: r.Rest, State: r.State, Err: r.Err}
	case Committed[S, T, A]:
		// Sequencing after a committed step is itself committed; collapse
		// in case the continuation committed again.
		return committed[S, T, B](bindResult(r.Result, f))
	case *Deferred[S, T, A]:
		return delay(func() Result[S, T, B] {
			return bindResult(r.Force(), f)
		})
	default:
		panic("komb: unknown result node")
	}
}

// Force resolves pending [Deferred] nodes at the top of r until the outer
// tag is Success, Failure or Committed. It never reaches under Committed
// and never touches the produced value: forcing only the outer tag does
// not force unrelated inner computation.
//
// Force on an already-determined Result returns it unchanged.
func Force[S, T, A any](r Result[S, T, A]) Result[S, T, A] {
	for {
		d, ok := r.(*Deferred[S, T, A])
		if !ok {
			return r
		}
		r = d.Force()
	}
}

// Reduce collapses r to the caller-visible outcome: the produced value,
// the final state, the leftover remainder, and the error if the parse
// failed. The committed/plain distinction is an internal backtracking
// signal and is erased here.
//
// Reduce forces any pending work r still holds.
func Reduce[S, T, A any](r Result[S, T, A]) (A, S, Input[T], error) {
	n, _ := settle[S, T, A](r)
	if f, ok := n.(Failure[S, T, A]); ok {
		var zero A
		return zero, f.State, f.Rest, f.Err
	}
	s := n.(Success[S, T, A])
	return s.Value, s.State, s.Rest, nil
}

// settle forces r to a plain Success or Failure node, stripping any
// Committed layers and reporting whether one was present.
func settle[S, T, A any](r Result[S, T, A]) (Result[S, T, A], bool) {
	com := false
	for {
		switch n := Force[S, T, A](r).(type) {
		case Committed[S, T, A]:
			com = true
			r = n.Result
		default:
			return n, com
		}
	}
}
