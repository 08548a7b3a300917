// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

// Threaded-state primitives.
//
// The state S is an arbitrary caller-defined value carried alongside the
// remainder on every branch of a result, including failures. It is never
// consulted for backtracking decisions, and changes made before a failure
// are not rolled back: the state carried by the surviving result is final.

// Get reads the current state. It never fails and consumes nothing.
func Get[S, T any]() Parser[S, T, S] {
	return func(in Input[T], st S) Result[S, T, S] {
		return Success[S, T, S]{Rest: in, State: st, Value: st}
	}
}

// Put replaces the current state. It never fails and consumes nothing.
func Put[S, T any](st S) Parser[S, T, Unit] {
	return func(in Input[T], _ S) Result[S, T, Unit] {
		return Success[S, T, Unit]{Rest: in, State: st}
	}
}

// Modify applies f to the current state and produces the new state.
// It never fails and consumes nothing.
func Modify[S, T any](f func(S) S) Parser[S, T, S] {
	return func(in Input[T], st S) Result[S, T, S] {
		st = f(st)
		return Success[S, T, S]{Rest: in, State: st, Value: st}
	}
}

// RunState applies a stateful parser to an input and an initial state and
// reduces the outcome. It returns the produced value, the final state, the
// leftover remainder, and the error if the parse failed. The final state of
// a failed parse is the state as of the failure — not the initial state.
func RunState[S, T, A any](p Parser[S, T, A], in Input[T], initial S) (A, S, Input[T], error) {
	return Reduce[S, T, A](p(in, initial))
}

// EvalState runs a stateful parser and returns only the value.
func EvalState[S, T, A any](p Parser[S, T, A], in Input[T], initial S) (A, error) {
	a, _, _, err := RunState(p, in, initial)
	return a, err
}

// ExecState runs a stateful parser and returns only the final state.
func ExecState[S, T, A any](p Parser[S, T, A], in Input[T], initial S) (S, error) {
	_, st, _, err := RunState(p, in, initial)
	return st, err
}
