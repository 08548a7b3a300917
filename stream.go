// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

import "iter"

// Streaming drivers: pull-based repeated application of a parser, so a
// consumer can process a prefix of the parsed output while later input is
// still arriving. Resumption is always consumer-initiated; the engine
// performs no further work until the next pull, and a consumer that stops
// ranging abandons the rest of the computation.

// Items repeatedly applies p to the input, yielding one produced value per
// pull. The sequence ends cleanly when the input is exhausted, and ends
// after yielding the error when an application fails — committed or plain,
// the distinction is collapsed at this boundary. An application that
// succeeds consuming nothing ends the sequence instead of looping.
//
// The input may be demand-driven and unbounded: tokens are pulled from the
// source only as the consumer pulls results.
func Items[T, A any](p Plain[T, A], in Input[T]) iter.Seq2[A, error] {
	return func(yield func(A, error) bool) {
		cur := in
		for {
			if _, _, ok := cur.Next(); !ok {
				return
			}
			v, _, rest, err := Reduce[Unit, T, A](p(cur, Unit{}))
			if err != nil {
				var zero A
				yield(zero, err)
				return
			}
			if rest == cur {
				return
			}
			if !yield(v, nil) {
				return
			}
			cur = rest
		}
	}
}

// Parsed pairs a streamed value with the threaded state exactly as it
// stood when that value was produced.
type Parsed[S, A any] struct {
	Value A
	State S
}

// ItemsState is [Items] with threaded state. Each element carries the
// state snapshot at its production point: a consumer pulling a prefix
// never observes a state mutated by work it has not demanded yet.
func ItemsState[S, T, A any](p Parser[S, T, A], in Input[T], initial S) iter.Seq2[Parsed[S, A], error] {
	return func(yield func(Parsed[S, A], error) bool) {
		cur, st := in, initial
		for {
			if _, _, ok := cur.Next(); !ok {
				return
			}
			v, st2, rest, err := Reduce[S, T, A](p(cur, st))
			if err != nil {
				yield(Parsed[S, A]{State: st2}, err)
				return
			}
			if rest == cur {
				return
			}
			if !yield(Parsed[S, A]{Value: v, State: st2}, nil) {
				return
			}
			cur, st = rest, st2
		}
	}
}

// ManyStream is the streaming form of [Many] for use inside a larger
// grammar: it succeeds immediately — before any element has been parsed —
// with a sequence that parses one element per pull and a remainder that
// resolves once the repetition has ended. Pulling the remainder first
// drains the repetition on demand.
//
// Commit propagation is observable incrementally at element granularity: a
// committed failure of an element surfaces as the error element of the
// sequence (and poisons the remainder), while a plain failure ends the
// sequence cleanly, leaving the failed attempt's input to the rest of the
// grammar. It cannot retroactively tag the already-delivered success; a
// grammar that needs commitment over the repetition as a whole uses
// [Many] under [Suspend] instead.
//
// The sequence and the remainder share one cursor and are not safe for
// concurrent use; the sequence is single-pass.
func ManyStream[T, A any](p Plain[T, A]) Plain[T, iter.Seq2[A, error]] {
	return func(in Input[T], st Unit) Result[Unit, T, iter.Seq2[A, error]] {
		c := &streamCursor[T, A]{cur: in, p: p}
		seq := func(yield func(A, error) bool) {
			for {
				v, err, ok := c.next()
				if !ok {
					return
				}
				if !yield(v, err) || err != nil {
					return
				}
			}
		}
		rest := &deferredInput[T]{f: c.finish}
		return Success[Unit, T, iter.Seq2[A, error]]{Rest: rest, State: st, Value: seq}
	}
}

// streamCursor is the shared position of a [ManyStream] repetition.
// Elements parsed while resolving the remainder are buffered so the
// sequence still delivers them in order.
type streamCursor[T, A any] struct {
	p    Plain[T, A]
	cur  Input[T]
	buf  []A
	err  error
	done bool
}

// step parses one more element into the buffer, reporting whether the
// repetition can continue. A committed element failure is recorded in err
// and closes the cursor.
func (c *streamCursor[T, A]) step() bool {
	if c.done {
		return false
	}
	node, com := settle[Unit, T, A](c.p(c.cur, Unit{}))
	switch n := node.(type) {
	case Success[Unit, T, A]:
		if n.Rest == c.cur {
			// Zero tokens consumed: stop rather than loop forever.
			c.done = true
			return false
		}
		c.buf = append(c.buf, n.Value)
		c.cur = n.Rest
		return true
	case Failure[Unit, T, A]:
		c.done = true
		if com {
			c.err = n.Err
			c.cur = n.Rest
		}
		return false
	}
	c.done = true
	return false
}

// next delivers the next element to the sequence: buffered first, then
// freshly parsed. A recorded committed failure is delivered exactly once,
// after the elements that preceded it.
func (c *streamCursor[T, A]) next() (A, error, bool) {
	var zero A
	if len(c.buf) == 0 && !c.done {
		c.step()
	}
	if len(c.buf) > 0 {
		v := c.buf[0]
		c.buf = c.buf[1:]
		return v, nil, true
	}
	if c.err != nil {
		err := c.err
		c.err = nil
		return zero, err, true
	}
	return zero, nil, false
}

// finish drains the repetition and returns the remainder after it.
func (c *streamCursor[T, A]) finish() Input[T] {
	for c.step() {
	}
	return c.cur
}
