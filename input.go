// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

import (
	"iter"
	"sync"
)

// Input is a persistent token remainder: the suffix of the input stream not
// yet consumed at a given point.
//
// Implementations must be immutable and structurally shared — Next never
// mutates the receiver, it returns the remainder after the first token.
// This lets choice points hand the same remainder to several alternatives
// with no interference.
//
// All implementations in this package are pointer-shaped, so two Input
// values are identical (==) exactly when they denote the same position.
// The repetition combinators rely on this to detect zero-consumption loops.
type Input[T any] interface {
	// Next returns the first remaining token and the remainder after it.
	// ok is false at end of input.
	Next() (tok T, rest Input[T], ok bool)
}

// sliceInput is the eager remainder: a materialized token slice and a cursor.
// Suffixes share the backing array.
type sliceInput[T any] struct {
	toks []T
	pos  int
}

func (in *sliceInput[T]) Next() (T, Input[T], bool) {
	if in.pos >= len(in.toks) {
		var zero T
		return zero, in, false
	}
	return in.toks[in.pos], &sliceInput[T]{toks: in.toks, pos: in.pos + 1}, true
}

// Tokens builds an eager remainder over a materialized token sequence.
func Tokens[T any](toks ...T) Input[T] {
	return &sliceInput[T]{toks: toks}
}

// Runes builds an eager remainder over the runes of s.
func Runes(s string) Input[rune] {
	return Tokens([]rune(s)...)
}

// consInput prepends pushed-back tokens onto another remainder.
// Created only by Reparse; head is never empty.
type consInput[T any] struct {
	head []T
	tail Input[T]
}

func (in *consInput[T]) Next() (T, Input[T], bool) {
	if len(in.head) == 1 {
		return in.head[0], in.tail, true
	}
	return in.head[0], &consInput[T]{head: in.head[1:], tail: in.tail}, true
}

// prepend pushes toks onto the front of in.
func prepend[T any](toks []T, in Input[T]) Input[T] {
	if len(toks) == 0 {
		return in
	}
	return &consInput[T]{head: toks, tail: in}
}

// cell is a demand-driven remainder: a memoized cons cell over a pull
// source. The source is consulted at most once per position, so alternatives
// backtracking over the same prefix re-read the memo, never the source.
type cell[T any] struct {
	once sync.Once
	pull func() (T, bool)
	tok  T
	ok   bool
	rest *cell[T]
}

func (c *cell[T]) Next() (T, Input[T], bool) {
	c.once.Do(c.fill)
	return c.tok, c.rest, c.ok
}

func (c *cell[T]) fill() {
	c.tok, c.ok = c.pull()
	if c.ok {
		c.rest = &cell[T]{pull: c.pull}
	} else {
		// Exhausted: the remainder after end of input is the end itself.
		c.rest = c
	}
	c.pull = nil
}

// FromNext builds a demand-driven remainder over a pull source. next is
// called only when parsing demands a token past what has been read so far;
// it must return ok=false at end of input and keep doing so afterwards.
//
// The source may be unbounded: only the prefix the parser actually consumes
// is ever pulled, and a consumer that stops pulling leaves the rest of the
// source untouched.
func FromNext[T any](next func() (T, bool)) Input[T] {
	return &cell[T]{pull: next}
}

// FromSeq builds a demand-driven remainder over an iterator sequence.
// The sequence's stop function is invoked once the sequence is exhausted;
// an abandoned remainder holds it for the lifetime of the unread cells.
func FromSeq[T any](seq iter.Seq[T]) Input[T] {
	next, stop := iter.Pull(seq)
	return FromNext(func() (T, bool) {
		tok, ok := next()
		if !ok {
			stop()
		}
		return tok, ok
	})
}

// deferredInput is a remainder that is not known until some pending
// production has run — the leftover of a streamed repetition. Forcing is
// memoized.
type deferredInput[T any] struct {
	once sync.Once
	f    func() Input[T]
	in   Input[T]
}

func (d *deferredInput[T]) Next() (T, Input[T], bool) {
	d.once.Do(func() {
		d.in = d.f()
		d.f = nil
	})
	return d.in.Next()
}

// Collect drains a remainder into a slice. It forces demand-driven inputs
// to exhaustion, so it must not be applied to unbounded sources.
func Collect[T any](in Input[T]) []T {
	var toks []T
	for {
		tok, rest, ok := in.Next()
		if !ok {
			return toks
		}
		toks = append(toks, tok)
		in = rest
	}
}
