// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/komb"
)

// spyParser counts applications of the wrapped parser.
func spyParser[A any](calls *int, p komb.Plain[rune, A]) komb.Plain[rune, A] {
	return komb.Defer(func() komb.Plain[rune, A] {
		*calls++
		return p
	})
}

func TestSuspendDefersWork(t *testing.T) {
	calls := 0
	p := komb.Suspend(spyParser(&calls, digit()))

	r := p(komb.Runes("1a"), komb.Unit{})
	require.Zero(t, calls, "suspended parser ran before the tag was demanded")

	_, ok := r.(*komb.Deferred[komb.Unit, rune, rune])
	require.True(t, ok, "Suspend produced a determined result")

	forced := komb.Force[komb.Unit, rune, rune](r)
	require.Equal(t, 1, calls)
	_, ok = forced.(komb.Success[komb.Unit, rune, rune])
	require.True(t, ok)
}

func TestForceMemoizes(t *testing.T) {
	calls := 0
	p := komb.Suspend(spyParser(&calls, digit()))
	r := p(komb.Runes("1"), komb.Unit{})

	first := komb.Force[komb.Unit, rune, rune](r)
	second := komb.Force[komb.Unit, rune, rune](r)
	require.Equal(t, 1, calls, "forcing twice repeated the work")
	require.Equal(t, first, second)
}

func TestForceOnDeterminedResult(t *testing.T) {
	r := digit()(komb.Runes("1"), komb.Unit{})
	require.Equal(t, r, komb.Force[komb.Unit, rune, rune](r))
}

func TestBindKeepsSuspension(t *testing.T) {
	// Work scheduled after a suspended step is itself suspended.
	calls := 0
	p := komb.Bind(
		komb.Suspend(spyParser(&calls, digit())),
		func(d rune) komb.Plain[rune, rune] {
			return komb.Pure[rune](d)
		},
	)
	r := p(komb.Runes("1"), komb.Unit{})
	require.Zero(t, calls, "Bind forced the suspended step")

	got, _, err := komb.Run(komb.Plain[rune, rune](func(komb.Input[rune], komb.Unit) komb.Result[komb.Unit, rune, rune] {
		return r
	}), komb.Runes(""))
	require.NoError(t, err)
	require.Equal(t, '1', got)
	require.Equal(t, 1, calls)
}

func TestCommitTagObservableBeforeWork(t *testing.T) {
	// The commit tag of a suspended computation is visible without
	// forcing the work underneath.
	calls := 0
	p := komb.Commit(komb.Suspend(spyParser(&calls, digit())))

	r := p(komb.Runes("1"), komb.Unit{})
	c, ok := r.(komb.Committed[komb.Unit, rune, rune])
	require.True(t, ok, "commit tag not observable on suspended result")
	require.Zero(t, calls, "observing the commit tag forced the work")

	_, ok = c.Result.(*komb.Deferred[komb.Unit, rune, rune])
	require.True(t, ok)
}

func TestOnFailForcesOnlyTheChosenBranch(t *testing.T) {
	// A choice point is a demand point: it forces the attempted branch's
	// tag, and the suspended alternative stays suspended until reduced.
	p := komb.OnFail(
		komb.Suspend(digit()),
		komb.Suspend(letter()),
	)
	got, _, err := komb.Run(p, komb.Runes("x"))
	require.NoError(t, err)
	require.Equal(t, 'x', got)
}

func TestSuspendedChainReducesToSameOutcome(t *testing.T) {
	// Laziness changes when work happens, never what result is produced.
	grammar := func(wrap func(komb.Plain[rune, rune]) komb.Plain[rune, rune]) komb.Plain[rune, []rune] {
		return komb.Many(wrap(komb.OneOf(
			komb.Alt("num", digit()),
			komb.Alt("alpha", letter()),
		)))
	}
	eager := grammar(func(p komb.Plain[rune, rune]) komb.Plain[rune, rune] { return p })
	lazy := grammar(komb.Suspend[komb.Unit, rune, rune])

	for _, in := range []string{"", "1a2b!", "abc", "123"} {
		want, wrest, werr := komb.Run(eager, komb.Runes(in))
		got, grest, gerr := komb.Run(lazy, komb.Runes(in))
		require.Equal(t, werr == nil, gerr == nil, "input %q", in)
		require.Equal(t, string(want), string(got), "input %q", in)
		require.Equal(t, komb.Collect(wrest), komb.Collect(grest), "input %q", in)
	}
}
