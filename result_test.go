// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/komb"
)

func TestReduceSuccess(t *testing.T) {
	rest := komb.Runes("xy")
	r := komb.Result[komb.Unit, rune, int](komb.Success[komb.Unit, rune, int]{Rest: rest, Value: 7})
	v, _, left, err := komb.Reduce[komb.Unit, rune, int](r)
	require.NoError(t, err)
	require.Equal(t, 7, v)
	require.Same(t, rest, left)
}

func TestReduceFailure(t *testing.T) {
	rest := komb.Runes("xy")
	r := komb.Result[komb.Unit, rune, int](komb.Failure[komb.Unit, rune, int]{Rest: rest, Err: errors.New("bad")})
	_, _, left, err := komb.Reduce[komb.Unit, rune, int](r)
	require.EqualError(t, err, "bad")
	require.Same(t, rest, left)
}

func TestReduceStripsCommitment(t *testing.T) {
	// The committed/plain distinction never leaks past the boundary.
	rest := komb.Runes("")
	r := komb.Result[komb.Unit, rune, int](komb.Committed[komb.Unit, rune, int]{
		Result: komb.Success[komb.Unit, rune, int]{Rest: rest, Value: 1},
	})
	v, _, _, err := komb.Reduce[komb.Unit, rune, int](r)
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestReduceForcesPendingWork(t *testing.T) {
	p := komb.Suspend(komb.Suspend(digit()))
	v, _, _, err := komb.Reduce[komb.Unit, rune, rune](p(komb.Runes("3"), komb.Unit{}))
	require.NoError(t, err)
	require.Equal(t, '3', v)
}

func TestCommitNeverChangesOutcomeKind(t *testing.T) {
	// Commitment is a backtracking signal only: it neither turns success
	// into failure nor failure into success.
	for _, in := range []string{"1", "x", ""} {
		want, _, werr := komb.Run(digit(), komb.Runes(in))
		got, _, gerr := komb.Run(komb.Commit(digit()), komb.Runes(in))
		require.Equal(t, werr == nil, gerr == nil, "input %q", in)
		require.Equal(t, want, got, "input %q", in)
	}
}
