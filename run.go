// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

// Run applies a stateless parser to an input and reduces the outcome to
// the produced value, the leftover remainder, and the error if the parse
// failed. On failure the leftover is the remainder at the failure point.
//
// The committed/plain distinction never reaches this boundary: a committed
// failure and a plain failure both come back as the error.
func Run[T, A any](p Plain[T, A], in Input[T]) (A, Input[T], error) {
	a, _, rest, err := Reduce[Unit, T, A](p(in, Unit{}))
	return a, rest, err
}
