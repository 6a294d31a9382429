// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stx

// Bridges between the sum types and Go's native conventions: the
// (T, error) tuple and the possibly-nil pointer.
//
// The tuple bridge is also the early-return idiom: convert a Result to a
// tuple and return on a non-nil error. The error channel type must match
// exactly (error); adapting a Result with a different error type requires
// an explicit [MapErrResult] first.

// ResultFromTuple converts a conventional (value, error) pair to a Result.
// A non-nil error wins: the value is discarded and Err(err) is returned.
func ResultFromTuple[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}

// ResultToTuple consumes r, converting it to a conventional (value, error)
// pair. An Err yields the zero value of T alongside the error.
func ResultToTuple[T any](r *Result[T, error]) (T, error) {
	if r.IsErr() {
		var zero T
		return zero, r.takeErr()
	}
	return r.takeValue(), nil
}

// OptionFromPtr converts a possibly-nil pointer to an Option over the
// pointee value. The pointee is copied; a nil pointer yields None.
func OptionFromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// OptionToPtr consumes o, returning a pointer to the moved-out value, or
// nil if None.
func OptionToPtr[T any](o *Option[T]) *T {
	if o.IsNone() {
		return nil
	}
	value := o.takeValue()
	return &value
}
