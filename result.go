// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stx

import "fmt"

// Result represents either success with a value of type T or failure with
// an error of type E. Exactly one channel is meaningful at any time; the
// vacated channel always holds its zero value.
//
// Construct with [Ok] or [Err]. The zero value of Result is Err of E's
// zero value; it is not part of the supported construction surface.
//
// E is unconstrained: it does not have to implement error. Bridging to
// Go's (T, error) convention is provided by [ResultFromTuple] and
// [ResultToTuple].
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok returns a Result holding the success value.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err returns a Result holding the error value.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// IsOk reports whether the result holds a success value.
func (r Result[T, E]) IsOk() bool { return r.ok }

// IsErr reports whether the result holds an error value.
func (r Result[T, E]) IsErr() bool { return !r.ok }

// Exists reports whether the result holds a success value satisfying pred.
func (r Result[T, E]) Exists(pred func(T) bool) bool {
	return r.ok && pred(r.value)
}

// ErrExists reports whether the result holds an error value satisfying pred.
func (r Result[T, E]) ErrExists(pred func(E) bool) bool {
	return !r.ok && pred(r.err)
}

// Value returns a pointer to the success value.
// Panics if the result is an Err, printing the held error.
func (r *Result[T, E]) Value() *T {
	if !r.ok {
		panicErr("Result.Value()", r.String())
	}
	return &r.value
}

// ErrValue returns a pointer to the error value.
// Panics if the result is an Ok, printing the held value.
func (r *Result[T, E]) ErrValue() *E {
	if r.ok {
		panicOk("Result.ErrValue()", r.String())
	}
	return &r.err
}

// Unwrap moves the success value out, leaving the zero state behind.
// Panics if the result is an Err, printing the held error.
func (r *Result[T, E]) Unwrap() T {
	if !r.ok {
		panicErr("Result.Unwrap()", r.String())
	}
	return r.takeValue()
}

// Expect moves the success value out, leaving the zero state behind.
// Panics with msg if the result is an Err, printing the held error.
func (r *Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panicWith(msg, r.String())
	}
	return r.takeValue()
}

// UnwrapErr moves the error value out, leaving the zero state behind.
// Panics if the result is an Ok, printing the held value.
func (r *Result[T, E]) UnwrapErr() E {
	if r.ok {
		panicOk("Result.UnwrapErr()", r.String())
	}
	return r.takeErr()
}

// ExpectErr moves the error value out, leaving the zero state behind.
// Panics with msg if the result is an Ok, printing the held value.
func (r *Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panicWith(msg, r.String())
	}
	return r.takeErr()
}

// UnwrapOr moves the success value out, or returns alt if the result is an
// Err. The error, if any, is dropped.
//
// alt is eagerly evaluated; prefer [Result.UnwrapOrElse] for the lazy form.
func (r *Result[T, E]) UnwrapOr(alt T) T {
	if !r.ok {
		r.reset()
		return alt
	}
	return r.takeValue()
}

// UnwrapOrElse moves the success value out, or returns fn applied to the
// error if the result is an Err.
func (r *Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if !r.ok {
		return fn(r.takeErr())
	}
	return r.takeValue()
}

// UnwrapOrDefault moves the success value out, or returns the zero value
// of T if the result is an Err. The error, if any, is dropped.
func (r *Result[T, E]) UnwrapOrDefault() T {
	if !r.ok {
		r.reset()
		var zero T
		return zero
	}
	return r.takeValue()
}

// Ok consumes the result, projecting the success channel to an [Option]
// and discarding the error, if any.
func (r *Result[T, E]) Ok() Option[T] {
	if !r.ok {
		r.reset()
		return None[T]()
	}
	return Some(r.takeValue())
}

// Err consumes the result, projecting the error channel to an [Option]
// and discarding the success value, if any.
func (r *Result[T, E]) Err() Option[E] {
	if r.ok {
		r.reset()
		return None[E]()
	}
	return Some(r.takeErr())
}

// MoveFrom moves rhs's state into r, leaving rhs in the zero state. The
// previous contents of r are dropped. All four tag combinations are
// handled explicitly; the vacated slots are zeroed before the call returns.
func (r *Result[T, E]) MoveFrom(rhs *Result[T, E]) {
	if r == rhs {
		return
	}
	switch {
	case r.ok && rhs.ok:
		r.value = rhs.takeValue()
	case r.ok && !rhs.ok:
		r.err = rhs.takeErr()
		r.ok = false
		var zero T
		r.value = zero
	case !r.ok && rhs.ok:
		r.value = rhs.takeValue()
		r.ok = true
		var zero E
		r.err = zero
	default:
		r.err = rhs.takeErr()
	}
}

// Swap exchanges the states of r and rhs. Within the same variant class
// the payloads swap in place; across classes both values move and the
// tags flip.
func (r *Result[T, E]) Swap(rhs *Result[T, E]) {
	if r == rhs {
		return
	}
	switch {
	case r.ok && rhs.ok:
		r.value, rhs.value = rhs.value, r.value
	case !r.ok && !rhs.ok:
		r.err, rhs.err = rhs.err, r.err
	case r.ok && !rhs.ok:
		rhs.value = r.takeValue()
		rhs.ok = true
		r.err = rhs.err
		var zero E
		rhs.err = zero
	default:
		rhs.Swap(r)
	}
}

// AsRef returns a result wrapping a pointer to whichever channel is live,
// without consuming r. The projection is invalidated by any subsequent
// consuming operation on r.
func (r *Result[T, E]) AsRef() Result[*T, *E] {
	if !r.ok {
		return Err[*T](&r.err)
	}
	return Ok[*T, *E](&r.value)
}

// Clone duplicates the result without consuming it. The live channel is
// duplicated with the matching function; duplication is never implicit.
func (r *Result[T, E]) Clone(cloneValue func(T) T, cloneErr func(E) E) Result[T, E] {
	if !r.ok {
		return Err[T](cloneErr(r.err))
	}
	return Ok[T, E](cloneValue(r.value))
}

// String implements [fmt.Stringer]: "Ok(v)" or "Err(e)".
func (r Result[T, E]) String() string {
	if !r.ok {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// takeValue moves the success value out and leaves the zero state.
// Callers check the tag.
func (r *Result[T, E]) takeValue() T {
	value := r.value
	r.reset()
	return value
}

// takeErr moves the error value out and leaves the zero state.
// Callers check the tag.
func (r *Result[T, E]) takeErr() E {
	err := r.err
	r.reset()
	return err
}

// reset drops the current state: both slots zeroed, tag Err.
func (r *Result[T, E]) reset() {
	var zeroT T
	var zeroE E
	r.value = zeroT
	r.err = zeroE
	r.ok = false
}
