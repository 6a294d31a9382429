// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stx

// Free combinators over [Result]. The same conventions as the [Option]
// combinators apply: operations introducing a type parameter are free
// functions, consuming combinators take the result by pointer and leave
// it in the zero state.

// MapResult consumes r, applying f to the success value and propagating
// the error channel untouched.
func MapResult[T, E, U any](r *Result[T, E], f func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U](r.takeErr())
	}
	return Ok[U, E](f(r.takeValue()))
}

// MapResultOr consumes r, returning f applied to the success value, or alt
// if the result is an Err. The error, if any, is dropped.
//
// alt is eagerly evaluated; prefer [MapResultOrElse] for the lazy form.
func MapResultOr[T, E, U any](r *Result[T, E], f func(T) U, alt U) U {
	if !r.ok {
		r.reset()
		return alt
	}
	return f(r.takeValue())
}

// MapResultOrElse consumes r, returning f applied to the success value, or
// alt applied to the error.
func MapResultOrElse[T, E, U any](r *Result[T, E], f func(T) U, alt func(E) U) U {
	if !r.ok {
		return alt(r.takeErr())
	}
	return f(r.takeValue())
}

// MapErrResult consumes r, applying f to the error value and propagating
// the success channel untouched.
func MapErrResult[T, E, F any](r *Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.takeValue())
	}
	return Err[T](f(r.takeErr()))
}

// AndThenResult consumes r, chaining f over the success value and
// flattening the result. This is the monadic bind over the Ok channel.
func AndThenResult[T, E, U any](r *Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U](r.takeErr())
	}
	return f(r.takeValue())
}

// OrElseResult consumes r, chaining f over the error value and flattening
// the result. This is the monadic bind over the Err channel.
func OrElseResult[T, E, F any](r *Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.takeValue())
	}
	return f(r.takeErr())
}

// AndResult consumes r, returning other if r is Ok, otherwise propagating
// r's error. The success value held by r, if any, is dropped.
func AndResult[T, E, U any](r *Result[T, E], other Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U](r.takeErr())
	}
	r.reset()
	return other
}

// OrResult consumes r, returning it if Ok, otherwise alt. The error held
// by r, if any, is dropped.
func OrResult[T, E, F any](r *Result[T, E], alt Result[T, F]) Result[T, F] {
	if !r.ok {
		r.reset()
		return alt
	}
	return Ok[T, F](r.takeValue())
}

// MatchResult consumes r, dispatching to exactly one of the two branches.
func MatchResult[T, E, R any](r *Result[T, E], ok func(T) R, errFn func(E) R) R {
	if !r.ok {
		return errFn(r.takeErr())
	}
	return ok(r.takeValue())
}

// EqualResult reports whether a and b hold the same state.
// The tags are compared first; only the live channels are compared.
// An Ok never equals an Err, regardless of the held values.
func EqualResult[T, E comparable](a, b Result[T, E]) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return a.value == b.value
	}
	return a.err == b.err
}

// ContainsResult reports whether r holds a success value equal to v.
func ContainsResult[T comparable, E any](r Result[T, E], v T) bool {
	return r.ok && r.value == v
}

// ContainsErrResult reports whether r holds an error value equal to e.
func ContainsErrResult[T any, E comparable](r Result[T, E], e E) bool {
	return !r.ok && r.err == e
}

// DerefResult projects a result over a pointer-like success payload to a
// result over the plain pointee reference, without consuming r. The
// original result keeps ownership of the pointer; the error channel is
// projected by reference.
func DerefResult[P ~*T, T, E any](r *Result[P, E]) Result[*T, *E] {
	if !r.ok {
		return Err[*T](&r.err)
	}
	return Ok[*T, *E]((*T)(r.value))
}

// DerefErrResult projects a result over a pointer-like error payload to a
// result over the plain pointee reference, without consuming r. The
// success channel is projected by reference.
func DerefErrResult[P ~*E, E, T any](r *Result[T, P]) Result[*T, *E] {
	if r.ok {
		return Ok[*T, *E](&r.value)
	}
	return Err[*T]((*E)(r.err))
}
