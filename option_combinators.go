// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stx

// Free combinators over [Option].
//
// Go methods cannot introduce type parameters, so every operation whose
// output payload type differs from the input's is a package-level generic
// function. Consuming combinators take the option by pointer and leave it
// None, matching the method discipline.

// MapOption consumes o, applying f to the value if present.
// MapOption(Some(v), f) == Some(f(v)); MapOption(None, f) == None.
func MapOption[T, U any](o *Option[T], f func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(f(o.takeValue()))
}

// MapOptionOr consumes o, returning f applied to the value, or alt if None.
//
// alt is eagerly evaluated; prefer [MapOptionOrElse] for the lazy form.
func MapOptionOr[T, U any](o *Option[T], f func(T) U, alt U) U {
	if !o.some {
		return alt
	}
	return f(o.takeValue())
}

// MapOptionOrElse consumes o, returning f applied to the value, or alt() if None.
func MapOptionOrElse[T, U any](o *Option[T], f func(T) U, alt func() U) U {
	if !o.some {
		return alt()
	}
	return f(o.takeValue())
}

// AndThenOption consumes o, chaining f over the value if present and
// flattening the result. This is the monadic bind over the Some channel.
func AndThenOption[T, U any](o *Option[T], f func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return f(o.takeValue())
}

// AndOption consumes o, returning other if o is Some, otherwise None.
// The value held by o, if any, is dropped.
func AndOption[T, U any](o *Option[T], other Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	o.reset()
	return other
}

// MatchOption consumes o, dispatching to exactly one of the two branches.
func MatchOption[T, R any](o *Option[T], some func(T) R, none func() R) R {
	if !o.some {
		return none()
	}
	return some(o.takeValue())
}

// OkOr consumes o, converting Some(v) to Ok(v) and None to Err(err).
//
// err is eagerly evaluated; prefer [OkOrElse] for the lazy form.
func OkOr[T, E any](o *Option[T], err E) Result[T, E] {
	if !o.some {
		return Err[T](err)
	}
	return Ok[T, E](o.takeValue())
}

// OkOrElse consumes o, converting Some(v) to Ok(v) and None to Err(fn()).
func OkOrElse[T, E any](o *Option[T], fn func() E) Result[T, E] {
	if !o.some {
		return Err[T](fn())
	}
	return Ok[T, E](o.takeValue())
}

// EqualOption reports whether a and b hold the same state.
// The tags are compared first; payloads are only compared when both are Some.
// A Some never equals a None, regardless of payload.
func EqualOption[T comparable](a, b Option[T]) bool {
	if a.some != b.some {
		return false
	}
	return !a.some || a.value == b.value
}

// ContainsOption reports whether o holds a value equal to v.
func ContainsOption[T comparable](o Option[T], v T) bool {
	return o.some && o.value == v
}

// DerefOption projects an option over a pointer-like payload to an option
// over the plain pointee reference, without consuming o. The original
// option keeps ownership of the pointer.
func DerefOption[P ~*T, T any](o *Option[P]) Option[*T] {
	if !o.some {
		return None[*T]()
	}
	return Some((*T)(o.value))
}
