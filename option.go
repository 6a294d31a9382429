// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stx

import "fmt"

// Option represents an optional value: it is either Some and holds a
// payload of type T, or None and holds nothing.
//
// The zero value of Option is None. Construct with [Some] or [None].
//
// Methods that consume the payload take a pointer receiver and leave the
// container None with a zeroed slot. Tag queries and projections never
// change the tag.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an Option holding value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool { return o.some }

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool { return !o.some }

// Exists reports whether the option holds a value satisfying pred.
func (o Option[T]) Exists(pred func(T) bool) bool {
	return o.some && pred(o.value)
}

// Value returns a pointer to the contained value.
// Panics if the option is None.
func (o *Option[T]) Value() *T {
	if !o.some {
		panicNone("Option.Value()")
	}
	return &o.value
}

// Unwrap moves the contained value out, leaving None behind.
// Panics if the option is None.
func (o *Option[T]) Unwrap() T {
	if !o.some {
		panicNone("Option.Unwrap()")
	}
	return o.takeValue()
}

// Expect moves the contained value out, leaving None behind.
// Panics with msg if the option is None.
func (o *Option[T]) Expect(msg string) T {
	if !o.some {
		panicMsg(msg)
	}
	return o.takeValue()
}

// UnwrapOr moves the contained value out, or returns alt if None.
//
// alt is eagerly evaluated; if it is the result of a function call, prefer
// [Option.UnwrapOrElse], which is lazily evaluated.
func (o *Option[T]) UnwrapOr(alt T) T {
	if !o.some {
		return alt
	}
	return o.takeValue()
}

// UnwrapOrElse moves the contained value out, or returns fn() if None.
func (o *Option[T]) UnwrapOrElse(fn func() T) T {
	if !o.some {
		return fn()
	}
	return o.takeValue()
}

// UnwrapOrDefault moves the contained value out, or returns the zero value
// of T if None.
func (o *Option[T]) UnwrapOrDefault() T {
	return o.takeValue()
}

// UnwrapNone consumes the option, expecting it to be None.
// Panics if the option holds a value, printing the held value.
func (o *Option[T]) UnwrapNone() {
	if o.some {
		panicSome("Option.UnwrapNone()", o.String())
	}
}

// ExpectNone consumes the option, expecting it to be None.
// Panics with msg if the option holds a value, printing the held value.
func (o *Option[T]) ExpectNone(msg string) {
	if o.some {
		panicWith(msg, o.String())
	}
}

// Filter consumes the option, keeping the value only if pred returns true.
func (o *Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return Some(o.takeValue())
	}
	o.reset()
	return None[T]()
}

// FilterNot consumes the option, keeping the value only if pred returns false.
func (o *Option[T]) FilterNot(pred func(T) bool) Option[T] {
	if o.some && !pred(o.value) {
		return Some(o.takeValue())
	}
	o.reset()
	return None[T]()
}

// Or consumes the option, returning it if Some, otherwise alt.
//
// alt is eagerly evaluated; prefer [Option.OrElse] for the lazy form.
func (o *Option[T]) Or(alt Option[T]) Option[T] {
	if o.some {
		return Some(o.takeValue())
	}
	return alt
}

// OrElse consumes the option, returning it if Some, otherwise fn().
func (o *Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.some {
		return Some(o.takeValue())
	}
	return fn()
}

// Xor consumes the option and alt, returning whichever of the two is Some.
// Returns None if both or neither hold a value.
func (o *Option[T]) Xor(alt Option[T]) Option[T] {
	switch {
	case o.some && !alt.some:
		return Some(o.takeValue())
	case !o.some && alt.some:
		return alt
	default:
		o.reset()
		return None[T]()
	}
}

// Take moves the current state out, leaving None behind.
func (o *Option[T]) Take() Option[T] {
	if !o.some {
		return None[T]()
	}
	return Some(o.takeValue())
}

// Replace swaps value in and returns the previous state.
func (o *Option[T]) Replace(value T) Option[T] {
	prev := o.Take()
	o.value = value
	o.some = true
	return prev
}

// MoveFrom moves rhs's state into o, leaving rhs None. The previous
// contents of o are dropped. All four tag combinations are handled
// explicitly; the vacated slots are zeroed before the call returns.
func (o *Option[T]) MoveFrom(rhs *Option[T]) {
	if o == rhs {
		return
	}
	switch {
	case o.some && rhs.some:
		o.value = rhs.takeValue()
	case o.some && !rhs.some:
		o.reset()
	case !o.some && rhs.some:
		o.value = rhs.takeValue()
		o.some = true
	default:
		// both None
	}
}

// Swap exchanges the states of o and rhs. Within the same tag the payloads
// swap in place; across tags the value moves and both tags flip.
func (o *Option[T]) Swap(rhs *Option[T]) {
	if o == rhs {
		return
	}
	switch {
	case o.some && rhs.some:
		o.value, rhs.value = rhs.value, o.value
	case o.some && !rhs.some:
		rhs.value = o.takeValue()
		rhs.some = true
	case !o.some && rhs.some:
		o.value = rhs.takeValue()
		o.some = true
	default:
		// both None
	}
}

// AsRef returns an option wrapping a pointer to the payload without
// consuming it. The projection is invalidated by any subsequent consuming
// operation on o.
func (o *Option[T]) AsRef() Option[*T] {
	if !o.some {
		return None[*T]()
	}
	return Some(&o.value)
}

// Clone duplicates the option without consuming it. The payload is
// duplicated with clone; duplication is never implicit.
func (o *Option[T]) Clone(clone func(T) T) Option[T] {
	if !o.some {
		return None[T]()
	}
	return Some(clone(o.value))
}

// String implements [fmt.Stringer]: "Some(v)" or "None".
func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// takeValue moves the payload out and leaves the container None.
// The vacated slot is zeroed in the same call so that no stale
// reference survives the move. Callers check the tag.
func (o *Option[T]) takeValue() T {
	value := o.value
	o.reset()
	return value
}

// reset drops the current state: tag None, slot zeroed.
func (o *Option[T]) reset() {
	var zero T
	o.value = zero
	o.some = false
}
