// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package stx provides explicit-failure sum types for Go: [Option] for
// values that may be absent and [Result] for operations that may fail,
// together with a cooperative panic subsystem for reporting misuse.
//
// # Design Philosophy
//
// stx provides:
//   - Tagged value containers with exactly one live channel at all times
//   - Consuming operations that move payloads out and zero the vacated slot
//   - A structural failure channel (None/Err) for expected absence and a
//     fatal panic channel for programmer error, never exceptions for
//     control flow
//
// The containers are plain value structs. They add a boolean tag to the
// payload storage and introduce no heap allocation of their own.
//
// # Ownership Discipline
//
// Operations that consume a container take a pointer receiver (or a pointer
// argument, for the free combinators) and leave the source empty: [Option]
// becomes None, [Result] reverts to its zero state, and the vacated slot is
// zeroed in the same call so no stale reference survives the move. A
// moved-from container is valid and observable, it simply holds nothing.
// Duplication is never implicit: [Option.Clone] and [Result.Clone] require
// an explicit duplication function for the payload.
//
// # Core Operations
//
// Construction:
//
//   - [Some], [None]: build an [Option]
//   - [Ok], [Err]: build a [Result]
//
// Methods cover the operations that preserve the payload type (Unwrap,
// Expect, Take, Replace, Filter, Or, Xor, ...). Operations that introduce a
// new type parameter are free functions, verb first:
//
//   - [MapOption], [MapResult], [MapErrResult]: transform one channel
//   - [AndThenOption], [AndThenResult]: monadic chaining
//   - [MatchOption], [MatchResult]: consume by dispatching to exactly one branch
//   - [OkOr], [Result.Ok], [Result.Err]: convert between the two containers
//
// [ResultFromTuple] and [ResultToTuple] bridge to Go's native (T, error)
// convention, which also serves as the early-return idiom: convert to a
// tuple and return on a non-nil error. Error channel types must match
// exactly; converting between channels requires an explicit [MapErrResult].
//
// # Panic Subsystem
//
// Misusing a container — unwrapping the wrong variant — is a programmer
// error, not a recoverable condition. It invokes the process-wide panic
// handler (see [SetPanicHandler]); the default handler, [Abort], prints a
// diagnostic with a backtrace and terminates the process. [Rethrow] is an
// alternative handler that raises a Go panic carrying [Panicked], which
// embedders and tests can recover.
//
// [Trace] walks the calling goroutine's stack and hands each [Frame] to a
// callback; frame fields are wrapped in [Option] since symbolication may
// fail per frame.
//
// # Concurrency
//
// Containers are single-threaded value objects with no internal
// synchronization. Transfer ownership between goroutines by moving;
// concurrent mutation of one instance is undefined behavior.
package stx
