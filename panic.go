// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stx

import (
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
)

// Cooperative panic subsystem. Misusing a container (unwrapping the wrong
// variant) is a programmer error: it is reported through a process-wide
// handler and is not recoverable through the structural None/Err channel.

// Location identifies a source position captured at a panic site.
type Location struct {
	Function string
	File     string
	Line     int
}

// String formats the location as "file:line".
func (l Location) String() string {
	if l.File == "" {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Caller returns the location of a call site on the current stack.
// skip 0 identifies the caller of Caller, 1 its caller, and so on.
func Caller(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	loc := Location{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.Function = fn.Name()
	}
	return loc
}

// PanicHandler receives a diagnostic message and the panicking call site.
// A handler must not return; if it does, the subsystem aborts the process.
type PanicHandler func(msg string, loc Location)

// panicHook is the process-wide handler slot. nil means [Abort].
// The slot is a single atomic word, so swapping is safe, but installing a
// handler concurrently with a panic in flight is unsupported; install at
// startup.
var panicHook atomic.Pointer[PanicHandler]

// SetPanicHandler installs h as the process-wide panic handler and returns
// the previously installed one.
func SetPanicHandler(h PanicHandler) PanicHandler {
	if h == nil {
		panic("stx: nil panic handler")
	}
	prev := panicHook.Swap(&h)
	if prev == nil {
		return Abort
	}
	return *prev
}

// CurrentPanicHandler returns the currently installed panic handler.
func CurrentPanicHandler() PanicHandler {
	if p := panicHook.Load(); p != nil {
		return *p
	}
	return Abort
}

// Panic reports a fatal error at the caller's location through the
// installed handler. It never returns.
func Panic(msg string) {
	PanicAt(msg, Caller(1))
}

// PanicAt reports a fatal error at an explicit location through the
// installed handler. It never returns: if the handler does, the process
// aborts.
func PanicAt(msg string, loc Location) {
	CurrentPanicHandler()(msg, loc)
	abort(msg, loc)
}

// Abort is the default panic handler: it writes the diagnostic and a
// backtrace to stderr and terminates the process.
func Abort(msg string, loc Location) {
	abort(msg, loc)
}

// Panicked is the value carried by the Go panic that [Rethrow] raises.
type Panicked struct {
	Msg string
	Loc Location
}

// Error implements the error interface.
func (p *Panicked) Error() string {
	return fmt.Sprintf("panicked at '%s', %s", p.Msg, p.Loc)
}

// Rethrow is a panic handler that raises a Go runtime panic carrying
// [*Panicked]. Install it when the embedder (or a test) needs to recover
// from container misuse instead of terminating the process.
func Rethrow(msg string, loc Location) {
	panic(&Panicked{Msg: msg, Loc: loc})
}

func abort(msg string, loc Location) {
	fmt.Fprintf(os.Stderr, "panicked at '%s', %s\n", msg, loc)
	fmt.Fprintln(os.Stderr, "stack backtrace:")
	Trace(func(f Frame, i int) bool {
		sym := "<unknown>"
		if s := f.Symbol; s.IsSome() {
			sym = s.Unwrap()
		}
		if ip := f.IP; ip.IsSome() {
			fmt.Fprintf(os.Stderr, "%4d: %#x - %s\n", i, ip.Unwrap(), sym)
		} else {
			fmt.Fprintf(os.Stderr, "%4d: %s\n", i, sym)
		}
		return false
	}, 1)
	os.Exit(1)
}

// Misuse report helpers. The reported location is the public API call
// site, two frames above the helper.

func panicNone(op string) {
	PanicAt("called `"+op+"` on a `None` value", Caller(2))
}

func panicSome(op, repr string) {
	PanicAt("called `"+op+"` on a `Some` value: "+repr, Caller(2))
}

func panicMsg(msg string) {
	PanicAt(msg, Caller(2))
}

func panicErr(op, repr string) {
	PanicAt("called `"+op+"` on an `Err` value: "+repr, Caller(2))
}

func panicOk(op, repr string) {
	PanicAt("called `"+op+"` on an `Ok` value: "+repr, Caller(2))
}

func panicWith(msg, repr string) {
	PanicAt(msg+": "+repr, Caller(2))
}
