// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stx

import "runtime"

// Frame describes one call-stack frame. Symbolication can fail per frame,
// so every field is wrapped in [Option].
type Frame struct {
	// Symbol is the fully qualified function name, if known.
	Symbol Option[string]
	// IP is the instruction pointer within the function, if known.
	IP Option[uintptr]
	// File is the source file, if known.
	File Option[string]
	// Line is the source line, if known.
	Line Option[int]
}

// Trace walks the calling goroutine's stack, invoking fn once per frame
// with the frame and its index, outermost call last. Traversal stops when
// fn returns true. skip is the number of frames to omit before the first
// callback; 0 starts at the caller of Trace. Returns the number of frames
// visited.
func Trace(fn func(frame Frame, index int) bool, skip int) int {
	pcs := make([]uintptr, 64)
	for {
		n := runtime.Callers(skip+2, pcs)
		if n < len(pcs) {
			pcs = pcs[:n]
			break
		}
		pcs = make([]uintptr, len(pcs)*2)
	}
	if len(pcs) == 0 {
		return 0
	}

	visited := 0
	frames := runtime.CallersFrames(pcs)
	for {
		fr, more := frames.Next()
		frame := Frame{
			Symbol: None[string](),
			IP:     None[uintptr](),
			File:   None[string](),
			Line:   None[int](),
		}
		if fr.PC != 0 {
			frame.IP = Some(fr.PC)
		}
		if fr.Function != "" {
			frame.Symbol = Some(fr.Function)
		}
		if fr.File != "" {
			frame.File = Some(fr.File)
		}
		if fr.Line != 0 {
			frame.Line = Some(fr.Line)
		}
		stop := fn(frame, visited)
		visited++
		if stop || !more {
			return visited
		}
	}
}
