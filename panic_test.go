// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stx_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/stx"
)

// capturePanic runs f with the [stx.Rethrow] handler installed and returns
// the captured diagnostic. Fails the test if f does not panic.
func capturePanic(t *testing.T, f func()) (p *stx.Panicked) {
	t.Helper()
	prev := stx.SetPanicHandler(stx.Rethrow)
	defer stx.SetPanicHandler(prev)
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("expected a panic, got none")
		}
		pp, ok := r.(*stx.Panicked)
		if !ok {
			t.Fatalf("unexpected panic value: %v", r)
		}
		p = pp
	}()
	f()
	return nil
}

func TestSetPanicHandlerReturnsPrevious(t *testing.T) {
	prev := stx.SetPanicHandler(stx.Rethrow)
	defer stx.SetPanicHandler(prev)

	got := stx.SetPanicHandler(stx.Rethrow)
	if got == nil {
		t.Fatal("previous handler is nil")
	}
}

func TestCurrentPanicHandlerDefault(t *testing.T) {
	if stx.CurrentPanicHandler() == nil {
		t.Fatal("default handler is nil")
	}
}

func TestPanicInvokesHandler(t *testing.T) {
	p := capturePanic(t, func() {
		stx.Panic("the world is ending")
	})
	if p.Msg != "the world is ending" {
		t.Fatalf("got message %q, want %q", p.Msg, "the world is ending")
	}
	if !strings.HasSuffix(p.Loc.File, "panic_test.go") {
		t.Fatalf("got location %v, want a panic_test.go line", p.Loc)
	}
	if p.Loc.Line == 0 {
		t.Fatal("location line not captured")
	}
}

func TestPanicAtExplicitLocation(t *testing.T) {
	loc := stx.Location{Function: "f", File: "f.go", Line: 7}
	p := capturePanic(t, func() {
		stx.PanicAt("boom", loc)
	})
	if p.Loc != loc {
		t.Fatalf("got location %+v, want %+v", p.Loc, loc)
	}
}

func TestPanickedError(t *testing.T) {
	p := &stx.Panicked{Msg: "boom", Loc: stx.Location{File: "f.go", Line: 7}}
	got := p.Error()
	want := "panicked at 'boom', f.go:7"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLocationStringUnknown(t *testing.T) {
	var loc stx.Location
	if got := loc.String(); got != "<unknown>" {
		t.Fatalf("got %q, want %q", got, "<unknown>")
	}
}

func TestCallerCapturesThisFile(t *testing.T) {
	loc := stx.Caller(0)
	if !strings.HasSuffix(loc.File, "panic_test.go") {
		t.Fatalf("got file %q, want panic_test.go", loc.File)
	}
	if !strings.Contains(loc.Function, "TestCallerCapturesThisFile") {
		t.Fatalf("got function %q, want the test function", loc.Function)
	}
}

func TestUnwrapPanicLocationIsCallSite(t *testing.T) {
	p := capturePanic(t, func() {
		none := stx.None[int]()
		_ = none.Unwrap()
	})
	if !strings.HasSuffix(p.Loc.File, "panic_test.go") {
		t.Fatalf("got location %v, want the Unwrap call site", p.Loc)
	}
}
