// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stx_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/stx"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randOption returns None with probability ~1/3.
func randOption(rng *rand.Rand) stx.Option[int] {
	if rng.IntN(3) == 0 {
		return stx.None[int]()
	}
	return stx.Some(randInt(rng))
}

// --- Group 1: Option functor/monad laws ---

// TestPropertyMapOptionIdentity: MapOption(o, id) ≡ o
func TestPropertyMapOptionIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		o := randOption(rng)
		snapshot := o
		got := stx.MapOption(&o, func(x int) int { return x })
		if !stx.EqualOption(got, snapshot) {
			t.Fatalf("map identity: %v != %v", got, snapshot)
		}
	}
}

// TestPropertyMapOptionComposition: MapOption(MapOption(o, f), g) ≡ MapOption(o, g∘f)
func TestPropertyMapOptionComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) int { return x + 3 }
	g := func(x int) int { return x * 2 }
	for range propertyN {
		a := randOption(rng)
		o1, o2 := a.Clone(cloneInt), a.Clone(cloneInt)

		fo := stx.MapOption(&o1, f)
		left := stx.MapOption(&fo, g)
		right := stx.MapOption(&o2, func(x int) int { return g(f(x)) })
		if !stx.EqualOption(left, right) {
			t.Fatalf("map composition: %v != %v (input %v)", left, right, a)
		}
	}
}

// TestPropertyAndThenOptionAssociativity:
// AndThen(AndThen(o, f), g) ≡ AndThen(o, func(x) AndThen(f(x), g))
func TestPropertyAndThenOptionAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) stx.Option[int] {
		if x%2 == 0 {
			return stx.Some(x + 1)
		}
		return stx.None[int]()
	}
	g := func(x int) stx.Option[int] {
		if x%3 == 0 {
			return stx.Some(x * 2)
		}
		return stx.None[int]()
	}
	for range propertyN {
		a := randOption(rng)
		o1, o2 := a.Clone(cloneInt), a.Clone(cloneInt)

		fo := stx.AndThenOption(&o1, f)
		left := stx.AndThenOption(&fo, g)
		right := stx.AndThenOption(&o2, func(x int) stx.Option[int] {
			fx := f(x)
			return stx.AndThenOption(&fx, g)
		})
		if !stx.EqualOption(left, right) {
			t.Fatalf("and_then associativity: %v != %v (input %v)", left, right, a)
		}
	}
}

// TestPropertyOptionXor: exactly one Some survives.
func TestPropertyOptionXor(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, b := randOption(rng), randOption(rng)
		aWasSome, bWasSome := a.IsSome(), b.IsSome()
		snapshot := a.Clone(cloneInt)
		altSnapshot := b.Clone(cloneInt)

		got := a.Xor(b)
		switch {
		case aWasSome && !bWasSome:
			if !stx.EqualOption(got, snapshot) {
				t.Fatalf("xor: got %v, want %v", got, snapshot)
			}
		case !aWasSome && bWasSome:
			if !stx.EqualOption(got, altSnapshot) {
				t.Fatalf("xor: got %v, want %v", got, altSnapshot)
			}
		default:
			if !got.IsNone() {
				t.Fatalf("xor: got %v, want None", got)
			}
		}
	}
}

// TestPropertyOptionTakeReplace: take leaves None, replace returns the
// previous state, and the returned values equal the originals.
func TestPropertyOptionTakeReplace(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randOption(rng)
		snapshot := a.Clone(cloneInt)

		taken := a.Take()
		if !a.IsNone() {
			t.Fatal("take: source not None")
		}
		if !stx.EqualOption(taken, snapshot) {
			t.Fatalf("take: got %v, want %v", taken, snapshot)
		}

		v := randInt(rng)
		prev := a.Replace(v)
		if !prev.IsNone() {
			t.Fatalf("replace on None: previous = %v", prev)
		}
		if !stx.EqualOption(a, stx.Some(v)) {
			t.Fatalf("replace: got state %v, want Some(%d)", a, v)
		}
	}
}

// --- Group 2: Result laws ---

// TestPropertyAndThenResultAssociativity over both channels.
func TestPropertyAndThenResultAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) stx.Result[int, string] {
		if x%2 == 0 {
			return stx.Ok[int, string](x + 1)
		}
		return stx.Err[int]("odd")
	}
	g := func(x int) stx.Result[int, string] {
		if x >= 0 {
			return stx.Ok[int, string](x * 2)
		}
		return stx.Err[int]("negative")
	}
	for range propertyN {
		v := randInt(rng)
		var a stx.Result[int, string]
		if rng.IntN(3) == 0 {
			a = stx.Err[int]("seed")
		} else {
			a = stx.Ok[int, string](v)
		}
		r1 := a.Clone(cloneInt, cloneString)
		r2 := a.Clone(cloneInt, cloneString)

		fr := stx.AndThenResult(&r1, f)
		left := stx.AndThenResult(&fr, g)
		right := stx.AndThenResult(&r2, func(x int) stx.Result[int, string] {
			fx := f(x)
			return stx.AndThenResult(&fx, g)
		})
		if !stx.EqualResult(left, right) {
			t.Fatalf("and_then associativity: %v != %v (input %v)", left, right, a)
		}
	}
}

// TestPropertyResultRoundTrip: Ok(v).ok() == Some(v), Err(e).ok() == None,
// Err(e).err() == Some(e).
func TestPropertyResultRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		v := randInt(rng)

		okr := stx.Ok[int, string](v)
		if got := okr.Ok(); !stx.EqualOption(got, stx.Some(v)) {
			t.Fatalf("Ok(%d).Ok() = %v", v, got)
		}

		errStr := "e"
		errA := stx.Err[int](errStr)
		if got := errA.Ok(); !got.IsNone() {
			t.Fatalf("Err.Ok() = %v, want None", got)
		}

		errB := stx.Err[int](errStr)
		if got := errB.Err(); !stx.EqualOption(got, stx.Some(errStr)) {
			t.Fatalf("Err.Err() = %v, want Some(%q)", got, errStr)
		}
	}
}

// TestPropertyOptionResultConversion: Some(v) -> OkOr -> Ok().ok() round trips.
func TestPropertyOptionResultConversion(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randOption(rng)
		snapshot := a.Clone(cloneInt)

		r := stx.OkOr(&a, "missing")
		back := r.Ok()
		if !stx.EqualOption(back, snapshot) {
			t.Fatalf("conversion round trip: %v != %v", back, snapshot)
		}
	}
}

// TestPropertyEqualOptionLaws: reflexivity and symmetry.
func TestPropertyEqualOptionLaws(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, b := randOption(rng), randOption(rng)
		if !stx.EqualOption(a, a) {
			t.Fatalf("equality not reflexive for %v", a)
		}
		if stx.EqualOption(a, b) != stx.EqualOption(b, a) {
			t.Fatalf("equality not symmetric for %v, %v", a, b)
		}
	}
}

func cloneInt(v int) int          { return v }
func cloneString(s string) string { return s }
