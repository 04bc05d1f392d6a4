// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry_test

import (
	"testing"

	"code.hybscloud.com/curry"
	"code.hybscloud.com/curry/tuple"
)

// square :: float32 → float32 and cast :: uint8 → float32 are the canonical
// operands used throughout: g ∘ f with g = square, f = cast.
var (
	square = curry.Fn1[float32, float32](func(x float32) float32 { return x * x })
	cast   = curry.Fn1[uint8, float32](func(x uint8) float32 { return float32(x) })
	add    = curry.Fn2[float32, float32, float32](func(x, y float32) float32 { return x + y })
)

func TestComposeIdentity(t *testing.T) {
	// h(x) = g(f(x))
	gf := curry.Compose1x1[float32, uint8, float32](square, cast)

	got := gf.Call(tuple.Of1(uint8(3)))
	want := square(cast(3))
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestComposeArgumentShift(t *testing.T) {
	// h(y, x) = g(f(x), y): the leftover parameter y comes first in h's
	// argument list, f's parameter x comes after.
	gf := curry.Compose2x1[float32, float32, uint8, float32](add, cast)

	got := gf.Call(tuple.Of2(float32(2), uint8(3)))
	want := add(cast(3), 2)
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestComposeArgumentOrderNotInterleaved(t *testing.T) {
	// With a non-commutative g the ordering is unambiguous:
	// h(y, x) = g(f(x), y) and nothing else.
	sub := curry.Fn2[float32, float32, float32](func(x, y float32) float32 { return x - y })
	gf := curry.Compose2x1[float32, float32, uint8, float32](sub, cast)

	got := gf.Call(tuple.Of2(float32(2), uint8(3)))
	if got != 1 { // cast(3) - 2, not 2 - cast(3)
		t.Fatalf("got %v, want 1", got)
	}
}

func TestComposeChaining(t *testing.T) {
	// gf :: (float32, uint8) → float32, then gff :: (uint8, uint8) → float32.
	// gff(x, y) = add(cast(x), cast(y)).
	gf := curry.Compose2x1[float32, float32, uint8, float32](add, cast)
	gff := curry.Compose2x1[float32, uint8, uint8, float32](gf, cast)

	got := gff.Call(tuple.Of2(uint8(1), uint8(1)))
	want := add(cast(1), cast(1))
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestComposeChainingDeep(t *testing.T) {
	// square ∘ cast, then add ∘ (square ∘ cast), then ∘ cast once more.
	gf := curry.Compose1x1[float32, uint8, float32](square, cast)
	gff := curry.Compose2x1[float32, float32, uint8, float32](add, gf)
	gfff := curry.Compose2x1[float32, uint8, uint8, float32](gff, cast)

	got := gfff.Call(tuple.Of2(uint8(2), uint8(3)))
	want := add(square(cast(2)), cast(3))
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestComposeNullaryInner(t *testing.T) {
	// f of arity 0: h() = g(f()).
	supply := curry.Fn0[float32](func() float32 { return 2.5 })
	gf := curry.Compose1x0[float32, float32](square, supply)

	got := gf.Call(tuple.Of0())
	if got != 6.25 {
		t.Fatalf("got %v, want 6.25", got)
	}
}

func TestComposeNullaryInnerWithLeftovers(t *testing.T) {
	// g of arity 3, f of arity 0: h(d1, d2) = g(f(), d1, d2).
	join := curry.Fn3[string, string, string, string](func(a, b, c string) string {
		return a + b + c
	})
	supply := curry.Fn0[string](func() string { return "head" })
	gf := curry.Compose3x0[string, string, string, string](join, supply)

	got := gf.Call(tuple.Of2("-mid", "-tail"))
	if got != "head-mid-tail" {
		t.Fatalf("got %q", got)
	}
}

func TestComposeWideShapes(t *testing.T) {
	// g of arity 3 with f of arity 2: h(d1, d2, a1, a2) = g(f(a1, a2), d1, d2).
	describe := curry.Fn3[string, int, bool, string](func(s string, n int, b bool) string {
		if b {
			return s
		}
		return s[:n]
	})
	pair := curry.Fn2[string, string, string](func(a, b string) string { return a + b })
	gf := curry.Compose3x2[string, int, bool, string, string, string](describe, pair)

	got := gf.Call(tuple.Of4(2, false, "ab", "cd"))
	want := describe(pair("ab", "cd"), 2, false)
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestComposeRepeatable(t *testing.T) {
	gf := curry.Compose1x1[float32, uint8, float32](square, cast)

	for i := range 10 {
		x := uint8(i)
		if got, want := gf.Call(tuple.Of1(x)), square(cast(x)); got != want {
			t.Fatalf("call %d: got %v, want %v", i, got, want)
		}
	}
}

func TestComposeInvokesInnerFirst(t *testing.T) {
	var order []string
	g := curry.Fn1[int, int](func(x int) int {
		order = append(order, "g")
		return x
	})
	f := curry.Fn1[int, int](func(x int) int {
		order = append(order, "f")
		return x
	})
	gf := curry.Compose1x1[int, int, int](g, f)

	gf.Call(tuple.Of1(0))
	if len(order) != 2 || order[0] != "f" || order[1] != "g" {
		t.Fatalf("invocation order = %v, want [f g]", order)
	}
}

func TestComposePanicPropagatesUnmodified(t *testing.T) {
	f := curry.Fn1[int, int](func(int) int { panic("inner failure") })
	g := curry.Fn1[int, int](func(x int) int { return x })
	gf := curry.Compose1x1[int, int, int](g, f)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic to propagate")
		}
		if s, ok := r.(string); !ok || s != "inner failure" {
			t.Fatalf("panic was modified: %v", r)
		}
	}()

	gf.Call(tuple.Of1(0))
}

func TestComposeIdentCombinator(t *testing.T) {
	// Ident is the left identity of composition.
	id := curry.Fn1[float32, float32](curry.Ident[float32])
	gf := curry.Compose1x1[float32, uint8, float32](id, cast)

	if got := gf.Call(tuple.Of1(uint8(7))); got != 7 {
		t.Fatalf("got %v, want 7", got)
	}
}

func TestComposeConstCombinator(t *testing.T) {
	k := curry.Fn1[uint8, float32](curry.Const[uint8](float32(4)))
	gf := curry.Compose1x1[float32, uint8, float32](square, k)

	if got := gf.Call(tuple.Of1(uint8(99))); got != 16 {
		t.Fatalf("got %v, want 16", got)
	}
}
