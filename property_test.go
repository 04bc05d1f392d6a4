// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/curry"
	"code.hybscloud.com/curry/tuple"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randLinear returns a random function x ↦ a*x + b with small coefficients,
// distinguishable under composition order.
func randLinear(rng *rand.Rand) func(int) int {
	a := rng.IntN(7) - 3
	b := rng.IntN(21) - 10
	return func(x int) int { return a*x + b }
}

// TestPropertyComposeIdentity: compose(g, f)(x) ≡ g(f(x))
func TestPropertyComposeIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		gp := randLinear(rng)
		fp := randLinear(rng)
		x := randInt(rng)

		gf := curry.Compose1x1[int, int, int](curry.Fn1[int, int](gp), curry.Fn1[int, int](fp))
		left := gf.Call(tuple.Of1(x))
		right := gp(fp(x))
		if left != right {
			t.Fatalf("identity: %d != %d (x=%d)", left, right, x)
		}
	}
}

// TestPropertyArgumentShift: compose(g, f)(y, x) ≡ g(f(x), y)
func TestPropertyArgumentShift(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		fp := randLinear(rng)
		x := randInt(rng)
		y := randInt(rng)

		// Non-commutative g keeps the two parameter positions apart.
		gp := func(a, b int) int { return 2*a - b }
		gf := curry.Compose2x1[int, int, int, int](curry.Fn2[int, int, int](gp), curry.Fn1[int, int](fp))

		left := gf.Call(tuple.Of2(y, x))
		right := gp(fp(x), y)
		if left != right {
			t.Fatalf("argument shift: %d != %d (x=%d, y=%d)", left, right, x, y)
		}
	}
}

// TestPropertyAssociativity: composing through an intermediate composition
// behaves call-for-call like the manually nested form.
func TestPropertyAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		fp := randLinear(rng)
		x := randInt(rng)
		y := randInt(rng)

		gp := func(a, b int) int { return 3*a + b }
		gf := curry.Compose2x1[int, int, int, int](curry.Fn2[int, int, int](gp), curry.Fn1[int, int](fp))
		gff := curry.Compose2x1[int, int, int, int](gf, curry.Fn1[int, int](fp))

		left := gff.Call(tuple.Of2(x, y))
		right := gp(fp(x), fp(y))
		if left != right {
			t.Fatalf("associativity: %d != %d (x=%d, y=%d)", left, right, x, y)
		}
	}
}

// TestPropertyRepeatedCallsStable: a pure composition is referentially
// transparent; every repetition yields the same value.
func TestPropertyRepeatedCallsStable(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		gp := randLinear(rng)
		fp := randLinear(rng)
		x := randInt(rng)

		gf := curry.Compose1x1[int, int, int](curry.Fn1[int, int](gp), curry.Fn1[int, int](fp))
		first := gf.Call(tuple.Of1(x))
		for range 3 {
			if got := gf.Call(tuple.Of1(x)); got != first {
				t.Fatalf("repeat: %d != %d (x=%d)", got, first, x)
			}
		}
	}
}

// TestPropertyDisciplineAgreement: the three discipline variants of the same
// operands compute the same value for the same arguments.
func TestPropertyDisciplineAgreement(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		gp := randLinear(rng)
		fp := randLinear(rng)
		x := randInt(rng)
		y := randInt(rng)

		g2 := func(a, b int) int { return gp(a) - b }
		pure := curry.Compose2x1[int, int, int, int](curry.Fn2[int, int, int](g2), curry.Fn1[int, int](fp))
		mut := curry.ComposeMut2x1[int, int, int, int](curry.Fn2[int, int, int](g2), curry.Fn1[int, int](fp))
		once := curry.ComposeOnce2x1[int, int, int, int](curry.Fn2[int, int, int](g2), curry.Fn1[int, int](fp))

		want := g2(fp(x), y)
		if got := pure.Call(tuple.Of2(y, x)); got != want {
			t.Fatalf("pure: %d != %d", got, want)
		}
		if got := mut.CallMut(tuple.Of2(y, x)); got != want {
			t.Fatalf("mut: %d != %d", got, want)
		}
		if got := once.CallOnce(tuple.Of2(y, x)); got != want {
			t.Fatalf("once: %d != %d", got, want)
		}
	}
}
