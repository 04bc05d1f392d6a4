// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

import (
	"sync/atomic"

	"code.hybscloud.com/curry/tuple"
)

// A composition of g with f shares one call-dispatch algorithm across all
// three calling disciplines:
//
//  1. split the supplied argument list X at the fixed point len(tail(XG))
//     into left (g's leftover arguments) and right (f's arguments);
//  2. invoke f on right, producing a value of g's first parameter type H;
//  3. invoke g on (r,) ++ left, f's result reinserted at the front and the
//     leftover arguments following in their original relative order.
//
// f always runs before g. The split point and the reassembly are fixed at
// construction through two tuple-algebra witnesses, instantiated named
// generic functions from [code.hybscloud.com/curry/tuple]; nothing about the
// shape is discovered at call time.
//
// Type parameters, shared by all three variants:
//
//   - X:  the composition's own argument list, tail(XG) ++ XF
//   - L:  tail(XG), g's leftover arguments
//   - XF: f's argument list
//   - XG: g's full argument list
//   - H:  head(XG), equal to f's result type
//   - R:  g's result type

// Composition is a pure-repeatable composition g ∘ f. It requires only
// shared access and implements [Func]; it may be called any number of times,
// concurrently if g and f themselves tolerate concurrent shared calls.
//
// Construct through the ComposeNxM family.
type Composition[X, L, XF, XG, H, R any] struct {
	g       Func[XG, R]
	f       Func[XF, H]
	split   func(X) (L, XF)
	prepend func(tuple.T1[H], L) XG
}

// Call invokes the composition under shared access.
func (c Composition[X, L, XF, XG, H, R]) Call(x X) R {
	left, right := c.split(x)
	return c.g.Call(c.prepend(tuple.Of1(c.f.Call(right)), left))
}

// CallMut invokes the composition under exclusive access.
// A pure composition mutates nothing, so this is Call.
func (c Composition[X, L, XF, XG, H, R]) CallMut(x X) R { return c.Call(x) }

// CallOnce invokes the composition, consuming it.
func (c Composition[X, L, XF, XG, H, R]) CallOnce(x X) R { return c.Call(x) }

// MutComposition is a mutable-repeatable composition g ∘ f. Each invocation
// requires exclusive access; it implements [FuncMut].
//
// Construct through the ComposeMutNxM family.
type MutComposition[X, L, XF, XG, H, R any] struct {
	g       FuncMut[XG, R]
	f       FuncMut[XF, H]
	split   func(X) (L, XF)
	prepend func(tuple.T1[H], L) XG
}

// CallMut invokes the composition under exclusive access.
// f runs before g, so f's side effects precede g's.
func (c *MutComposition[X, L, XF, XG, H, R]) CallMut(x X) R {
	left, right := c.split(x)
	return c.g.CallMut(c.prepend(tuple.Of1(c.f.CallMut(right)), left))
}

// CallOnce invokes the composition, consuming it.
func (c *MutComposition[X, L, XF, XG, H, R]) CallOnce(x X) R { return c.CallMut(x) }

// OnceComposition is a consuming composition g ∘ f. It may be invoked at
// most once; the invocation consumes g and f in the order f then g.
// Reuse panics, matching the affine enforcement of [OnceFn].
//
// Construct through the ComposeOnceNxM family.
type OnceComposition[X, L, XF, XG, H, R any] struct {
	used    atomic.Uintptr
	g       FuncOnce[XG, R]
	f       FuncOnce[XF, H]
	split   func(X) (L, XF)
	prepend func(tuple.T1[H], L) XG
}

// CallOnce invokes the composition, consuming it.
// Panics if the composition has already been consumed.
func (c *OnceComposition[X, L, XF, XG, H, R]) CallOnce(x X) R {
	if c.used.Add(1) != 1 {
		panic("curry: consuming composition called twice")
	}
	left, right := c.split(x)
	return c.g.CallOnce(c.prepend(tuple.Of1(c.f.CallOnce(right)), left))
}

// TryCallOnce attempts to invoke the composition.
// Returns (result, true) on success, or (zero, false) if already consumed.
func (c *OnceComposition[X, L, XF, XG, H, R]) TryCallOnce(x X) (R, bool) {
	if c.used.Add(1) != 1 {
		var zero R
		return zero, false
	}
	left, right := c.split(x)
	return c.g.CallOnce(c.prepend(tuple.Of1(c.f.CallOnce(right)), left)), true
}

// Discard marks the composition as consumed without invoking it and releases
// g and f, discarding them in turn when they support discarding.
func (c *OnceComposition[X, L, XF, XG, H, R]) Discard() {
	c.used.Store(1)
	if d, ok := c.g.(interface{ Discard() }); ok {
		d.Discard()
	}
	if d, ok := c.f.(interface{ Discard() }); ok {
		d.Discard()
	}
	c.g = nil
	c.f = nil
}
