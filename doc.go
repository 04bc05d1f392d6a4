// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package curry provides currying (and non-currying) function composition
// in Go.
//
// Composing a callable g with a callable f produces a new callable h that
// feeds f's result into g's first parameter:
//
//	h(x) = (g ∘ f)(x) = g(f(x))
//
// The composition curries: when g has more than one parameter, f consumes
// only the first, and the leftover parameters are exposed by h, shifted to
// appear before f's own parameters:
//
//	h(d..., a...) = (g ∘ f)(d..., a...) = g(f(a...), d...)
//
// The leftover parameters keep their original relative order and are never
// interleaved with f's. For g :: (float32, float32) → float32 composed with
// f :: (uint8) → float32, the composition's signature is
// (float32, uint8) → float32.
//
// # Design Philosophy
//
// curry provides:
//   - A statically typed argument-list algebra with a fixed split point
//   - Capability-ordered calling disciplines modelled as embedded interfaces
//   - Mechanically generated per-arity surfaces instead of runtime reflection
//
// Every shape constraint lives in the type system: g's first parameter type
// is unified with f's result type by the constructor signatures, and a
// composition with a zero-arity g is not expressible because no such
// constructor exists. There are no error values and no call-time shape
// checks; a composition that compiles cannot fail in ways g and f themselves
// cannot.
//
// # Argument Lists
//
// Arguments travel as fixed-arity tuples from
// [code.hybscloud.com/curry/tuple]: an argument list of length k is a value
// of tuple.Tk, built with tuple.Ofk. The tuple package also carries the
// concat/split algebra the dispatch relies on; see its package documentation.
//
// # Calling Disciplines
//
// Callables support up to three disciplines, ordered by capability through
// interface embedding:
//
//   - [FuncOnce]: consuming — at most one invocation, which consumes the
//     callable and its arguments
//   - [FuncMut]: mutable-repeatable — any number of invocations, each under
//     exclusive access
//   - [Func]: pure-repeatable — any number of invocations under shared
//     access
//
// A [Func] is usable wherever a [FuncMut] or [FuncOnce] is expected, and a
// [FuncMut] wherever a [FuncOnce] is. Plain Go functions adapt through
// [Fn0] … [Fn3] (all three disciplines) and [MutFn0] … [MutFn3]
// (mutable-repeatable at most); [Once] wraps any callable in one-shot
// enforcement.
//
// # Composing
//
// The constructor family is generated per arity pair, ComposeNxM for a g of
// arity N (1..3) and an f of arity M (0..3), in three discipline variants:
//
//   - ComposeNxM: both operands [Func]; yields a [Composition], itself a
//     [Func]
//   - ComposeMutNxM: both operands [FuncMut]; yields a [*MutComposition],
//     itself a [FuncMut]
//   - ComposeOnceNxM: both operands [FuncOnce]; yields a
//     [*OnceComposition], itself a [FuncOnce]
//
// The discipline of a composition is the weakest of its operands, selected
// by construction: an operand lacking the stronger discipline does not
// satisfy the stronger constructor's parameter type, and the program does
// not compile. Compositions are callables, so they nest through the same
// constructors without limit.
//
// Invocation always runs f first, then g, in every discipline.
//
// # Affine Enforcement
//
// Go cannot reject a second call of a consuming callable at compile time the
// way a move-semantics type system can. [OnceFn] and [OnceComposition]
// enforce the discipline dynamically instead: an atomic guard makes reuse
// panic (CallOnce), fail softly ([OnceFn.TryCallOnce]), or be forgone
// explicitly ([OnceFn.Discard]). Under concurrent use exactly one caller
// wins.
//
// # Example
//
//	g := curry.Fn2[float32, float32, float32](func(x, y float32) float32 { return x + y })
//	f := curry.Fn1[uint8, float32](func(x uint8) float32 { return float32(x) })
//
//	// g ∘ f :: (float32, uint8) → float32
//	gf := curry.Compose2x1[float32, float32, uint8, float32](g, f)
//
//	v := gf.Call(tuple.Of2(float32(1), uint8(1)))
//	// v == g(f(1), 1) == 2
package curry

//go:generate go run gen.go
