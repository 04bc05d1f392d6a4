// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

import (
	"code.hybscloud.com/curry/tuple"
)

// Calling disciplines form a capability lattice expressed through interface
// embedding: every pure-repeatable callable is mutable-repeatable, and every
// mutable-repeatable callable is consuming. A composition's discipline is the
// weakest of its constituents, enforced by which constructor family accepts
// the operands.

// FuncOnce is a consuming callable over the argument list X producing R.
// It may be invoked at most once; the invocation consumes the callable
// together with its arguments.
type FuncOnce[X, R any] interface {
	// CallOnce invokes the callable, consuming it.
	CallOnce(x X) R
}

// FuncMut is a repeatable callable that requires exclusive access for each
// invocation. Closures that mutate captured state belong here.
type FuncMut[X, R any] interface {
	FuncOnce[X, R]

	// CallMut invokes the callable under exclusive access.
	CallMut(x X) R
}

// Func is a repeatable callable that requires only shared access, invocable
// any number of times with no observable state change of its own. Concurrent
// shared calls are safe whenever the underlying function is.
type Func[X, R any] interface {
	FuncMut[X, R]

	// Call invokes the callable under shared access.
	Call(x X) R
}

// Fn0 adapts a nullary Go function to all three calling disciplines.
type Fn0[R any] func() R

func (f Fn0[R]) Call(tuple.T0) R { return f() }
func (f Fn0[R]) CallMut(x tuple.T0) R { return f.Call(x) }
func (f Fn0[R]) CallOnce(x tuple.T0) R { return f.Call(x) }

// Fn1 adapts a unary Go function to all three calling disciplines.
type Fn1[A1, R any] func(A1) R

func (f Fn1[A1, R]) Call(x tuple.T1[A1]) R { return f(x.V1) }
func (f Fn1[A1, R]) CallMut(x tuple.T1[A1]) R { return f.Call(x) }
func (f Fn1[A1, R]) CallOnce(x tuple.T1[A1]) R { return f.Call(x) }

// Fn2 adapts a binary Go function to all three calling disciplines.
type Fn2[A1, A2, R any] func(A1, A2) R

func (f Fn2[A1, A2, R]) Call(x tuple.T2[A1, A2]) R { return f(x.V1, x.V2) }
func (f Fn2[A1, A2, R]) CallMut(x tuple.T2[A1, A2]) R { return f.Call(x) }
func (f Fn2[A1, A2, R]) CallOnce(x tuple.T2[A1, A2]) R { return f.Call(x) }

// Fn3 adapts a ternary Go function to all three calling disciplines.
type Fn3[A1, A2, A3, R any] func(A1, A2, A3) R

func (f Fn3[A1, A2, A3, R]) Call(x tuple.T3[A1, A2, A3]) R { return f(x.V1, x.V2, x.V3) }
func (f Fn3[A1, A2, A3, R]) CallMut(x tuple.T3[A1, A2, A3]) R { return f.Call(x) }
func (f Fn3[A1, A2, A3, R]) CallOnce(x tuple.T3[A1, A2, A3]) R { return f.Call(x) }

// MutFn0 adapts a nullary Go function to the mutable-repeatable discipline.
// Unlike [Fn0] it deliberately withholds the shared-access Call method, for
// closures whose invocation mutates captured state.
type MutFn0[R any] func() R

func (f MutFn0[R]) CallMut(tuple.T0) R { return f() }
func (f MutFn0[R]) CallOnce(x tuple.T0) R { return f.CallMut(x) }

// MutFn1 adapts a unary Go function to the mutable-repeatable discipline.
type MutFn1[A1, R any] func(A1) R

func (f MutFn1[A1, R]) CallMut(x tuple.T1[A1]) R { return f(x.V1) }
func (f MutFn1[A1, R]) CallOnce(x tuple.T1[A1]) R { return f.CallMut(x) }

// MutFn2 adapts a binary Go function to the mutable-repeatable discipline.
type MutFn2[A1, A2, R any] func(A1, A2) R

func (f MutFn2[A1, A2, R]) CallMut(x tuple.T2[A1, A2]) R { return f(x.V1, x.V2) }
func (f MutFn2[A1, A2, R]) CallOnce(x tuple.T2[A1, A2]) R { return f.CallMut(x) }

// MutFn3 adapts a ternary Go function to the mutable-repeatable discipline.
type MutFn3[A1, A2, A3, R any] func(A1, A2, A3) R

func (f MutFn3[A1, A2, A3, R]) CallMut(x tuple.T3[A1, A2, A3]) R { return f(x.V1, x.V2, x.V3) }
func (f MutFn3[A1, A2, A3, R]) CallOnce(x tuple.T3[A1, A2, A3]) R { return f.CallMut(x) }

// Ident returns its argument unchanged. It is the left and right identity of
// composition; wrap it as Fn1[A, A](Ident[A]) to use it as a callable.
// Named generic function produces a static function value per type
// instantiation, avoiding the heap allocation that anonymous closures incur.
func Ident[A any](a A) A { return a }

// Const returns a function that ignores its argument and always yields a.
func Const[B, A any](a A) func(B) A {
	return func(B) A { return a }
}
