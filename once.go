// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

import (
	"sync/atomic"
)

// OnceFn wraps a callable with one-shot enforcement. The callable can be
// invoked at most once; subsequent attempts panic (CallOnce) or return false
// (TryCallOnce).
//
// OnceFn models affine resource usage: a callable that captures a resource
// it consumes must not run twice. Under concurrent use exactly one caller
// wins the invocation.
type OnceFn[X, R any] struct {
	used atomic.Uintptr
	f    FuncOnce[X, R]
}

// Once wraps a callable in one-shot enforcement.
// The returned OnceFn supports only the consuming discipline regardless of
// the disciplines f itself supports.
func Once[X, R any](f FuncOnce[X, R]) *OnceFn[X, R] {
	return &OnceFn[X, R]{f: f}
}

// CallOnce invokes the wrapped callable, consuming the wrapper.
// Panics if the wrapper has already been used.
func (o *OnceFn[X, R]) CallOnce(x X) R {
	if o.used.Add(1) != 1 {
		panic("curry: once function called twice")
	}
	return o.f.CallOnce(x)
}

// TryCallOnce attempts to invoke the wrapped callable.
// Returns (result, true) on success, or (zero, false) if already used.
func (o *OnceFn[X, R]) TryCallOnce(x X) (R, bool) {
	if o.used.Add(1) != 1 {
		var zero R
		return zero, false
	}
	return o.f.CallOnce(x), true
}

// Discard marks the wrapper as used without invoking the callable.
// This is useful for explicitly dropping a callable that will not be used.
func (o *OnceFn[X, R]) Discard() {
	o.used.Store(1)
	o.f = nil
}

// Used reports whether the wrapper has been consumed or discarded.
func (o *OnceFn[X, R]) Used() bool {
	return o.used.Load() != 0
}
