// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry_test

import (
	"testing"

	"code.hybscloud.com/curry"
	"code.hybscloud.com/curry/tuple"
)

// BenchmarkComposeConstruct measures composition construction.
func BenchmarkComposeConstruct(b *testing.B) {
	for b.Loop() {
		_ = curry.Compose1x1[float32, uint8, float32](square, cast)
	}
}

// BenchmarkComposeCall measures a single dispatch through a 1x1 composition.
func BenchmarkComposeCall(b *testing.B) {
	gf := curry.Compose1x1[float32, uint8, float32](square, cast)
	for b.Loop() {
		_ = gf.Call(tuple.Of1(uint8(3)))
	}
}

// BenchmarkComposeCallCurried measures dispatch with a leftover argument.
func BenchmarkComposeCallCurried(b *testing.B) {
	gf := curry.Compose2x1[float32, float32, uint8, float32](add, cast)
	for b.Loop() {
		_ = gf.Call(tuple.Of2(float32(1), uint8(3)))
	}
}

// BenchmarkComposeCallWide measures dispatch through the widest shape.
func BenchmarkComposeCallWide(b *testing.B) {
	g := curry.Fn3[int, int, int, int](func(a, b, c int) int { return a + b + c })
	f := curry.Fn3[int, int, int, int](func(a, b, c int) int { return a * b * c })
	gf := curry.Compose3x3[int, int, int, int, int, int, int](g, f)
	for b.Loop() {
		_ = gf.Call(tuple.Of5(1, 2, 3, 4, 5))
	}
}

// BenchmarkComposeCallChained measures dispatch through a nested chain.
func BenchmarkComposeCallChained(b *testing.B) {
	gf := curry.Compose2x1[float32, float32, uint8, float32](add, cast)
	gff := curry.Compose2x1[float32, uint8, uint8, float32](gf, cast)
	for b.Loop() {
		_ = gff.Call(tuple.Of2(uint8(1), uint8(2)))
	}
}

// BenchmarkMutComposeCall measures exclusive-access dispatch.
func BenchmarkMutComposeCall(b *testing.B) {
	sum := 0
	accumulate := curry.MutFn1[int, int](func(x int) int {
		sum += x
		return sum
	})
	id := curry.Fn1[int, int](curry.Ident[int])
	gf := curry.ComposeMut1x1[int, int, int](id, accumulate)
	for b.Loop() {
		_ = gf.CallMut(tuple.Of1(1))
	}
}

// BenchmarkDirectCall is the no-composition baseline.
func BenchmarkDirectCall(b *testing.B) {
	for b.Loop() {
		_ = square(cast(3))
	}
}

// BenchmarkTupleConcatSplit measures a concat/split round trip.
func BenchmarkTupleConcatSplit(b *testing.B) {
	left := tuple.Of2(1, 2)
	right := tuple.Of3("a", "b", "c")
	for b.Loop() {
		l, r := tuple.Split2x3(tuple.Concat2x3(left, right))
		left, right = l, r
	}
}
