// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry_test

import (
	"testing"

	"code.hybscloud.com/curry"
	"code.hybscloud.com/curry/tuple"
)

func TestComposeCallAllocations(t *testing.T) {
	gf := curry.Compose1x1[float32, uint8, float32](square, cast)
	allocs := testing.AllocsPerRun(100, func() {
		_ = gf.Call(tuple.Of1(uint8(3)))
	})
	if allocs > 0 {
		t.Errorf("Composition.Call allocs = %v; want 0", allocs)
	}

	curried := curry.Compose2x1[float32, float32, uint8, float32](add, cast)
	allocs2 := testing.AllocsPerRun(100, func() {
		_ = curried.Call(tuple.Of2(float32(1), uint8(3)))
	})
	if allocs2 > 0 {
		t.Errorf("curried Composition.Call allocs = %v; want 0", allocs2)
	}
}

func TestTupleAlgebraAllocations(t *testing.T) {
	left := tuple.Of2(1, 2)
	right := tuple.Of2(3, 4)
	allocs := testing.AllocsPerRun(100, func() {
		l, r := tuple.Split2x2(tuple.Concat2x2(left, right))
		left, right = l, r
	})
	if allocs > 0 {
		t.Errorf("tuple concat/split allocs = %v; want 0", allocs)
	}
}
