// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/curry"
	"code.hybscloud.com/curry/tuple"
)

func TestOnceCallOnce(t *testing.T) {
	f := curry.Fn1[int, string](func(int) string { return "received" })
	once := curry.Once[tuple.T1[int], string](f)

	got := once.CallOnce(tuple.Of1(42))
	if got != "received" {
		t.Fatalf("got %q, want %q", got, "received")
	}

	// After consumption, TryCallOnce must fail.
	_, ok := once.TryCallOnce(tuple.Of1(0))
	if ok {
		t.Fatal("expected TryCallOnce to fail after CallOnce")
	}
}

func TestOncePanicOnReuse(t *testing.T) {
	f := curry.Fn1[int, int](func(x int) int { return x * 2 })
	once := curry.Once[tuple.T1[int], int](f)

	_ = once.CallOnce(tuple.Of1(10))

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on second CallOnce")
		}
		if s, ok := r.(string); !ok || s != "curry: once function called twice" {
			t.Fatalf("unexpected panic message: %v", r)
		}
	}()

	_ = once.CallOnce(tuple.Of1(20))
}

func TestOnceTryCallOnce(t *testing.T) {
	f := curry.Fn1[int, int](func(x int) int { return x * 2 })
	once := curry.Once[tuple.T1[int], int](f)

	got, ok := once.TryCallOnce(tuple.Of1(10))
	if !ok {
		t.Fatal("expected first TryCallOnce to succeed")
	}
	if got != 20 {
		t.Fatalf("got %d, want 20", got)
	}

	got, ok = once.TryCallOnce(tuple.Of1(20))
	if ok {
		t.Fatal("expected second TryCallOnce to fail")
	}
	if got != 0 {
		t.Fatalf("got %d, want 0 on failed TryCallOnce", got)
	}
}

func TestOnceDiscard(t *testing.T) {
	f := curry.Fn1[int, int](func(x int) int { return x })
	once := curry.Once[tuple.T1[int], int](f)

	once.Discard()

	if !once.Used() {
		t.Fatal("expected Used after Discard")
	}
	if _, ok := once.TryCallOnce(tuple.Of1(42)); ok {
		t.Fatal("expected TryCallOnce to fail after Discard")
	}
}

func TestOnceDiscardThenPanic(t *testing.T) {
	f := curry.Fn1[int, int](func(x int) int { return x })
	once := curry.Once[tuple.T1[int], int](f)
	once.Discard()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic after Discard")
		}
	}()

	_ = once.CallOnce(tuple.Of1(42))
}

func TestOnceNullary(t *testing.T) {
	ran := 0
	f := curry.Fn0[int](func() int {
		ran++
		return ran
	})
	once := curry.Once[tuple.T0, int](f)

	if got := once.CallOnce(tuple.Of0()); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
	if ran != 1 {
		t.Fatalf("ran %d times, want 1", ran)
	}
}

func TestOnceConcurrentCallOnce(t *testing.T) {
	f := curry.Fn1[int, int](func(x int) int { return x })
	once := curry.Once[tuple.T1[int], int](f)

	const goroutines = 100
	var wg sync.WaitGroup
	wg.Add(goroutines)

	successCount := make(chan int, goroutines)
	panicCount := make(chan int, goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					panicCount <- 1
				}
			}()
			_ = once.CallOnce(tuple.Of1(1))
			successCount <- 1
		}()
	}

	wg.Wait()
	close(successCount)
	close(panicCount)

	successes := 0
	for range successCount {
		successes++
	}

	panics := 0
	for range panicCount {
		panics++
	}

	if successes != 1 {
		t.Fatalf("expected exactly 1 success, got %d", successes)
	}
	if panics != goroutines-1 {
		t.Fatalf("expected %d panics, got %d", goroutines-1, panics)
	}
}

// --- Benchmarks ---

func BenchmarkOnceCallOnce(b *testing.B) {
	f := curry.Fn1[int, int](func(x int) int { return x })
	for b.Loop() {
		once := curry.Once[tuple.T1[int], int](f)
		_ = once.CallOnce(tuple.Of1(42))
	}
}

func BenchmarkOnceTryCallOnce(b *testing.B) {
	f := curry.Fn1[int, int](func(x int) int { return x })
	for b.Loop() {
		once := curry.Once[tuple.T1[int], int](f)
		once.TryCallOnce(tuple.Of1(42))
	}
}
