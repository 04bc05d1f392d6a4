// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tuple provides a fixed-arity, heterogeneously typed argument-list
// algebra for [code.hybscloud.com/curry].
//
// An argument list is an ordered, fixed-length sequence of values whose
// element types and length are known at compile time. The algebra consists of
// one concrete struct type per arity ([T0] through [T6]) and a mechanically
// generated family of operations over them:
//
//   - [Of0] … [Of6]: value constructors with full type inference
//   - Len: arity of a list, as a method on every list type
//   - Head1 … Head6: first element of a non-empty list
//   - Tail1 … Tail6: a non-empty list without its first element
//   - ConcatIxJ: order-preserving concatenation of an I-list and a J-list
//   - SplitIxJ: the value-level inverse of ConcatIxJ at a statically fixed
//     split point
//
// Concat and Split are exact inverses:
//
//	ConcatIxJ(SplitIxJ(t)) == t
//	SplitIxJ(ConcatIxJ(a, b)) == (a, b)
//
// All operations are pure value transformations with no allocation. The
// split position in SplitIxJ is part of the function identity, never a
// runtime quantity, so a split that does not exist for a given arity pair is
// a compile-time error rather than a runtime one.
//
// The family is generated by gen.go for arities 0 through a configurable
// maximum; regenerate with go generate after changing the bound.
package tuple

//go:generate go run gen.go
