// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build ignore

// gen.go emits tuple_gen.go, the fixed-arity tuple algebra, for arities
// 0 through maxArity. Run via go generate or directly with go run gen.go.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

const maxArity = 6

// vars returns n type-parameter names with the given prefix: "A1, A2, ...".
func vars(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	return out
}

// tupleType renders the tuple type instantiated with the given element types.
func tupleType(elems []string) string {
	if len(elems) == 0 {
		return "T0"
	}
	return fmt.Sprintf("T%d[%s]", len(elems), strings.Join(elems, ", "))
}

// literal renders a composite literal of the tuple type holding the given
// field expressions.
func literal(elems []string, fields []string) string {
	if len(elems) == 0 {
		return "T0{}"
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("V%d: %s", i+1, f)
	}
	return fmt.Sprintf("%s{%s}", tupleType(elems), strings.Join(parts, ", "))
}

// fieldsOf returns the field expressions recv.V1 .. recv.Vn, starting at
// field index from+1.
func fieldsOf(recv string, from, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s.V%d", recv, from+i+1)
	}
	return out
}

func main() {
	var b bytes.Buffer

	b.WriteString("// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.\n")
	b.WriteString("// Use of this source code is governed by a MIT-style\n")
	b.WriteString("// license that can be found in the LICENSE file.\n\n")
	b.WriteString("// Code generated by gen.go; DO NOT EDIT.\n\n")
	b.WriteString("package tuple\n\n")

	// Types.
	b.WriteString("// T0 is the empty argument list.\ntype T0 struct{}\n\n")
	for n := 1; n <= maxArity; n++ {
		a := vars("A", n)
		fmt.Fprintf(&b, "// T%d is a fixed argument list of length %d.\n", n, n)
		fmt.Fprintf(&b, "type T%d[%s any] struct {\n", n, strings.Join(a, ", "))
		for i, t := range a {
			fmt.Fprintf(&b, "\tV%d %s\n", i+1, t)
		}
		b.WriteString("}\n\n")
	}

	// Constructors.
	b.WriteString("// Of0 returns the empty argument list.\nfunc Of0() T0 {\n\treturn T0{}\n}\n\n")
	for n := 1; n <= maxArity; n++ {
		a := vars("A", n)
		args := make([]string, n)
		exprs := make([]string, n)
		for i := range args {
			args[i] = fmt.Sprintf("v%d %s", i+1, a[i])
			exprs[i] = fmt.Sprintf("v%d", i+1)
		}
		fmt.Fprintf(&b, "// Of%d builds an argument list of length %d.\n", n, n)
		fmt.Fprintf(&b, "func Of%d[%s any](%s) %s {\n\treturn %s\n}\n\n",
			n, strings.Join(a, ", "), strings.Join(args, ", "), tupleType(a), literal(a, exprs))
	}

	// Len methods.
	b.WriteString("// Len reports the arity of the argument list.\nfunc (T0) Len() int { return 0 }\n\n")
	for n := 1; n <= maxArity; n++ {
		a := vars("A", n)
		b.WriteString("// Len reports the arity of the argument list.\n")
		fmt.Fprintf(&b, "func (%s) Len() int { return %d }\n\n", tupleType(a), n)
	}

	// Head and Tail.
	for n := 1; n <= maxArity; n++ {
		a := vars("A", n)
		fmt.Fprintf(&b, "// Head%d returns the first element of the argument list.\n", n)
		fmt.Fprintf(&b, "func Head%d[%s any](t %s) A1 {\n\treturn t.V1\n}\n\n",
			n, strings.Join(a, ", "), tupleType(a))
		fmt.Fprintf(&b, "// Tail%d returns the argument list without its first element.\n", n)
		fmt.Fprintf(&b, "func Tail%d[%s any](t %s) %s {\n\treturn %s\n}\n\n",
			n, strings.Join(a, ", "), tupleType(a), tupleType(a[1:]), literal(a[1:], fieldsOf("t", 1, n-1)))
	}

	// Concat and Split for every i+j <= maxArity.
	for i := 0; i <= maxArity; i++ {
		for j := 0; i+j <= maxArity; j++ {
			a := vars("A", i)
			c := vars("B", j)
			all := append(append([]string{}, a...), c...)
			params := ""
			if len(all) > 0 {
				params = fmt.Sprintf("[%s any]", strings.Join(all, ", "))
			}

			concatFields := append(fieldsOf("a", 0, i), fieldsOf("b", 0, j)...)
			fmt.Fprintf(&b, "// Concat%dx%d concatenates two argument lists, preserving order.\n", i, j)
			fmt.Fprintf(&b, "func Concat%dx%d%s(a %s, b %s) %s {\n\treturn %s\n}\n\n",
				i, j, params, tupleType(a), tupleType(c), tupleType(all), literal(all, concatFields))

			fmt.Fprintf(&b, "// Split%dx%d splits an argument list at position %d.\n", i, j, i)
			fmt.Fprintf(&b, "func Split%dx%d%s(t %s) (%s, %s) {\n\treturn %s, %s\n}\n\n",
				i, j, params, tupleType(all), tupleType(a), tupleType(c),
				literal(a, fieldsOf("t", 0, i)), literal(c, fieldsOf("t", i, j)))
		}
	}

	src, err := format.Source(b.Bytes())
	if err != nil {
		log.Fatalf("tuple: gen: format: %v", err)
	}
	if err := os.WriteFile("tuple_gen.go", src, 0o644); err != nil {
		log.Fatalf("tuple: gen: write: %v", err)
	}
}
