// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build ignore

// gen.go emits compose_gen.go, the per-arity compose constructor family, for
// g arities 1..maxG and f arities 0..maxF in all three calling disciplines.
// Run via go generate or directly with go run gen.go.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

const (
	maxG = 3
	maxF = 3
)

// vars returns n type-parameter names with the given prefix: "D1, D2, ...".
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
		return "tuple.T0"
	}
	return fmt.Sprintf("tuple.T%d[%s]", len(elems), strings.Join(elems, ", "))
}

type discipline struct {
	kind  string // constructor name prefix
	iface string // operand interface
	ret   string // result type name
	ptr   bool   // result returned by pointer
	doc   string // discipline adjective for the doc comment
}

var disciplines = []discipline{
	{kind: "Compose", iface: "Func", ret: "Composition", doc: "pure-repeatable"},
	{kind: "ComposeMut", iface: "FuncMut", ret: "MutComposition", ptr: true, doc: "mutable-repeatable"},
	{kind: "ComposeOnce", iface: "FuncOnce", ret: "OnceComposition", ptr: true, doc: "consuming"},
}

func main() {
	var b bytes.Buffer

	b.WriteString("// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.\n")
	b.WriteString("// Use of this source code is governed by a MIT-style\n")
	b.WriteString("// license that can be found in the LICENSE file.\n\n")
	b.WriteString("// Code generated by gen.go; DO NOT EDIT.\n\n")
	b.WriteString("package curry\n\n")
	b.WriteString("import (\n\t\"code.hybscloud.com/curry/tuple\"\n)\n\n")

	for n := 1; n <= maxG; n++ {
		for m := 0; m <= maxF; m++ {
			d := vars("D", n-1)
			a := vars("A", m)
			rest := append(append([]string{}, d...), a...)
			params := strings.Join(append(append([]string{"H"}, rest...), "R"), ", ")

			xg := tupleType(append([]string{"H"}, d...))
			l := tupleType(d)
			xf := tupleType(a)
			x := tupleType(rest)

			split := fmt.Sprintf("tuple.Split%dx%d", n-1, m)
			if len(rest) > 0 {
				split += fmt.Sprintf("[%s]", strings.Join(rest, ", "))
			}
			prepend := fmt.Sprintf("tuple.Concat1x%d[%s]", n-1,
				strings.Join(append([]string{"H"}, d...), ", "))

			comp := fmt.Sprintf("[%s, %s, %s, %s, H, R]", x, l, xf, xg)
			arglist := fmt.Sprintf("(%s)", strings.Join(rest, ", "))

			for _, disc := range disciplines {
				name := fmt.Sprintf("%s%dx%d", disc.kind, n, m)
				ret := disc.ret + comp
				lit := ret
				if disc.ptr {
					ret = "*" + ret
					lit = "&" + lit
				}
				fmt.Fprintf(&b, "// %s composes g (arity %d) with f (arity %d) into a %s\n",
					name, n, m, disc.doc)
				fmt.Fprintf(&b, "// composition whose argument list is %s and whose result is R.\n", arglist)
				fmt.Fprintf(&b, "func %s[%s any](g %s[%s, R], f %s[%s, H]) %s {\n",
					name, params, disc.iface, xg, disc.iface, xf, ret)
				fmt.Fprintf(&b, "\treturn %s{\n", lit)
				b.WriteString("\t\tg:       g,\n\t\tf:       f,\n")
				fmt.Fprintf(&b, "\t\tsplit:   %s,\n\t\tprepend: %s,\n\t}\n}\n\n", split, prepend)
			}
		}
	}

	src, err := format.Source(b.Bytes())
	if err != nil {
		log.Fatalf("curry: gen: format: %v", err)
	}
	if err := os.WriteFile("compose_gen.go", src, 0o644); err != nil {
		log.Fatalf("curry: gen: write: %v", err)
	}
}
