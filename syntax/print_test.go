// Copyright 2026 The SimCL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"go.simcl.net/syntax"
)

func TestWriteSource(t *testing.T) {
	for _, test := range []struct {
		input, want string
	}{
		{`let x = 1`,
			"let x = 1;\n"},
		{`let s = "a\nb"`,
			"let s = \"a\\nb\";\n"},
		{`x = (1 + 2) * 3`,
			"x = (1 + 2) * 3;\n"},
		{`x = 1 + 2 * 3`, // redundant parens are not invented
			"x = 1 + 2 * 3;\n"},
		{`f(-x, y)`,
			"f(-x, y);\n"},
		{`-(a + b)`,
			"-(a + b);\n"},
		{`(a + b) - c`, // left operand of the same tier needs no parens
			"a + b - c;\n"},
		{`a - (b - c)`, // right operand of the same tier keeps them
			"a - (b - c);\n"},
		{`a = b = 3`,
			"a = b = 3;\n"},
		{`x = 1e`, // permissive lexemes round-trip as written
			"x = 1e;\n"},
		{"simulate { let t = 0\nwhile t < 10 { t = (t + 1) * 2 } }",
			"simulate {\n" +
				"    let t = 0;\n" +
				"    while t < 10 {\n" +
				"        t = (t + 1) * 2;\n" +
				"    }\n" +
				"}\n"},
		{`function step(x, v) { return x + v; }`,
			"function step(x, v) {\n" +
				"    return x + v;\n" +
				"}\n"},
	} {
		f, err := syntax.Parse("print.simcl", test.input)
		if err != nil {
			t.Errorf("parse `%s` failed: %v", test.input, err)
			continue
		}
		var buf bytes.Buffer
		if err := syntax.WriteSource(&buf, f); err != nil {
			t.Errorf("print `%s` failed: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, buf.String()); diff != "" {
			t.Errorf("print `%s` mismatch (-want +got):\n%s", test.input, diff)
		}
	}
}

// TestPrintRoundTrip checks the printer's contract: reparsing its
// output yields a tree structurally identical to the original.
func TestPrintRoundTrip(t *testing.T) {
	for _, src := range []string{
		"let x = 1",
		"let x = -1 + +2 * 3",
		"let x = (1 + 2) * (3 - 4) / 5 % 6",
		"a = b = c = 1",
		"x == y != z",
		"a < b <= c",
		"f(g(x), \"two\\nlines\", 3.14)",
		"function fib(n) { return fib(n - 1) + fib(n - 2); }",
		"simulate {\n let t = 0\n while t < 10 {\n t = t + 0.01\n }\n}",
		"let e = 1e", // permissive number lexeme
	} {
		f1, err := syntax.Parse("a.simcl", src)
		if err != nil {
			t.Fatalf("parse `%s` failed: %v", src, err)
		}
		var buf bytes.Buffer
		if err := syntax.WriteSource(&buf, f1); err != nil {
			t.Fatalf("print `%s` failed: %v", src, err)
		}
		f2, err := syntax.Parse("b.simcl", buf.Bytes())
		if err != nil {
			t.Fatalf("reparse of `%s` (printed as `%s`) failed: %v", src, buf.String(), err)
		}
		if diff := cmp.Diff(fileString(f1), fileString(f2)); diff != "" {
			t.Errorf("round trip of `%s` changed the tree (-orig +reparsed):\n%s", src, diff)
		}
	}
}

func TestWriteSourceExpr(t *testing.T) {
	e, err := syntax.ParseExpr("expr.simcl", "1 + f(x)")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := syntax.WriteSource(&buf, e); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "1 + f(x)\n"; got != want {
		t.Errorf("printed expression %q, want %q", got, want)
	}
}
