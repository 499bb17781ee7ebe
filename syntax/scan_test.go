// Copyright 2026 The SimCL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// scan tokenizes src and renders the token stream as one line.
// Identifiers and keywords print as themselves, numbers print their
// decoded value, strings print re-quoted, and unrecognized characters
// print as illegal(c).
func scan(src interface{}) (tokens string, err error) {
	sc, err := newScanner("foo.simcl", src)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	var val tokenValue
	for {
		tok := sc.nextToken(&val)

		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		switch tok {
		case EOF:
			buf.WriteString("EOF")
		case IDENT:
			buf.WriteString(val.raw)
		case NUMBER:
			fmt.Fprintf(&buf, "%v", val.num)
		case STRING:
			buf.WriteString(Quote(val.string))
		case ILLEGAL:
			fmt.Fprintf(&buf, "illegal(%s)", val.raw)
		default:
			buf.WriteString(tok.String())
		}
		if tok == EOF {
			break
		}
	}
	return buf.String(), nil
}

func TestScanner(t *testing.T) {
	for _, test := range []struct {
		input, want string
	}{
		{``, "EOF"},
		{`123`, "123 EOF"},
		{`let x = 1;`, "let x = 1 ; EOF"},
		{`x == y`, "x == y EOF"},
		{`a <= b >= c != d`, "a <= b >= c != d EOF"},
		{`x=y`, "x = y EOF"},
		{`x < = y`, "x < = y EOF"},
		{`{}(),;`, "{ } ( ) , ; EOF"},
		{`+ - * / %`, "+ - * / % EOF"},
		{`function fib(n) { return n; }`, "function fib ( n ) { return n ; } EOF"},
		{`simulate while int float double vector matrix`,
			"simulate while int float double vector matrix EOF"},
		// keyword prefixes are plain identifiers
		{`letter lets returned`, "letter lets returned EOF"},
		{`_x x_1 __`, "_x x_1 __ EOF"},

		// numbers, including scientific notation
		{`0`, "0 EOF"},
		{`3.14`, "3.14 EOF"},
		{`1e10`, "1e+10 EOF"},
		{`1.5E-3`, "0.0015 EOF"},
		{`.5`, "0.5 EOF"},
		{`1e+1`, "10 EOF"},
		{`1e-1`, "0.1 EOF"},
		{`12.34e2`, "1234 EOF"},
		{`1.`, "1 EOF"},
		// a trailing exponent marker is accepted, not rejected
		{`1e`, "1 EOF"},
		{`1E-`, "1 EOF"},
		// a bare dot is not a number
		{`. 5`, "illegal(.) 5 EOF"},
		{`1..2`, "1 0.2 EOF"},

		// strings
		{`"hello"`, `"hello" EOF`},
		{`"line1\nline2"`, `"line1\nline2" EOF`},
		{`"tab\there"`, `"tab\there" EOF`},
		{`"quote\"here"`, `"quote\"here" EOF`},
		{`"back\\slash"`, `"back\\slash" EOF`},
		// unknown escapes copy the escaped character through
		{`"a\qb"`, `"aqb" EOF`},
		// unterminated strings consume to end of input without error
		{`"unterminated`, `"unterminated" EOF`},
		{`"" x`, `"" x EOF`},

		// comments
		{"// comment\nx", "x EOF"},
		{"x // trailing", "x EOF"},
		{"/* block */ x", "x EOF"},
		{"/* a\n b */ x", "x EOF"},
		{"a/*b*/c", "a c EOF"},
		// an unterminated block comment is trailing whitespace
		{"/* unterminated", "EOF"},
		{"x /*", "x EOF"},

		// unrecognized characters are single illegal tokens, never failures
		{`!`, "illegal(!) EOF"},
		{`x ! y`, "x illegal(!) y EOF"},
		{`!=`, "!= EOF"},
		{`@ #`, "illegal(@) illegal(#) EOF"},
	} {
		got, err := scan(test.input)
		if err != nil {
			got = err.Error()
		}
		if got != test.want {
			t.Errorf("scan `%s` = [%s], want [%s]", test.input, got, test.want)
		}
	}
}

// TestScannerLines checks that token positions track newlines inside
// source, comments, and string literals.
func TestScannerLines(t *testing.T) {
	src := "let x = 1\nlet y = \"a\nb\"\n/* c\nd */ z"
	sc, err := newScanner("foo.simcl", src)
	if err != nil {
		t.Fatal(err)
	}
	type at struct {
		raw  string
		line int32
	}
	var got []at
	var val tokenValue
	for sc.nextToken(&val) != EOF {
		got = append(got, at{val.raw, val.pos.Line})
	}
	want := []at{
		{"let", 1}, {"x", 1}, {"=", 1}, {"1", 1},
		{"let", 2}, {"y", 2}, {"=", 2}, {"\"a\nb\"", 2},
		{"z", 5},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q at line %d, want %q at line %d",
				i, got[i].raw, got[i].line, want[i].raw, want[i].line)
		}
	}
}

// TestLexemeTruncation checks that a pathologically long token is
// consumed in full but its retained text is bounded.
func TestLexemeTruncation(t *testing.T) {
	long := strings.Repeat("a", 3*maxLexeme)
	sc, err := newScanner("foo.simcl", long+" b")
	if err != nil {
		t.Fatal(err)
	}
	var val tokenValue
	if tok := sc.nextToken(&val); tok != IDENT {
		t.Fatalf("got %s, want identifier", tok)
	}
	if len(val.raw) != maxLexeme {
		t.Errorf("len(raw) = %d, want %d", len(val.raw), maxLexeme)
	}
	if tok := sc.nextToken(&val); tok != IDENT || val.raw != "b" {
		t.Errorf("token after truncated identifier = %s %q, want identifier b", tok, val.raw)
	}
}

// TestTruncatedSpan checks that a node built from a truncated lexeme
// reports an end position bounded by the retained text, not by the
// input the scanner consumed.
func TestTruncatedSpan(t *testing.T) {
	long := strings.Repeat("a", 3*maxLexeme)
	f, err := Parse("foo.simcl", "let "+long+" = 1")
	if err != nil {
		t.Fatal(err)
	}
	name := f.Stmts[0].(*LetStmt).Name
	if len(name.Name) != maxLexeme {
		t.Fatalf("len(Name) = %d, want %d", len(name.Name), maxLexeme)
	}
	_, end := name.Span()
	if want := int32(5 + maxLexeme); end.Col != want {
		t.Errorf("end column = %d, want %d", end.Col, want)
	}
}

// TestStringValue checks that escape decoding yields real characters:
// the two source characters \ and n become one newline.
func TestStringValue(t *testing.T) {
	sc, err := newScanner("foo.simcl", `"line1\nline2"`)
	if err != nil {
		t.Fatal(err)
	}
	var val tokenValue
	if tok := sc.nextToken(&val); tok != STRING {
		t.Fatalf("got %s, want string", tok)
	}
	if want := "line1\nline2"; val.string != want {
		t.Errorf("string value = %q, want %q", val.string, want)
	}
	if strings.Contains(val.string, `\n`) {
		t.Errorf("string value retains the source escape: %q", val.string)
	}
}

func BenchmarkScan(b *testing.B) {
	data, err := os.ReadFile("testdata/scan.simcl")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		sc, err := newScanner("scan.simcl", data)
		if err != nil {
			b.Fatal(err)
		}
		var val tokenValue
		for sc.nextToken(&val) != EOF {
		}
	}
}
