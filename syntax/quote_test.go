// Copyright 2026 The SimCL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import "testing"

func TestUnquote(t *testing.T) {
	for _, test := range []struct {
		raw, want string
	}{
		{`""`, ``},
		{`"hello"`, `hello`},
		{`"a\nb"`, "a\nb"},
		{`"a\tb"`, "a\tb"},
		{`"say \"hi\""`, `say "hi"`},
		{`"a\\b"`, `a\b`},
		// unknown escapes copy the escaped character through
		{`"a\qb"`, `aqb`},
		{`"\x"`, `x`},
		// unterminated literals decode the text before end of input
		{`"abc`, `abc`},
		{`"`, ``},
		{`"abc\`, `abc\`},
	} {
		if got := unquote(test.raw); got != test.want {
			t.Errorf("unquote(%s) = %q, want %q", test.raw, got, test.want)
		}
	}
}

func TestQuote(t *testing.T) {
	for _, test := range []struct {
		s, want string
	}{
		{``, `""`},
		{`hello`, `"hello"`},
		{"a\nb", `"a\nb"`},
		{"a\tb", `"a\tb"`},
		{`say "hi"`, `"say \"hi\""`},
		{`a\b`, `"a\\b"`},
	} {
		if got := Quote(test.s); got != test.want {
			t.Errorf("Quote(%q) = %s, want %s", test.s, got, test.want)
		}
	}
}

// Quoting then unquoting must be the identity for any string built
// from the representable characters.
func TestQuoteRoundTrip(t *testing.T) {
	for _, s := range []string{
		"",
		"plain",
		"tab\tnewline\nquote\"backslash\\",
		"\\n is not a newline",
		"ends with backslash\\",
	} {
		if got := unquote(Quote(s)); got != s {
			t.Errorf("unquote(Quote(%q)) = %q", s, got)
		}
	}
}
