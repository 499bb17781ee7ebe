// Copyright 2026 The SimCL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// SimCL string literals.

import "strings"

// unquote decodes the text of a string literal as scanned, including
// its leading quote and, if the literal was terminated, its trailing
// quote. The recognized escapes are \n, \t, \", and \\; any other
// escaped character is copied through literally.
//
// unquote cannot fail: an unterminated literal simply decodes to the
// text before end of input.
func unquote(raw string) string {
	raw = strings.TrimPrefix(raw, `"`)
	if strings.HasSuffix(raw, `"`) {
		raw = raw[:len(raw)-1]
	}
	if !strings.Contains(raw, `\`) {
		return raw
	}
	var buf strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			buf.WriteByte(c)
			continue
		}
		i++
		if i == len(raw) {
			// Truncation can leave a trailing backslash; keep it.
			buf.WriteByte('\\')
			break
		}
		switch raw[i] {
		case 'n':
			buf.WriteByte('\n')
		case 't':
			buf.WriteByte('\t')
		case '"':
			buf.WriteByte('"')
		case '\\':
			buf.WriteByte('\\')
		default:
			buf.WriteByte(raw[i])
		}
	}
	return buf.String()
}

// Quote renders s as a SimCL string literal.
// Quoting then scanning yields s again.
func Quote(s string) string {
	var buf strings.Builder
	buf.Grow(len(s) + 2)
	buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\n':
			buf.WriteString(`\n`)
		case '\t':
			buf.WriteString(`\t`)
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteByte('"')
	return buf.String()
}
