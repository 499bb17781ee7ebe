// Copyright 2026 The SimCL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// A scanner for SimCL source text.
//
// The scanner is a pull-based tokenizer: the parser asks for one token
// at a time, and only the current token is ever materialized. It never
// fails; lexical anomalies (unterminated strings and comments,
// unrecognized characters, malformed exponents) produce a best-effort
// token and are left for the parser to reject, or not.

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// A Token represents a SimCL lexical token.
type Token int8

const (
	ILLEGAL Token = iota
	EOF

	IDENT  // x
	NUMBER // 1.5e-3
	STRING // "foo"

	// Punctuation
	LBRACE // {
	RBRACE // }
	LPAREN // (
	RPAREN // )
	COMMA  // ,
	SEMI   // ;

	// Operators
	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	PERCENT // %
	EQ      // =
	EQL     // ==
	NEQ     // !=
	LT      // <
	GT      // >
	LE      // <=
	GE      // >=

	// Keywords
	LET
	FUNCTION
	SIMULATE
	RETURN
	WHILE
	INT
	FLOAT
	DOUBLE
	VECTOR
	MATRIX

	maxToken
)

func (tok Token) String() string { return tokenNames[tok] }

var tokenNames = [...]string{
	ILLEGAL:  "illegal token",
	EOF:      "end of file",
	IDENT:    "identifier",
	NUMBER:   "number",
	STRING:   "string literal",
	LBRACE:   "{",
	RBRACE:   "}",
	LPAREN:   "(",
	RPAREN:   ")",
	COMMA:    ",",
	SEMI:     ";",
	PLUS:     "+",
	MINUS:    "-",
	STAR:     "*",
	SLASH:    "/",
	PERCENT:  "%",
	EQ:       "=",
	EQL:      "==",
	NEQ:      "!=",
	LT:       "<",
	GT:       ">",
	LE:       "<=",
	GE:       ">=",
	LET:      "let",
	FUNCTION: "function",
	SIMULATE: "simulate",
	RETURN:   "return",
	WHILE:    "while",
	INT:      "int",
	FLOAT:    "float",
	DOUBLE:   "double",
	VECTOR:   "vector",
	MATRIX:   "matrix",
}

var keywordToken = map[string]Token{
	"let":      LET,
	"function": FUNCTION,
	"simulate": SIMULATE,
	"return":   RETURN,
	"while":    WHILE,
	"int":      INT,
	"float":    FLOAT,
	"double":   DOUBLE,
	"vector":   VECTOR,
	"matrix":   MATRIX,
}

// maxLexeme bounds the text retained for a single token. Longer tokens
// are consumed in full but their text is silently truncated; callers
// must not assume full fidelity for pathological inputs.
const maxLexeme = 255

// A Position describes the location of a rune of input.
type Position struct {
	file *string // filename (indirect for compactness)
	Line int32   // 1-based line number; 0 if unknown
	Col  int32   // 1-based column (byte) number; 0 if unknown
}

// MakePosition returns position with the specified components.
func MakePosition(file *string, line, col int32) Position {
	return Position{file, line, col}
}

// IsValid reports whether the position is valid.
func (p Position) IsValid() bool { return p.file != nil }

// Filename returns the name of the file containing this position.
func (p Position) Filename() string {
	if p.file != nil {
		return *p.file
	}
	return "<invalid>"
}

func (p Position) String() string {
	file := p.Filename()
	if p.Line > 0 {
		if p.Col > 0 {
			return fmt.Sprintf("%s:%d:%d", file, p.Line, p.Col)
		}
		return fmt.Sprintf("%s:%d", file, p.Line)
	}
	return file
}

// add returns the position at the end of s, assuming it starts at p.
func (p Position) add(s string) Position {
	if n := strings.Count(s, "\n"); n > 0 {
		p.Line += int32(n)
		s = s[strings.LastIndex(s, "\n")+1:]
		p.Col = 1
	}
	p.Col += int32(len(s))
	return p
}

// An Error describes the failure to process SimCL source text.
type Error struct {
	Pos Position
	Msg string
}

func (e Error) Error() string { return e.Pos.String() + ": " + e.Msg }

// tokenValue records the position and the decoded value of the current token.
type tokenValue struct {
	raw    string   // lexeme, truncated at maxLexeme
	num    float64  // decoded NUMBER
	string string   // decoded STRING
	pos    Position // start position of token
}

type scanner struct {
	complete []byte   // entire input
	rest     []byte   // rest of input
	pos      Position // position of next byte in rest
}

func newScanner(filename string, src interface{}) (*scanner, error) {
	data, err := readSource(filename, src)
	if err != nil {
		return nil, err
	}
	return &scanner{
		complete: data,
		rest:     data,
		pos:      Position{file: &filename, Line: 1, Col: 1},
	}, nil
}

// readSource coerces src (string, []byte, io.Reader, or nil) to bytes.
// If src is nil, the file named by filename is read.
func readSource(filename string, src interface{}) ([]byte, error) {
	switch src := src.(type) {
	case string:
		return []byte(src), nil
	case []byte:
		return src, nil
	case io.Reader:
		return io.ReadAll(src)
	case nil:
		return os.ReadFile(filename)
	default:
		return nil, fmt.Errorf("invalid source: %T", src)
	}
}

// peek returns the next byte of input without consuming it, or 0 at EOF.
func (sc *scanner) peek() byte {
	if len(sc.rest) == 0 {
		return 0
	}
	return sc.rest[0]
}

// peek2 returns the byte after next, or 0.
func (sc *scanner) peek2() byte {
	if len(sc.rest) < 2 {
		return 0
	}
	return sc.rest[1]
}

// read consumes and returns the next byte of input.
func (sc *scanner) read() byte {
	c := sc.rest[0]
	sc.rest = sc.rest[1:]
	if c == '\n' {
		sc.pos.Line++
		sc.pos.Col = 1
	} else {
		sc.pos.Col++
	}
	return c
}

func (sc *scanner) eof() bool { return len(sc.rest) == 0 }

// skipSpace consumes whitespace and comments. Line comments run to end
// of line; block comments run to the closing */ or, if unterminated,
// silently to end of input.
func (sc *scanner) skipSpace() {
	for !sc.eof() {
		switch c := sc.peek(); {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			sc.read()
		case c == '/' && sc.peek2() == '/':
			for !sc.eof() && sc.peek() != '\n' {
				sc.read()
			}
		case c == '/' && sc.peek2() == '*':
			sc.read()
			sc.read()
			for !sc.eof() {
				if sc.peek() == '*' && sc.peek2() == '/' {
					sc.read()
					sc.read()
					break
				}
				sc.read()
			}
		default:
			return
		}
	}
}

func isIdentStart(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func isIdent(c byte) bool { return isIdentStart(c) || isDigit(c) }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// nextToken advances the scanner and fills in *val,
// returning the token's classification.
func (sc *scanner) nextToken(val *tokenValue) Token {
	sc.skipSpace()

	val.pos = sc.pos
	if sc.eof() {
		val.raw = ""
		return EOF
	}

	c := sc.peek()

	// identifier or keyword
	if isIdentStart(c) {
		return sc.scanIdent(val)
	}

	// number: a digit, or a dot followed by a digit
	if isDigit(c) || c == '.' && isDigit(sc.peek2()) {
		return sc.scanNumber(val)
	}

	// string
	if c == '"' {
		return sc.scanString(val)
	}

	// two-character operators, matched greedily
	if sc.peek2() == '=' {
		switch c {
		case '=', '!', '<', '>':
			sc.read()
			sc.read()
			var tok Token
			switch c {
			case '=':
				tok = EQL
			case '!':
				tok = NEQ
			case '<':
				tok = LE
			case '>':
				tok = GE
			}
			val.raw = tokenNames[tok]
			return tok
		}
	}

	sc.read()
	val.raw = string(c)
	switch c {
	case '=':
		return EQ
	case '<':
		return LT
	case '>':
		return GT
	case '{':
		return LBRACE
	case '}':
		return RBRACE
	case '(':
		return LPAREN
	case ')':
		return RPAREN
	case ',':
		return COMMA
	case ';':
		return SEMI
	case '+':
		return PLUS
	case '-':
		return MINUS
	case '*':
		return STAR
	case '/':
		return SLASH
	case '%':
		return PERCENT
	}
	// Anything else, including a bare '!', is a one-character
	// unrecognized token, never a scan failure.
	return ILLEGAL
}

func (sc *scanner) scanIdent(val *tokenValue) Token {
	start := sc.offset()
	for !sc.eof() && isIdent(sc.peek()) {
		sc.read()
	}
	val.raw = sc.lexeme(start)
	if tok, ok := keywordToken[val.raw]; ok {
		return tok
	}
	return IDENT
}

// scanNumber accepts digits, an optional fraction, and an optional
// exponent with an optional sign. Nothing is validated beyond that:
// "1e" and "1.e+" are accepted as numbers, matching the permissive
// grammar of the language.
func (sc *scanner) scanNumber(val *tokenValue) Token {
	start := sc.offset()
	for !sc.eof() && isDigit(sc.peek()) {
		sc.read()
	}
	if sc.peek() == '.' {
		sc.read()
		for !sc.eof() && isDigit(sc.peek()) {
			sc.read()
		}
	}
	if c := sc.peek(); c == 'e' || c == 'E' {
		sc.read()
		if c := sc.peek(); c == '+' || c == '-' {
			sc.read()
		}
		for !sc.eof() && isDigit(sc.peek()) {
			sc.read()
		}
	}
	val.raw = sc.lexeme(start)
	val.num = numberValue(val.raw)
	return NUMBER
}

// numberValue decodes a scanned number lexeme. A lexeme whose exponent
// marker has no digits decodes as its mantissa alone.
func numberValue(raw string) float64 {
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if i := strings.IndexAny(raw, "eE"); i >= 0 {
		if f, err := strconv.ParseFloat(raw[:i], 64); err == nil {
			return f
		}
	}
	return 0
}

// scanString consumes a double-quoted string to its closing quote or,
// if unterminated, to end of input without error.
func (sc *scanner) scanString(val *tokenValue) Token {
	start := sc.offset()
	sc.read() // opening '"'
	for !sc.eof() {
		c := sc.read()
		if c == '"' {
			break
		}
		if c == '\\' && !sc.eof() {
			sc.read()
		}
	}
	val.raw = sc.lexeme(start)
	val.string = unquote(val.raw)
	return STRING
}

// offset returns the scanner's position as an index into the input.
func (sc *scanner) offset() int { return len(sc.complete) - len(sc.rest) }

// lexeme returns the token text from start to the current position,
// truncated at maxLexeme.
func (sc *scanner) lexeme(start int) string {
	text := sc.complete[start:sc.offset()]
	if len(text) > maxLexeme {
		text = text[:maxLexeme]
	}
	return string(text)
}
