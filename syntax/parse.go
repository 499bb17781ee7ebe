// Copyright 2026 The SimCL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// A recursive-descent parser for SimCL, one precedence tier per
// grammar level. It pulls tokens from the scanner on demand; no token
// stream is ever materialized.

import "fmt"

// Parse parses the input data and returns the corresponding parse tree.
//
// If src != nil, Parse parses the source from src and the filename is
// only used when recording position information. The type of the
// argument for the src parameter must be string, []byte, or io.Reader.
// If src == nil, Parse parses the file specified by filename.
//
// A syntax error is returned as *value* of type Error; the process is
// never terminated on malformed input.
func Parse(filename string, src interface{}) (f *File, err error) {
	in, err := newScanner(filename, src)
	if err != nil {
		return nil, err
	}
	p := parser{in: in}
	defer p.recoverError(&err)
	p.nextToken() // prime the first token
	f = p.parseFile()
	f.Path = filename
	f.Skipped = p.skipped
	return f, nil
}

// ParseExpr parses a SimCL expression.
// A comma-separated list of expressions is parsed as a single call
// argument would be: it is an error.
// See Parse for explanation of parameters.
func ParseExpr(filename string, src interface{}) (expr Expr, err error) {
	in, err := newScanner(filename, src)
	if err != nil {
		return nil, err
	}
	p := parser{in: in}
	defer p.recoverError(&err)
	p.nextToken()
	expr = p.parseExpr()
	if p.tok == SEMI {
		p.nextToken()
	}
	if p.tok != EOF {
		p.errorf(p.tokval.pos, "got %s after expression, want end of file", p.tokDesc())
	}
	return expr, nil
}

// ParseCompoundStmt parses a single compound statement:
// a blank line, a simple statement, or a statement whose braces and
// parentheses have all been closed. It is used by the REPL, which
// calls readline for another line of input whenever delimiters remain
// open.
func ParseCompoundStmt(filename string, readline func() ([]byte, error)) (*File, error) {
	var buf []byte
	for {
		line, err := readline()
		if err != nil {
			return nil, err // EOF or interrupt; partial input is discarded
		}
		buf = append(buf, line...)
		if openDepth(filename, buf) <= 0 {
			break
		}
	}
	return Parse(filename, buf)
}

// openDepth counts the unclosed braces and parentheses in src, using
// the scanner so that comments and string literals do not confuse the
// count.
func openDepth(filename string, src []byte) int {
	sc, err := newScanner(filename, src)
	if err != nil {
		return 0
	}
	depth := 0
	var val tokenValue
	for {
		switch sc.nextToken(&val) {
		case LBRACE, LPAREN:
			depth++
		case RBRACE, RPAREN:
			depth--
		case EOF:
			return depth
		}
	}
}

type parser struct {
	in      *scanner
	tok     Token
	tokval  tokenValue
	skipped []Error
}

// nextToken advances to the next token.
func (p *parser) nextToken() {
	p.tok = p.in.nextToken(&p.tokval)
}

// errorf aborts the parse by panicking with an Error,
// which Parse converts to an ordinary error return.
func (p *parser) errorf(pos Position, format string, args ...interface{}) {
	panic(Error{pos, fmt.Sprintf(format, args...)})
}

func (p *parser) recoverError(err *error) {
	switch e := recover().(type) {
	case nil:
		// no panic
	case Error:
		*err = e
	default:
		panic(e)
	}
}

// tokDesc describes the current token for diagnostics,
// including the offending lexeme where the kind alone is ambiguous.
func (p *parser) tokDesc() string {
	switch p.tok {
	case ILLEGAL:
		return fmt.Sprintf("unexpected character %q", p.tokval.raw)
	case IDENT:
		return fmt.Sprintf("identifier %s", p.tokval.raw)
	case NUMBER, STRING:
		return fmt.Sprintf("%s %s", p.tok, p.tokval.raw)
	default:
		return p.tok.String()
	}
}

// consume checks that the current token is t, then advances past it.
func (p *parser) consume(t Token) Position {
	if p.tok != t {
		p.errorf(p.tokval.pos, "got %s, want %s", p.tokDesc(), t)
	}
	pos := p.tokval.pos
	p.nextToken()
	return pos
}

func (p *parser) parseFile() *File {
	var stmts []Stmt
	for p.tok != EOF {
		if stmt := p.parseStmt(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return &File{Stmts: stmts}
}

// parseStmt parses one statement. A token that cannot start any
// statement is not a hard error: the parser records a diagnostic,
// drops exactly that token, and returns nil so that the caller
// retries — guaranteeing forward progress on malformed input.
func (p *parser) parseStmt() Stmt {
	switch p.tok {
	case LET:
		return p.parseLetStmt()
	case FUNCTION:
		return p.parseFunctionStmt()
	case SIMULATE:
		return p.parseSimulateStmt()
	case RETURN:
		return p.parseReturnStmt()
	case WHILE:
		return p.parseWhileStmt()
	case NUMBER, STRING, IDENT, LPAREN, PLUS, MINUS:
		return p.parseExprStmt()
	}
	p.skipped = append(p.skipped, Error{
		Pos: p.tokval.pos,
		Msg: fmt.Sprintf("got %s at start of statement (skipped)", p.tokDesc()),
	})
	p.nextToken()
	return nil
}

// let := "let" IDENT "=" expression [";"]
func (p *parser) parseLetStmt() Stmt {
	letPos := p.consume(LET)
	name := p.parseIdent()
	p.consume(EQ)
	init := p.parseExpr()
	p.maybeConsume(SEMI)
	return &LetStmt{Let: letPos, Name: name, Init: init}
}

// function := "function" IDENT "(" [params] ")" block
func (p *parser) parseFunctionStmt() Stmt {
	fnPos := p.consume(FUNCTION)
	name := p.parseIdent()
	lparen := p.consume(LPAREN)
	var params []*Ident
	if p.tok != RPAREN {
		for {
			params = append(params, p.parseIdent())
			if p.tok != COMMA {
				break
			}
			p.nextToken()
		}
	}
	rparen := p.consume(RPAREN)
	body := p.parseBlock()
	return &FunctionStmt{
		Function: fnPos,
		Name:     name,
		Lparen:   lparen,
		Params:   params,
		Rparen:   rparen,
		Body:     body,
	}
}

// simulate := "simulate" block
func (p *parser) parseSimulateStmt() Stmt {
	simPos := p.consume(SIMULATE)
	return &SimulateStmt{Simulate: simPos, Body: p.parseBlock()}
}

// return := "return" expression [";"]
func (p *parser) parseReturnStmt() Stmt {
	retPos := p.consume(RETURN)
	result := p.parseExpr()
	p.maybeConsume(SEMI)
	return &ReturnStmt{Return: retPos, Result: result}
}

// while := "while" expression block
func (p *parser) parseWhileStmt() Stmt {
	whilePos := p.consume(WHILE)
	cond := p.parseExpr()
	body := p.parseBlock()
	return &WhileStmt{While: whilePos, Cond: cond, Body: body}
}

// expr-stmt := expression [";"]
func (p *parser) parseExprStmt() Stmt {
	x := p.parseExpr()
	p.maybeConsume(SEMI)
	return &ExprStmt{X: x}
}

// block := "{" { statement } "}"
func (p *parser) parseBlock() *BlockStmt {
	lbrace := p.consume(LBRACE)
	var stmts []Stmt
	for p.tok != RBRACE && p.tok != EOF {
		if stmt := p.parseStmt(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	rbrace := p.consume(RBRACE)
	return &BlockStmt{Lbrace: lbrace, Stmts: stmts, Rbrace: rbrace}
}

func (p *parser) parseIdent() *Ident {
	if p.tok != IDENT {
		p.errorf(p.tokval.pos, "got %s, want identifier", p.tokDesc())
	}
	id := &Ident{NamePos: p.tokval.pos, Name: p.tokval.raw}
	p.nextToken()
	return id
}

func (p *parser) maybeConsume(t Token) {
	if p.tok == t {
		p.nextToken()
	}
}

// binaryPrec records the binding strength of each left-associative
// binary operator tier; assignment (EQ) is handled separately because
// it is right-associative and restricted.
var binaryPrec = [maxToken]int8{
	EQL: 1, NEQ: 1,
	LT: 2, GT: 2, LE: 2, GE: 2,
	PLUS: 3, MINUS: 3,
	STAR: 4, SLASH: 4, PERCENT: 4,
}

// expression := assignment
func (p *parser) parseExpr() Expr { return p.parseAssign() }

// assignment := equality [ "=" assignment ]
//
// Assignment is right-associative and its target must be a bare
// identifier.
func (p *parser) parseAssign() Expr {
	x := p.parseBinary(1)
	if p.tok != EQ {
		return x
	}
	opPos := p.tokval.pos
	if _, ok := x.(*Ident); !ok {
		p.errorf(opPos, "invalid assignment target")
	}
	p.nextToken()
	y := p.parseAssign()
	return &BinaryExpr{X: x, OpPos: opPos, Op: EQ, Y: y}
}

// parseBinary parses one or more left-associative binary operations
// of precedence >= minprec, climbing to the next-tighter tier for
// operands.
func (p *parser) parseBinary(minprec int8) Expr {
	x := p.parseUnary()
	for {
		prec := binaryPrec[p.tok]
		if prec < minprec || prec == 0 {
			return x
		}
		op := p.tok
		opPos := p.tokval.pos
		p.nextToken()
		y := p.parseBinary(prec + 1)
		x = &BinaryExpr{X: x, OpPos: opPos, Op: op, Y: y}
	}
}

// unary := ("+" | "-") unary | primary
func (p *parser) parseUnary() Expr {
	if p.tok == PLUS || p.tok == MINUS {
		op := p.tok
		opPos := p.tokval.pos
		p.nextToken()
		return &UnaryExpr{OpPos: opPos, Op: op, X: p.parseUnary()}
	}
	return p.parsePrimary()
}

// primary := NUMBER | STRING
//          | IDENT [ "(" [args] ")" ]
//          | "(" expression ")"
func (p *parser) parsePrimary() Expr {
	switch p.tok {
	case NUMBER:
		lit := &Literal{
			Token:    NUMBER,
			TokenPos: p.tokval.pos,
			Raw:      p.tokval.raw,
			Value:    p.tokval.num,
		}
		p.nextToken()
		return lit

	case STRING:
		lit := &Literal{
			Token:    STRING,
			TokenPos: p.tokval.pos,
			Raw:      p.tokval.raw,
			Value:    p.tokval.string,
		}
		p.nextToken()
		return lit

	case IDENT:
		id := p.parseIdent()
		if p.tok == LPAREN {
			return p.parseCall(id)
		}
		return id

	case LPAREN:
		// A parenthesized expression yields the inner node;
		// grouping is not represented in the tree.
		p.nextToken()
		x := p.parseExpr()
		p.consume(RPAREN)
		return x
	}
	p.errorf(p.tokval.pos, "got %s, want expression", p.tokDesc())
	panic("unreachable")
}

// args := expression { "," expression }
func (p *parser) parseCall(fn *Ident) Expr {
	lparen := p.consume(LPAREN)
	var args []Expr
	if p.tok != RPAREN {
		for {
			args = append(args, p.parseExpr())
			if p.tok != COMMA {
				break
			}
			p.nextToken() // no trailing comma: ")" after "," is an error
		}
	}
	rparen := p.consume(RPAREN)
	return &CallExpr{Fn: fn, Lparen: lparen, Args: args, Rparen: rparen}
}
