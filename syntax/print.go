// Copyright 2026 The SimCL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// Printing of syntax trees as SimCL source text.

import (
	"bytes"
	"fmt"
	"io"
)

// WriteSource writes n to w as formatted SimCL source text.
// Reparsing the output yields a tree structurally identical to n,
// so the printer can serve as a normalizer for the front end.
func WriteSource(w io.Writer, n Node) error {
	var p printer
	switch n := n.(type) {
	case *File:
		p.stmts(n.Stmts)
	case Stmt:
		p.stmt(n)
	case Expr:
		p.expr(n, 0)
		p.buf.WriteByte('\n')
	default:
		return fmt.Errorf("cannot print %T as source", n)
	}
	_, err := w.Write(p.buf.Bytes())
	return err
}

// Operator tiers, loosest to tightest: assignment 0, equality 1,
// relational 2, additive 3, multiplicative 4, unary 5, primary 6.
// An expression is parenthesized when its own tier binds more loosely
// than its context requires. binaryPrec (parse.go) supplies tiers 1-4.
const (
	assignPrec  = 0
	unaryPrec   = 5
	primaryPrec = 6
)

type printer struct {
	buf    bytes.Buffer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(&p.buf, format, args...)
}

func (p *printer) stmts(stmts []Stmt) {
	for _, stmt := range stmts {
		p.stmt(stmt)
	}
}

func (p *printer) stmt(stmt Stmt) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
	}
	switch stmt := stmt.(type) {
	case *LetStmt:
		p.printf("let %s = ", stmt.Name.Name)
		p.expr(stmt.Init, assignPrec)
		p.buf.WriteString(";\n")

	case *FunctionStmt:
		p.printf("function %s(", stmt.Name.Name)
		for i, param := range stmt.Params {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.buf.WriteString(param.Name)
		}
		p.buf.WriteString(") ")
		p.block(stmt.Body)

	case *SimulateStmt:
		p.buf.WriteString("simulate ")
		p.block(stmt.Body)

	case *WhileStmt:
		p.buf.WriteString("while ")
		p.expr(stmt.Cond, assignPrec)
		p.buf.WriteString(" ")
		p.block(stmt.Body)

	case *ReturnStmt:
		p.buf.WriteString("return ")
		p.expr(stmt.Result, assignPrec)
		p.buf.WriteString(";\n")

	case *ExprStmt:
		p.expr(stmt.X, assignPrec)
		p.buf.WriteString(";\n")

	case *BlockStmt:
		p.block(stmt)

	default:
		p.printf("<%T>\n", stmt)
	}
}

func (p *printer) block(b *BlockStmt) {
	p.buf.WriteString("{\n")
	p.indent++
	p.stmts(b.Stmts)
	p.indent--
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
	}
	p.buf.WriteString("}\n")
}

func (p *printer) expr(e Expr, context int8) {
	switch e := e.(type) {
	case *Ident:
		p.buf.WriteString(e.Name)

	case *Literal:
		if e.Token == STRING {
			p.buf.WriteString(Quote(e.Value.(string)))
		} else if e.Raw != "" {
			p.buf.WriteString(e.Raw)
		} else {
			p.printf("%v", e.Value)
		}

	case *UnaryExpr:
		p.buf.WriteString(e.Op.String())
		p.expr(e.X, unaryPrec)

	case *BinaryExpr:
		prec := binaryPrec[e.Op] // 0 for EQ (assignment)
		if prec < context {
			p.buf.WriteByte('(')
		}
		if e.Op == EQ {
			// right-associative; LHS is an identifier
			p.expr(e.X, primaryPrec)
			p.buf.WriteString(" = ")
			p.expr(e.Y, assignPrec)
		} else {
			p.expr(e.X, prec)
			p.printf(" %s ", e.Op)
			p.expr(e.Y, prec+1)
		}
		if prec < context {
			p.buf.WriteByte(')')
		}

	case *CallExpr:
		p.expr(e.Fn, primaryPrec)
		p.buf.WriteByte('(')
		for i, arg := range e.Args {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.expr(arg, assignPrec)
		}
		p.buf.WriteByte(')')

	default:
		p.printf("<%T>", e)
	}
}
