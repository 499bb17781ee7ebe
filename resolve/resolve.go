// Copyright 2026 The SimCL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resolve defines a name-resolution pass for SimCL programs.
//
// The resolver traverses a parsed program once, opening a scope for
// the program and for each block and function body, registering
// declarations, and annotating every identifier with its Binding.
// Scopes form a stack that mirrors lexical nesting exactly; the
// bindings themselves are recorded on the tree and outlive the pass.
//
// Declaration rules: a let binds in the current scope; a function
// binds its own name in the enclosing scope before its body scope
// opens, so recursive self-reference resolves; parameters bind in a
// scope of their own surrounding the body block. Shadowing of outer
// names and local re-declaration are both permitted without
// diagnosis; the newest declaration wins.
//
// A use of a name not declared in any enclosing scope falls back to
// the client-supplied predeclared and universal environments (the
// numeric runtime's names arrive that way); if those fail too, the
// resolver reports an undefined-identifier error. All errors in a
// program are collected and returned together as an ErrorList.
package resolve

import (
	"fmt"
	"log"

	"go.simcl.net/syntax"
)

// An Error describes the failure to resolve a name.
type Error struct {
	Pos syntax.Position
	Msg string
}

func (e Error) Error() string { return e.Pos.String() + ": " + e.Msg }

// An ErrorList is a non-empty list of resolver errors.
type ErrorList []Error

func (e ErrorList) Error() string { return e[0].Error() }

// File resolves the specified file.
//
// The isPredeclared and isUniversal predicates report whether a name
// is a pre-declared built-in of the host application or a universal
// built-in of the language; either may be nil.
func File(file *syntax.File, isPredeclared, isUniversal func(name string) bool) error {
	r := newResolver(isPredeclared, isUniversal)
	r.push() // program scope
	r.stmts(file.Stmts)
	r.pop()
	if len(r.errors) > 0 {
		return r.errors
	}
	return nil
}

// Expr resolves a single expression, as in the REPL.
// See File for explanation of parameters.
func Expr(expr syntax.Expr, isPredeclared, isUniversal func(name string) bool) error {
	r := newResolver(isPredeclared, isUniversal)
	r.push()
	r.expr(expr)
	r.pop()
	if len(r.errors) > 0 {
		return r.errors
	}
	return nil
}

func newResolver(isPredeclared, isUniversal func(name string) bool) *resolver {
	if isPredeclared == nil {
		isPredeclared = func(name string) bool { return false }
	}
	if isUniversal == nil {
		isUniversal = func(name string) bool { return false }
	}
	return &resolver{
		isPredeclared: isPredeclared,
		isUniversal:   isUniversal,
	}
}

type resolver struct {
	// env is the innermost scope; its parent chain reaches the
	// program scope. Scopes are pushed and popped in strict LIFO
	// order as the walk enters and leaves lexical nesting.
	env *scope

	isPredeclared, isUniversal func(name string) bool

	errors ErrorList
}

// A scope is one frame of the chained symbol table.
type scope struct {
	parent   *scope
	bindings map[string]*syntax.Binding
}

func (r *resolver) push() {
	r.env = &scope{parent: r.env, bindings: make(map[string]*syntax.Binding)}
}

func (r *resolver) pop() { r.env = r.env.parent }

func (r *resolver) errorf(pos syntax.Position, format string, args ...interface{}) {
	r.errors = append(r.errors, Error{pos, fmt.Sprintf(format, args...)})
}

// bind declares id in the current scope with the given type tag,
// shadowing any outer or earlier declaration of the same name.
func (r *resolver) bind(id *syntax.Ident, t syntax.Type) {
	kind := syntax.LocalScope
	if r.env.parent == nil {
		kind = syntax.GlobalScope
	}
	bind := &syntax.Binding{
		Scope: kind,
		Type:  t,
		Index: len(r.env.bindings),
		First: id,
	}
	r.env.bindings[id.Name] = bind
	id.Binding = bind
}

// use resolves id against the scope chain, then the predeclared and
// universal environments.
func (r *resolver) use(id *syntax.Ident) {
	for env := r.env; env != nil; env = env.parent {
		if bind, ok := env.bindings[id.Name]; ok {
			id.Binding = bind
			return
		}
	}
	if r.isPredeclared(id.Name) {
		id.Binding = &syntax.Binding{Scope: syntax.PredeclaredScope}
		return
	}
	if r.isUniversal(id.Name) {
		id.Binding = &syntax.Binding{Scope: syntax.UniversalScope}
		return
	}
	id.Binding = &syntax.Binding{Scope: syntax.UndefinedScope}
	r.errorf(id.NamePos, "undefined: %s", id.Name)
}

func (r *resolver) stmts(stmts []syntax.Stmt) {
	for _, stmt := range stmts {
		r.stmt(stmt)
	}
}

func (r *resolver) stmt(stmt syntax.Stmt) {
	switch stmt := stmt.(type) {
	case *syntax.BlockStmt:
		r.push()
		r.stmts(stmt.Stmts)
		r.pop()

	case *syntax.LetStmt:
		// The name is declared before the initializer is resolved,
		// so "let x = x" resolves x to its own binding.
		r.bind(stmt.Name, syntax.TypeUnknown)
		r.expr(stmt.Init)

	case *syntax.FunctionStmt:
		r.bind(stmt.Name, syntax.TypeFunction)
		r.push()
		for _, param := range stmt.Params {
			r.bind(param, syntax.TypeUnknown)
		}
		r.stmt(stmt.Body) // the body block opens its own scope
		r.pop()

	case *syntax.ReturnStmt:
		r.expr(stmt.Result)

	case *syntax.WhileStmt:
		r.expr(stmt.Cond)
		r.stmt(stmt.Body)

	case *syntax.SimulateStmt:
		r.stmt(stmt.Body)

	case *syntax.ExprStmt:
		r.expr(stmt.X)

	default:
		// Internal-consistency signal, not a user error.
		log.Printf("resolve: unexpected statement %T", stmt)
	}
}

func (r *resolver) expr(e syntax.Expr) {
	switch e := e.(type) {
	case *syntax.Ident:
		r.use(e)

	case *syntax.Literal:
		// nothing to do

	case *syntax.BinaryExpr:
		r.expr(e.X)
		r.expr(e.Y)

	case *syntax.UnaryExpr:
		r.expr(e.X)

	case *syntax.CallExpr:
		r.expr(e.Fn)
		for _, arg := range e.Args {
			r.expr(arg)
		}

	default:
		log.Printf("resolve: unexpected expression %T", e)
	}
}
