// Copyright 2026 The SimCL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package syntax provides a SimCL parser and abstract syntax tree.
package syntax

// A Node is a node in a SimCL syntax tree.
type Node interface {
	// Span returns the start and end position of the node.
	Span() (start, end Position)
}

// Start returns the start position of the node.
func Start(n Node) Position {
	start, _ := n.Span()
	return start
}

// End returns the end position of the node.
func End(n Node) Position {
	_, end := n.Span()
	return end
}

// A File represents a SimCL program: the statements of one source file.
type File struct {
	Path  string
	Stmts []Stmt

	// Skipped records tokens the parser dropped while resynchronizing
	// at statement level. They are diagnostics, not part of the tree.
	Skipped []Error
}

func (x *File) Span() (start, end Position) {
	if len(x.Stmts) == 0 {
		return
	}
	start, _ = x.Stmts[0].Span()
	_, end = x.Stmts[len(x.Stmts)-1].Span()
	return start, end
}

// A Stmt is a SimCL statement.
type Stmt interface {
	Node
	stmt()
}

func (*BlockStmt) stmt()    {}
func (*ExprStmt) stmt()     {}
func (*FunctionStmt) stmt() {}
func (*LetStmt) stmt()      {}
func (*ReturnStmt) stmt()   {}
func (*SimulateStmt) stmt() {}
func (*WhileStmt) stmt()    {}

// A BlockStmt is a brace-delimited list of statements: { Stmts }.
// A block introduces a lexical scope.
type BlockStmt struct {
	Lbrace Position
	Stmts  []Stmt
	Rbrace Position
}

func (x *BlockStmt) Span() (start, end Position) {
	return x.Lbrace, x.Rbrace.add("}")
}

// A LetStmt binds a name: let Name = Init.
type LetStmt struct {
	Let  Position // position of "let"
	Name *Ident
	Init Expr
}

func (x *LetStmt) Span() (start, end Position) {
	_, end = x.Init.Span()
	return x.Let, end
}

// A FunctionStmt declares a function: function Name(Params) Body.
type FunctionStmt struct {
	Function Position // position of "function"
	Name     *Ident
	Lparen   Position
	Params   []*Ident
	Rparen   Position
	Body     *BlockStmt
}

func (x *FunctionStmt) Span() (start, end Position) {
	_, end = x.Body.Span()
	return x.Function, end
}

// A ReturnStmt returns a value from a function: return Result.
type ReturnStmt struct {
	Return Position // position of "return"
	Result Expr
}

func (x *ReturnStmt) Span() (start, end Position) {
	_, end = x.Result.Span()
	return x.Return, end
}

// A WhileStmt is a loop: while Cond Body.
type WhileStmt struct {
	While Position // position of "while"
	Cond  Expr
	Body  *BlockStmt
}

func (x *WhileStmt) Span() (start, end Position) {
	_, end = x.Body.Span()
	return x.While, end
}

// A SimulateStmt marks a simulation region: simulate Body.
// The front end treats it as an annotated block; its execution
// semantics belong to later compiler stages.
type SimulateStmt struct {
	Simulate Position // position of "simulate"
	Body     *BlockStmt
}

func (x *SimulateStmt) Span() (start, end Position) {
	_, end = x.Body.Span()
	return x.Simulate, end
}

// An ExprStmt is an expression evaluated for side effects.
type ExprStmt struct {
	X Expr
}

func (x *ExprStmt) Span() (start, end Position) {
	return x.X.Span()
}

// An Expr is a SimCL expression.
type Expr interface {
	Node
	expr()
}

func (*BinaryExpr) expr() {}
func (*CallExpr) expr()   {}
func (*Ident) expr()      {}
func (*Literal) expr()    {}
func (*UnaryExpr) expr()  {}

// An Ident represents an identifier.
type Ident struct {
	NamePos Position
	Name    string

	Binding *Binding // set by resolver
}

// Span's end is computed from the retained name text; for identifiers
// whose lexeme exceeded the scanner's bound, it falls short of the
// consumed input. Start is exact and is what diagnostics use.
func (x *Ident) Span() (start, end Position) {
	return x.NamePos, x.NamePos.add(x.Name)
}

// A Literal represents a literal number or string.
type Literal struct {
	Token    Token // = NUMBER | STRING
	TokenPos Position
	Raw      string      // uninterpreted text
	Value    interface{} // = float64 | string
}

// Span's end is computed from Raw, which the scanner truncates for
// pathological tokens; see Ident.Span.
func (x *Literal) Span() (start, end Position) {
	return x.TokenPos, x.TokenPos.add(x.Raw)
}

// A CallExpr represents a function call: Fn(Args).
// The grammar permits only an identifier as the callee.
type CallExpr struct {
	Fn     Expr
	Lparen Position
	Args   []Expr
	Rparen Position
}

func (x *CallExpr) Span() (start, end Position) {
	start, _ = x.Fn.Span()
	return start, x.Rparen.add(")")
}

// A UnaryExpr represents a unary expression: Op X.
type UnaryExpr struct {
	OpPos Position
	Op    Token // = PLUS | MINUS
	X     Expr
}

func (x *UnaryExpr) Span() (start, end Position) {
	_, end = x.X.Span()
	return x.OpPos, end
}

// A BinaryExpr represents a binary expression: X Op Y.
//
// Assignment is an expression in SimCL: Op may be EQ, in which case X
// is guaranteed by the parser to be an *Ident.
type BinaryExpr struct {
	X     Expr
	OpPos Position
	Op    Token
	Y     Expr
}

func (x *BinaryExpr) Span() (start, end Position) {
	start, _ = x.X.Span()
	_, end = x.Y.Span()
	return start, end
}
