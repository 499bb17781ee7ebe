// Copyright 2026 The SimCL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// This file defines resolver data types referenced by the syntax tree.
// We cannot guarantee API stability for these types
// as they are closely tied to the implementation.

// A Binding ties together all identifiers that denote the same symbol.
// The resolver computes a binding for every Ident. Bindings outlive the
// resolution pass, so later compiler stages need not rebuild scopes.
type Binding struct {
	Scope Scope
	Type  Type

	// Index records the order of declaration within the symbol's
	// scope. It is zero if Scope is Predeclared, Universal, or
	// Undefined.
	Index int

	First *Ident // the identifier at the declaration site
}

// The Scope of Binding indicates what kind of scope it has.
type Scope uint8

const (
	UndefinedScope   Scope = iota // name is not defined
	LocalScope                    // name is declared within a block or function
	GlobalScope                   // name is declared at top level
	PredeclaredScope              // name is predeclared for this program (e.g. dt)
	UniversalScope                // name is universal (e.g. print)
)

var scopeNames = [...]string{
	UndefinedScope:   "undefined",
	LocalScope:       "local",
	GlobalScope:      "global",
	PredeclaredScope: "predeclared",
	UniversalScope:   "universal",
}

func (scope Scope) String() string { return scopeNames[scope] }

// A Type is a symbol's type tag. The front end performs no type
// inference yet: everything except a function declaration is Unknown.
// The remaining tags correspond to the language's type keywords and
// are reserved for the type checker.
type Type uint8

const (
	TypeUnknown Type = iota
	TypeInt
	TypeFloat
	TypeDouble
	TypeVector
	TypeMatrix
	TypeFunction
	TypeVoid
)

var typeNames = [...]string{
	TypeUnknown:  "unknown",
	TypeInt:      "int",
	TypeFloat:    "float",
	TypeDouble:   "double",
	TypeVector:   "vector",
	TypeMatrix:   "matrix",
	TypeFunction: "function",
	TypeVoid:     "void",
}

func (t Type) String() string { return typeNames[t] }
