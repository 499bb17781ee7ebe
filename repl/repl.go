// Copyright 2026 The SimCL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repl provides a read/parse/print loop for SimCL.
//
// It supports readline-style command editing and interrupts through
// Control-C. Each chunk of input is parsed and resolved; on success
// the REPL prints the chunk back as normalized source, which makes
// the loop a convenient probe of how the front end reads a program.
// Whenever a chunk still has open braces or parentheses, the REPL
// keeps reading lines under a continuation prompt.
package repl

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"go.simcl.net/resolve"
	"go.simcl.net/syntax"
)

// REPL executes a read, parse, print loop.
//
// The isPredeclared predicate reports whether a name is predeclared
// by the host application (typically the numeric runtime); it may be
// nil.
func REPL(isPredeclared func(name string) bool) {
	rl, err := readline.New(">>> ")
	if err != nil {
		PrintError(err)
		return
	}
	defer rl.Close()
	for {
		if err := rep(rl, isPredeclared); err != nil {
			if err == readline.ErrInterrupt {
				fmt.Println(err)
				continue
			}
			break
		}
	}
	fmt.Println()
}

// rep reads, parses, and prints one compound statement.
// It returns an error (possibly readline.ErrInterrupt)
// only if readline failed. Syntax errors are printed.
func rep(rl *readline.Instance, isPredeclared func(name string) bool) error {
	eof := false

	rl.SetPrompt(">>> ")
	input := func() ([]byte, error) {
		line, err := rl.Readline()
		rl.SetPrompt("... ")
		if err != nil {
			if err == io.EOF {
				eof = true
			}
			return nil, err
		}
		return []byte(line + "\n"), nil
	}

	f, err := syntax.ParseCompoundStmt("<stdin>", input)
	if err != nil {
		if eof {
			return io.EOF
		}
		if err == readline.ErrInterrupt {
			return err
		}
		PrintError(err)
		return nil
	}

	for _, skip := range f.Skipped {
		fmt.Fprintln(os.Stderr, skip)
	}

	if err := resolve.File(f, isPredeclared, nil); err != nil {
		PrintError(err)
		// fall through: an unresolved program still has a tree to show
	}

	for _, stmt := range f.Stmts {
		if err := syntax.WriteSource(os.Stdout, stmt); err != nil {
			return err
		}
	}
	return nil
}

// PrintError prints the error to stderr, one line per resolver error
// if it is an ErrorList.
func PrintError(err error) {
	if errs, ok := err.(resolve.ErrorList); ok {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
}
