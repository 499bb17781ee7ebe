// Copyright 2026 The SimCL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The simcl command parses and analyzes a SimCL source file.
// With no arguments, it starts a read-parse-print loop (REPL)
// when standard input is a terminal, and otherwise reads a
// program from standard input.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"golang.org/x/term"

	"go.simcl.net/repl"
	"go.simcl.net/resolve"
	"go.simcl.net/syntax"
)

// flags
var (
	cpuprofile = flag.String("cpuprofile", "", "gather Go CPU profile in this file")
	memprofile = flag.String("memprofile", "", "gather Go memory profile in this file")
	showast    = flag.Bool("ast", false, "on success, print the program back as normalized source")
	execprog   = flag.String("c", "", "parse program `prog`")
)

// predeclared names provided by the numeric runtime that executes
// compiled SimCL programs. The front end only needs to know they
// exist so that resolution of runtime calls succeeds.
var runtimeNames = map[string]bool{
	"print":     true,
	"abs":       true,
	"sqrt":      true,
	"pow":       true,
	"rand":      true,
	"zeros":     true,
	"ones":      true,
	"dot":       true,
	"norm":      true,
	"solve":     true,
	"transpose": true,
	"dt":        true,
}

func isRuntimeName(name string) bool { return runtimeNames[name] }

func main() {
	os.Exit(doMain())
}

func doMain() int {
	log.SetPrefix("simcl: ")
	log.SetFlags(0)
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		check(err)
		err = pprof.StartCPUProfile(f)
		check(err)
		defer func() {
			pprof.StopCPUProfile()
			err := f.Close()
			check(err)
		}()
	}
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		check(err)
		defer func() {
			runtime.GC()
			err := pprof.Lookup("heap").WriteTo(f, 0)
			check(err)
			err = f.Close()
			check(err)
		}()
	}

	return run(flag.Args())
}

// run dispatches on the program source: a -c program, a named file,
// a terminal (REPL), or piped standard input.
func run(args []string) int {
	switch {
	case *execprog != "":
		if len(args) > 0 {
			log.Print("cannot specify both -c and a file name")
			return 2
		}
		// Parse provided program.
		return frontEnd("cmdline", *execprog)

	case len(args) == 1:
		// Parse specified file.
		return frontEnd(args[0], nil)

	case len(args) == 0:
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Println("Welcome to SimCL (go.simcl.net)")
			repl.REPL(isRuntimeName)
			return 0
		}
		return frontEnd("<stdin>", os.Stdin)

	default:
		log.Print("want at most one SimCL file name")
		return 2
	}
}

// frontEnd runs the whole front end over one program: parse, report
// recovery skips, resolve names. It returns the process exit code.
func frontEnd(filename string, src interface{}) int {
	f, err := syntax.Parse(filename, src)
	if err != nil {
		repl.PrintError(err)
		return 1
	}
	for _, skip := range f.Skipped {
		fmt.Fprintln(os.Stderr, skip)
	}
	if err := resolve.File(f, isRuntimeName, nil); err != nil {
		repl.PrintError(err)
		return 1
	}
	if *showast {
		if err := syntax.WriteSource(os.Stdout, f); err != nil {
			log.Print(err)
			return 1
		}
	}
	return 0
}

func check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
