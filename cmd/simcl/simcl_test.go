// Copyright 2026 The SimCL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "testing"

func TestRunProgramFlag(t *testing.T) {
	defer func() { *execprog = "" }()

	// A valid -c program parses and resolves.
	*execprog = "let x = 1 + 2"
	if code := run(nil); code != 0 {
		t.Errorf("run(-c valid) = %d, want 0", code)
	}

	// A malformed -c program is a front-end failure, not a crash.
	*execprog = "let = 1"
	if code := run(nil); code != 1 {
		t.Errorf("run(-c malformed) = %d, want 1", code)
	}

	// -c combined with a file name is a usage error.
	*execprog = "let x = 1"
	if code := run([]string{"program.simcl"}); code != 2 {
		t.Errorf("run(-c with file) = %d, want 2", code)
	}
}

func TestRunTooManyArgs(t *testing.T) {
	if code := run([]string{"a.simcl", "b.simcl"}); code != 2 {
		t.Errorf("run(two files) = %d, want 2", code)
	}
}
