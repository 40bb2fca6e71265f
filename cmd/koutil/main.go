// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI and returns the process exit code.
func run(args []string) int {
	root, a := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	return execute(root, a, args)
}

// execute runs root with args, finishes the app and maps the outcome to
// an exit code. Errors not already reported are printed.
func execute(root *cobra.Command, a *app, args []string) int {
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	if ferr := a.finishWith(context.Background(), err); ferr != nil && err == nil {
		err = ferr
	}
	if err == nil {
		return 0
	}

	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	a.errorPrinter().Error(err.Error())
	return 1
}
