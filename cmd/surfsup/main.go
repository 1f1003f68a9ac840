package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"surfsup/internal/cli"
)

func main() {
	// Recover from panics so the process exits with a stack trace instead
	// of a raw runtime crash.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(3)
		}
	}()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
