package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/martinemde/minic/lexer"
)

// Exit statuses. Usage and lexical failures are kept distinct so scripts can
// tell a bad invocation from bad source.
const (
	exitOK      = 0
	exitUsage   = 1
	exitLexical = 2
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}

	var lexErr *lexer.LexError
	if errors.As(err, &lexErr) {
		// The diagnostic was already printed alongside the token stream.
		return exitLexical
	}

	var usageErr *UsageError
	var fileErr *lexer.FileError
	if errors.As(err, &usageErr) || errors.As(err, &fileErr) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintf(stderr, "Usage: %s\n", cmd.UseLine())
		return exitUsage
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitUsage
}
