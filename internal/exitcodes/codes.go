package exitcodes

import (
	"fmt"
	"os"
)

// Standard exit codes for vcat
const (
	// Success indicates all sources were copied in full
	Success = 0

	// GeneralError indicates a usage error or at least one failed source.
	// vcat deliberately collapses everything into a single failure code:
	// callers (shell scripts, the multi-file wrapper) only branch on
	// zero/non-zero.
	GeneralError = 1
)

// Exit terminates the program with the given code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError prints error message to stderr and exits with the given code
func ExitWithError(code int, msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
}

// ExitWithErrorf prints formatted error message to stderr and exits
func ExitWithErrorf(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}

// CodeForError returns the appropriate exit code for an error.
// Unwraps ErrorWithCode for explicit codes, otherwise returns GeneralError.
func CodeForError(err error) int {
	if err == nil {
		return Success
	}

	if ec, ok := err.(*ErrorWithCode); ok {
		return ec.Code
	}

	return GeneralError
}
