package main

import (
	"io"
	"os"

	"github.com/vcat-tools/vcat/internal/config"
	"github.com/vcat-tools/vcat/internal/progress"
	"github.com/vcat-tools/vcat/internal/term"
)

// Deps holds all injectable dependencies for command handlers. Tests
// substitute buffers for the streams and fixed functions for the
// terminal queries.
type Deps struct {
	Cfg config.Config

	Stdout io.Writer // copy destination
	Stderr io.Writer // progress bar and messages
	Stdin  *os.File  // source for "-"

	IsTTY    func(fd uintptr) bool
	Width    progress.WidthFunc // stderr geometry query
	Ctrl     term.Control
	StdoutFd uintptr
	StderrFd uintptr
}

// newDeps wires the production dependencies.
func newDeps(cfg config.Config) Deps {
	return Deps{
		Cfg:    cfg,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
		IsTTY: func(fd uintptr) bool {
			return term.IsTerminal(int(fd))
		},
		Width:    progress.StderrWidth(int(os.Stderr.Fd())),
		Ctrl:     term.ANSI{},
		StdoutFd: os.Stdout.Fd(),
		StderrFd: os.Stderr.Fd(),
	}
}
