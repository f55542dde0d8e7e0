package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/vcat-tools/vcat/internal/copier"
	"github.com/vcat-tools/vcat/internal/exitcodes"
	"github.com/vcat-tools/vcat/internal/progress"
)

// silentErr marks an error that was already reported to the user;
// Execute() skips the duplicate print but still exits non-zero.
type silentErr struct{ error }

func (e silentErr) Unwrap() error { return e.error }

// preflight validates the stream arrangement before any source is
// touched: the destination must not be a terminal (vcat refuses to dump
// data onto one) and the bar needs a real terminal with a queryable,
// in-range width on standard error.
func preflight(d Deps) error {
	if d.IsTTY(d.StdoutFd) {
		return exitcodes.GeneralErr("standard output is a TTY; redirect it")
	}
	return barPreflight(d)
}

// barPreflight is the stderr half of preflight. The simulate command
// uses it alone, since simulation writes nothing to standard output.
func barPreflight(d Deps) error {
	if !d.IsTTY(d.StderrFd) {
		return exitcodes.GeneralErr("standard error is not a TTY; the progress bar needs one")
	}
	if _, err := d.Width(); err != nil {
		return exitcodes.WrapError(exitcodes.GeneralError, "standard error", err)
	}
	return nil
}

// runCat copies every source to standard output, one at a time. A
// failing source is reported and skipped; the remaining sources still
// run, and the overall result is a failure.
func runCat(d Deps, args []string) error {
	if err := preflight(d); err != nil {
		return err
	}

	r := progress.NewRenderer(d.Stderr, d.Ctrl, d.Width)
	failed := false
	for _, arg := range args {
		if err := catSource(d, r, arg); err != nil {
			fmt.Fprintf(d.Stderr, "%s: %v\n", displayName(arg), err)
			failed = true
		}
	}
	if failed {
		return silentErr{exitcodes.GeneralErr("one or more sources failed")}
	}
	return nil
}

// displayName is what the bar and error messages call a source.
func displayName(arg string) string {
	if arg == "-" {
		return "<stdin>"
	}
	return arg
}

// catSource resolves one argument to an open stream and copies it.
func catSource(d Deps, r *progress.Renderer, arg string) error {
	if arg == "-" {
		// A redirected regular file has a usable size; a pipe or
		// socket does not, and renders as 100% throughout.
		var size int64
		if fi, err := d.Stdin.Stat(); err == nil && fi.Mode().IsRegular() {
			size = fi.Size()
		}
		return catStream(d, r, "<stdin>", size, d.Stdin)
	}

	fi, err := os.Stat(arg)
	if err != nil {
		return sysErr(err)
	}
	if fi.IsDir() {
		return errors.New("is a directory")
	}
	f, err := os.Open(arg)
	if err != nil {
		return sysErr(err)
	}
	defer f.Close()
	return catStream(d, r, arg, fi.Size(), f)
}

// catStream runs the copy loop for one open source, bracketing it with
// the initial frame, the final unconditional frame, and the newline
// that releases the bar's line. The newline comes before any error
// report so the message does not overwrite the bar.
func catStream(d Deps, r *progress.Renderer, name string, size int64, src io.Reader) error {
	t := progress.NewTransfer(name, size)
	r.Start(t)
	pos, err := copier.Copy(src, d.Stdout, d.Cfg.BlockSize, d.Cfg.RenderEvery, func(pos int64) {
		r.Render(t, pos)
	})
	r.Render(t, pos)
	r.Finish()
	return err
}

// sysErr strips the path from a PathError so messages read like
// "name: no such file or directory" instead of repeating the name.
func sysErr(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
