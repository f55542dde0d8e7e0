package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/vcat-tools/vcat/internal/config"
	"github.com/vcat-tools/vcat/internal/progress"
	"github.com/vcat-tools/vcat/internal/term"
)

// testDeps wires Deps the way production streams would look: stdout
// redirected (not a TTY), stderr an ANSI terminal of fixed width. The
// Plain control backend keeps escape sequences out of assertions.
func testDeps() (Deps, *bytes.Buffer, *bytes.Buffer) {
	var out, errb bytes.Buffer
	d := Deps{
		Cfg:    config.Defaults(),
		Stdout: &out,
		Stderr: &errb,
		IsTTY: func(fd uintptr) bool {
			return fd == 2
		},
		Width:    func() (int, error) { return 40, nil },
		Ctrl:     term.Plain{},
		StdoutFd: 1,
		StderrFd: 2,
	}
	return d, &out, &errb
}

// newTestRenderer builds a renderer on the test deps' stderr buffer.
func newTestRenderer(d Deps) *progress.Renderer {
	return progress.NewRenderer(d.Stderr, d.Ctrl, d.Width)
}

// writeFile creates a file with the given contents in a test temp dir.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
