// Package term wraps terminal geometry queries and the ANSI control
// sequences the progress bar depends on.
package term

import (
	"fmt"

	"golang.org/x/term"
)

// MaxWidth is the widest terminal the renderer supports. Widths outside
// [1, MaxWidth] are treated as unqueryable.
const MaxWidth = 9999

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// Width returns the column count of the terminal on fd. It fails when fd
// is not a terminal, the size query fails, or the reported width falls
// outside [1, MaxWidth]. The query is cheap enough to repeat before
// every render, which is what keeps the bar correct across window
// resizes.
func Width(fd int) (int, error) {
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0, err
	}
	if w <= 0 || w > MaxWidth {
		return 0, fmt.Errorf("invalid terminal width: %d (max: %d)", w, MaxWidth)
	}
	return w, nil
}
