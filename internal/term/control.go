package term

// Control is the capability set the progress renderer needs from a
// terminal: select the bar colors, mark the cross-over point, clear
// stale output, and reset. Keeping it behind an interface lets tests
// substitute a backend that emits nothing, so the percentage/ETA math
// can be checked without ANSI noise.
type Control interface {
	// BarColors selects the colors the line starts in.
	BarColors() string
	// DoneBackground switches the background at the cross-over point.
	DoneBackground() string
	// ClearToEnd erases from the cursor to the end of the screen.
	ClearToEnd() string
	// Reset restores default terminal attributes.
	Reset() string
}

// ANSI emits the exact escape sequences the tool has always used.
// These are load-bearing bytes: terminal emulators and the test suite
// both depend on them verbatim.
type ANSI struct{}

func (ANSI) BarColors() string      { return "\033[1;37;42m" } // bright white on green
func (ANSI) DoneBackground() string { return "\033[44m" }      // blue
func (ANSI) ClearToEnd() string     { return "\033[0J" }
func (ANSI) Reset() string          { return "\033[0m" }

// Plain emits no control sequences at all. Used by tests that assert on
// the text layout of a rendered frame.
type Plain struct{}

func (Plain) BarColors() string      { return "" }
func (Plain) DoneBackground() string { return "" }
func (Plain) ClearToEnd() string     { return "" }
func (Plain) Reset() string          { return "" }
